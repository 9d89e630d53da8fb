// Package afinn provides the default sentiment lexicon.
//
// Weights follow the AFINN convention: integers from -5 (strongly
// negative) to +5 (strongly positive), here a curated subset of common
// English words. The lexicon is a swappable resource; the sentiment
// analyzer only requires per-word weights.
package afinn

import (
	"strings"

	"github.com/custodia-labs/textlens-cli/internal/analyzers/sentiment"
)

// Ensure Lexicon implements the interface.
var _ sentiment.Lexicon = (*Lexicon)(nil)

// Lexicon is the embedded AFINN-style word list. The zero value is not
// usable; construct with New.
type Lexicon struct {
	weights map[string]float64
}

// New returns the default lexicon.
func New() *Lexicon {
	return &Lexicon{weights: weights}
}

// Weight returns the polarity weight for word. Lookups are
// case-insensitive.
func (l *Lexicon) Weight(word string) (float64, bool) {
	w, ok := l.weights[strings.ToLower(word)]
	return w, ok
}

// Size reports the number of lexicon entries.
func (l *Lexicon) Size() int {
	return len(l.weights)
}

var weights = map[string]float64{
	// Strongly positive
	"amazing": 4, "awesome": 4, "breathtaking": 5, "brilliant": 4,
	"ecstatic": 4, "exceptional": 4, "excellent": 3, "fabulous": 4,
	"fantastic": 4, "heavenly": 4, "incredible": 4, "magnificent": 4,
	"marvelous": 4, "outstanding": 5, "phenomenal": 4, "superb": 5,
	"thrilled": 5, "wonderful": 4,

	// Positive
	"admire": 3, "adore": 3, "beautiful": 3, "best": 3, "bliss": 3,
	"celebrate": 3, "charming": 3, "cheerful": 3, "delight": 3,
	"delighted": 3, "delightful": 3, "elegant": 3, "excited": 3,
	"exciting": 3, "glad": 3, "gorgeous": 3, "grateful": 3, "great": 3,
	"happy": 3, "impressive": 3, "joy": 3, "joyful": 3, "love": 3,
	"loved": 3, "lovely": 3, "loves": 3, "perfect": 3, "pleasure": 3,
	"proud": 2, "rejoice": 4, "remarkable": 2, "satisfying": 2,
	"splendid": 3, "success": 2, "successful": 3, "triumph": 4,
	"win": 4, "winner": 4, "wins": 4, "wow": 4,

	// Mildly positive
	"accomplish": 2, "achieve": 2, "agree": 1, "appreciate": 2,
	"benefit": 2, "better": 2, "calm": 2, "capable": 1, "clean": 2,
	"clear": 1, "comfort": 2, "comfortable": 2, "confident": 2,
	"convenient": 2, "cool": 1, "effective": 2, "encourage": 2,
	"encouraged": 2, "enjoy": 2, "enjoyed": 2, "enjoys": 2, "fair": 2,
	"fine": 2, "fresh": 1, "friendly": 2, "fun": 4, "generous": 2,
	"gentle": 2, "good": 3, "helpful": 2, "hope": 2, "hopeful": 2,
	"improve": 2, "improved": 2, "improvement": 2, "interesting": 2,
	"kind": 2, "like": 2, "liked": 2, "likes": 2, "nice": 3,
	"okay": 1, "optimistic": 2, "peaceful": 2, "pleasant": 3,
	"pleased": 3, "popular": 3, "positive": 2, "recommend": 2,
	"reliable": 2, "rewarding": 2, "safe": 1, "satisfied": 2,
	"secure": 2, "smart": 1, "smooth": 2, "solid": 2, "strong": 2,
	"support": 2, "thank": 2, "thanks": 2, "useful": 2, "valuable": 2,
	"welcome": 2, "worthy": 2,

	// Mildly negative
	"annoy": -2, "annoyed": -2, "annoying": -2, "anxious": -2,
	"bland": -1, "bored": -2, "boring": -3, "broke": -2,
	"complain": -2, "complained": -2, "concern": -2, "concerned": -2,
	"confused": -2, "confusing": -2, "costly": -2, "crowded": -1,
	"difficult": -1, "dirty": -2, "disappoint": -2, "disappointed": -2,
	"disappointing": -2, "dislike": -2, "doubt": -1, "dull": -2,
	"expensive": -2, "fail": -2, "failed": -2, "fails": -2,
	"failure": -2, "fear": -2, "frustrated": -2, "frustrating": -2,
	"hard": -1, "issue": -2, "issues": -2, "lack": -2, "lost": -3,
	"mediocre": -2, "mess": -2, "mistake": -2, "mistakes": -2,
	"negative": -2, "noisy": -1, "poor": -2, "problem": -2,
	"problems": -2, "regret": -2, "sad": -2, "slow": -2, "sorry": -1,
	"tired": -2, "uncomfortable": -2, "unhappy": -2, "upset": -2,
	"weak": -2, "worried": -3, "worry": -3, "wrong": -2,

	// Negative
	"angry": -3, "awful": -3, "bad": -3, "broken": -1, "cruel": -3,
	"damage": -3, "damaged": -3, "dreadful": -3, "hate": -3,
	"hated": -3, "hates": -3, "hurt": -2, "miserable": -3,
	"painful": -2, "pathetic": -2, "ruin": -2, "ruined": -2,
	"terrible": -3, "ugly": -3, "unacceptable": -2, "useless": -2,
	"waste": -1, "wasted": -2, "worse": -3, "worst": -3,

	// Strongly negative
	"abysmal": -4, "atrocious": -4, "catastrophe": -4,
	"catastrophic": -4, "devastated": -4, "devastating": -4,
	"disaster": -4, "disastrous": -4, "disgusting": -4, "horrible": -4,
	"horrific": -4, "nightmare": -4, "outraged": -4, "revolting": -4,
}
