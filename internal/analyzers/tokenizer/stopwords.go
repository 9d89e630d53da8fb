package tokenizer

// stopwords is the fixed exclusion set for keyword relevance: articles,
// auxiliary verbs, pronouns, conjunctions, and common prepositions.
// Uses struct{} values for zero-byte map entries.
var stopwords = map[string]struct{}{
	// Articles
	"a":   {},
	"an":  {},
	"the": {},

	// Conjunctions
	"and":  {},
	"but":  {},
	"or":   {},
	"nor":  {},
	"for":  {},
	"so":   {},
	"yet":  {},
	"if":   {},
	"then": {},
	"than": {},

	// Auxiliary verbs
	"is":     {},
	"are":    {},
	"was":    {},
	"were":   {},
	"be":     {},
	"been":   {},
	"being":  {},
	"am":     {},
	"do":     {},
	"does":   {},
	"did":    {},
	"have":   {},
	"has":    {},
	"had":    {},
	"having": {},
	"will":   {},
	"would":  {},
	"can":    {},
	"could":  {},
	"shall":  {},
	"should": {},
	"may":    {},
	"might":  {},
	"must":   {},

	// Pronouns
	"i":     {},
	"you":   {},
	"he":    {},
	"she":   {},
	"it":    {},
	"we":    {},
	"they":  {},
	"me":    {},
	"him":   {},
	"her":   {},
	"us":    {},
	"them":  {},
	"my":    {},
	"your":  {},
	"his":   {},
	"its":   {},
	"our":   {},
	"their": {},
	"this":  {},
	"that":  {},
	"these": {},
	"those": {},
	"what":  {},
	"which": {},
	"who":   {},
	"whom":  {},

	// Prepositions and particles
	"of":    {},
	"in":    {},
	"on":    {},
	"at":    {},
	"to":    {},
	"by":    {},
	"as":    {},
	"with":  {},
	"from":  {},
	"into":  {},
	"onto":  {},
	"up":    {},
	"down":  {},
	"out":   {},
	"over":  {},
	"under": {},
	"about": {},

	// Frequent fillers
	"not":   {},
	"no":    {},
	"too":   {},
	"very":  {},
	"just":  {},
	"there": {},
	"here":  {},
	"when":  {},
	"where": {},
	"why":   {},
	"how":   {},
	"all":   {},
	"any":   {},
	"both":  {},
	"each":  {},
	"few":   {},
	"more":  {},
	"most":  {},
	"other": {},
	"some":  {},
	"such":  {},
	"only":  {},
	"own":   {},
	"same":  {},
}
