package domain

// Default setting values.
const (
	// DefaultKeywordLimit is the keyword count returned per analysis
	// when no limit is given.
	DefaultKeywordLimit = 10

	// DefaultSearchLimit is the maximum search results returned when
	// no limit is given.
	DefaultSearchLimit = 10
)

// Settings holds user-tunable configuration.
type Settings struct {
	// KeywordLimit is the number of keywords per analysis.
	KeywordLimit int `toml:"keyword_limit"`

	// SearchLimit caps the number of search results.
	SearchLimit int `toml:"search_limit"`

	// Verbose enables pipeline logging to stderr.
	Verbose bool `toml:"verbose"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		KeywordLimit: DefaultKeywordLimit,
		SearchLimit:  DefaultSearchLimit,
	}
}

// Normalize clamps out-of-range values to their defaults.
func (s Settings) Normalize() Settings {
	if s.KeywordLimit <= 0 {
		s.KeywordLimit = DefaultKeywordLimit
	}
	if s.SearchLimit <= 0 {
		s.SearchLimit = DefaultSearchLimit
	}
	return s
}
