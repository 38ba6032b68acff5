package match

// Config holds the tunable knobs of the deterministic engine. Zero values
// are replaced with the defaults by NewEngine, so a partially filled
// config is safe to pass.
type Config struct {
	// Word-level fuzzy acceptance bars, 0-100. Each scorer is held to its
	// own bar: whole-string ratio against Strict, token-set ratio against
	// TokenStrict, partial ratio against Loose.
	Strict      int
	TokenStrict int
	Loose       int

	// Phrase-level bars used when a phrase is fuzzed against windows of
	// the source text.
	PhraseStrict int
	PhraseLoose  int

	// Category weights for the overall mode. Skills and phrases count
	// double by default: they are stronger relevance signals than generic
	// words.
	WordWeight   float64
	SkillWeight  float64
	PhraseWeight float64

	// Synonym closure bounds.
	SynonymHops int
	SynonymCap  int

	// Phrase windowing. Window is the number of tokens per comparison
	// window, Step the slide between windows. Both trade recall against
	// false positives and may need retuning per deployment corpus.
	PhraseWindow int
	PhraseStep   int

	// TopKeywords caps the matched/unmatched lists in a report.
	TopKeywords int

	// Stemming canonicalizes tokens with a snowball stemmer before
	// comparison. Off by default.
	Stemming bool

	// CacheSize bounds the fuzzy best-match LRU. Zero disables caching;
	// results are identical either way.
	CacheSize int

	// Blend weights applied when a semantic scorer is available in the
	// overall mode. Tunable defaults, not calibrated values.
	BaseWeight  float64
	EmbedWeight float64
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() *Config {
	return &Config{
		Strict:       92,
		TokenStrict:  88,
		Loose:        82,
		PhraseStrict: 90,
		PhraseLoose:  84,
		WordWeight:   1.0,
		SkillWeight:  2.0,
		PhraseWeight: 2.0,
		SynonymHops:  1,
		SynonymCap:   2000,
		PhraseWindow: 16,
		PhraseStep:   4,
		TopKeywords:  40,
		CacheSize:    4096,
		BaseWeight:   0.4,
		EmbedWeight:  0.6,
	}
}

// withDefaults fills unset fields from DefaultConfig. Booleans and an
// explicit CacheSize of zero are respected as-is.
func (c *Config) withDefaults() *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}

	out := *c
	if out.Strict <= 0 {
		out.Strict = d.Strict
	}
	if out.TokenStrict <= 0 {
		out.TokenStrict = d.TokenStrict
	}
	if out.Loose <= 0 {
		out.Loose = d.Loose
	}
	if out.PhraseStrict <= 0 {
		out.PhraseStrict = d.PhraseStrict
	}
	if out.PhraseLoose <= 0 {
		out.PhraseLoose = d.PhraseLoose
	}
	if out.WordWeight <= 0 {
		out.WordWeight = d.WordWeight
	}
	if out.SkillWeight <= 0 {
		out.SkillWeight = d.SkillWeight
	}
	if out.PhraseWeight <= 0 {
		out.PhraseWeight = d.PhraseWeight
	}
	if out.SynonymHops <= 0 {
		out.SynonymHops = d.SynonymHops
	}
	if out.SynonymCap <= 0 {
		out.SynonymCap = d.SynonymCap
	}
	if out.PhraseWindow <= 0 {
		out.PhraseWindow = d.PhraseWindow
	}
	if out.PhraseStep <= 0 {
		out.PhraseStep = d.PhraseStep
	}
	if out.TopKeywords <= 0 {
		out.TopKeywords = d.TopKeywords
	}
	if out.CacheSize < 0 {
		out.CacheSize = d.CacheSize
	}
	if out.BaseWeight <= 0 {
		out.BaseWeight = d.BaseWeight
	}
	if out.EmbedWeight <= 0 {
		out.EmbedWeight = d.EmbedWeight
	}
	return &out
}
