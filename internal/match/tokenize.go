package match

import (
	"strings"

	"github.com/kljensen/snowball"

	"github.com/harishsure007/Jobflowai/internal/catalog"
)

// Tokenize splits comparison-normalized text on whitespace and drops
// stopwords and empty tokens. When stem is true each surviving token is
// canonicalized with a snowball stemmer; a token the stemmer rejects is
// kept as-is.
func Tokenize(normalized string, cat *catalog.Catalog, stem bool) Set {
	tokens := make(Set)
	for _, tok := range strings.Fields(normalized) {
		if cat.IsStopWord(tok) {
			continue
		}
		if stem {
			if stemmed, err := snowball.Stem(tok, "english", true); err == nil && stemmed != "" {
				tok = stemmed
			}
		}
		tokens.Add(tok)
	}
	return tokens
}

// ExtractPhrases returns the catalog phrases verbatim present in the
// normalized text. Containment is checked with padded word boundaries so
// "java" never matches inside "javascript". The catalog keeps longer
// phrases first, so multi-word entries are found before shorter ones
// sharing a prefix. Fuzzy phrase detection is a separate, later step.
func ExtractPhrases(normalized string, cat *catalog.Catalog) Set {
	hits := make(Set)
	if normalized == "" {
		return hits
	}

	padded := " " + normalized + " "
	for _, phrase := range cat.Phrases() {
		if strings.Contains(padded, " "+phrase+" ") {
			hits.Add(phrase)
		}
	}
	return hits
}
