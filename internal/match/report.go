package match

import "sort"

// Report is the outcome of a single comparison. Computed fresh per call
// and never persisted by the engine; callers decide what to do with it.
type Report struct {
	MatchPercentage   float64  `json:"match_percentage"`
	MatchedKeywords   []string `json:"matched_keywords"`
	UnmatchedKeywords []string `json:"unmatched_keywords"`
	Debug             *Debug   `json:"debug,omitempty"`
}

// Debug carries the per-category breakdown behind a report.
type Debug struct {
	MatchedWords     []string `json:"matched_words"`
	UnmatchedWords   []string `json:"unmatched_words"`
	MatchedSkills    []string `json:"matched_skills"`
	UnmatchedSkills  []string `json:"unmatched_skills"`
	MatchedPhrases   []string `json:"matched_phrases"`
	UnmatchedPhrases []string `json:"unmatched_phrases"`

	BasePercent     *float64 `json:"base_percent,omitempty"`
	SemanticPercent *float64 `json:"semantic_percent,omitempty"`
}

// stableKeywords orders a set for presentation: longer strings first
// (they tend to be more informative), then alphabetical, capped at limit
// when limit is positive.
func stableKeywords(items Set, limit int) []string {
	ordered := make([]string, 0, len(items))
	for item := range items {
		ordered = append(ordered, item)
	}

	sort.Slice(ordered, func(i, j int) bool {
		if len(ordered[i]) != len(ordered[j]) {
			return len(ordered[i]) > len(ordered[j])
		}
		return ordered[i] < ordered[j]
	})

	if limit > 0 && len(ordered) > limit {
		ordered = ordered[:limit]
	}
	return ordered
}
