package resume

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/harishsure007/Jobflowai/internal/catalog"
	"github.com/harishsure007/Jobflowai/internal/match"
)

const (
	fuzzySkillLimit = 80
	fuzzySkillBar   = 92
	fuzzySkillJaro  = 0.94
)

// extractSkills collects catalog skills present in the resume text:
// multi-word phrases by word-boundary search, single words by token
// lookup, and optionally near variants by fuzzy best-match.
func extractSkills(text string, cat *catalog.Catalog, fuzzy bool) []string {
	have := map[string]struct{}{}

	// Multi-word skills match against the full text so "machine learning"
	// is captured as a unit rather than as split tokens.
	for _, skill := range cat.MatchMultiwordSkills(text) {
		have[skill] = struct{}{}
	}

	tokens := match.Tokenize(text, cat, false)
	for tok := range tokens {
		if cat.IsSkill(tok) {
			have[tok] = struct{}{}
		}
	}

	if fuzzy {
		fuzzyFillSkills(tokens, cat, have)
	}

	return consolidateSkills(have)
}

// fuzzyFillSkills catches minor spelling variants, e.g. "javascrpt"
// next to the catalog's "javascript". A token claims the closest
// uncovered catalog skill when either the edit-distance ratio or the
// Jaro-Winkler similarity clears its bar.
func fuzzyFillSkills(tokens match.Set, cat *catalog.Catalog, have map[string]struct{}) {
	var candidates []string
	for _, skill := range cat.Skills() {
		if _, ok := have[skill]; !ok {
			candidates = append(candidates, skill)
		}
	}
	if len(candidates) == 0 {
		return
	}

	tokenList := tokens.Sorted()
	if len(tokenList) > fuzzySkillLimit {
		tokenList = tokenList[:fuzzySkillLimit]
	}

	for _, tok := range tokenList {
		if best, ratio, jw := bestSkillMatch(tok, candidates); ratio >= fuzzySkillBar || jw >= fuzzySkillJaro {
			have[best] = struct{}{}
		}
	}
}

// bestSkillMatch ranks candidates by edit-distance ratio, breaking
// ties with Jaro-Winkler so small prefix variants win.
func bestSkillMatch(tok string, candidates []string) (string, int, float64) {
	best := ""
	bestRatio := -1
	bestJW := -1.0
	for _, cand := range candidates {
		r := match.Ratio(tok, cand)
		if r < bestRatio {
			continue
		}
		jw := matchr.JaroWinkler(tok, cand, false)
		if r > bestRatio || jw > bestJW {
			best, bestRatio, bestJW = cand, r, jw
		}
	}
	return best, bestRatio, bestJW
}

// consolidateSkills drops a single-word skill contained in an already
// matched phrase, so "machine" disappears once "machine learning" is
// present. The result is sorted.
func consolidateSkills(have map[string]struct{}) []string {
	var phrases, singles []string
	for s := range have {
		if strings.Contains(s, " ") {
			phrases = append(phrases, s)
		} else {
			singles = append(singles, s)
		}
	}

	out := append([]string{}, phrases...)
	for _, s := range singles {
		shadowed := false
		for _, p := range phrases {
			if strings.Contains(" "+p+" ", " "+s+" ") {
				shadowed = true
				break
			}
		}
		if !shadowed {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
