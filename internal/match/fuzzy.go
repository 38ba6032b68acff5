package match

import (
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Ratio is a whole-string similarity on a 0-100 scale based on edit
// distance. 100 means identical, 0 means nothing in common.
func Ratio(a, b string) int {
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}

	la := len([]rune(a))
	lb := len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}

	dist := levenshtein.ComputeDistance(a, b)
	return int(math.Round(100 * (1 - float64(dist)/float64(longest))))
}

// TokenSetRatio compares the unique-token decompositions of both strings,
// making the score robust to word order and duplication ("data science"
// vs "science data").
func TokenSetRatio(a, b string) int {
	ta := NewSet(strings.Fields(a)...)
	tb := NewSet(strings.Fields(b)...)

	if ta.Len() == 0 || tb.Len() == 0 {
		return 0
	}

	inter := ta.Intersect(tb).Sorted()
	diffA := ta.Diff(tb).Sorted()
	diffB := tb.Diff(ta).Sorted()

	base := strings.Join(inter, " ")
	combinedA := strings.TrimSpace(base + " " + strings.Join(diffA, " "))
	combinedB := strings.TrimSpace(base + " " + strings.Join(diffB, " "))

	best := Ratio(combinedA, combinedB)
	if base != "" {
		if r := Ratio(base, combinedA); r > best {
			best = r
		}
		if r := Ratio(base, combinedB); r > best {
			best = r
		}
	}
	return best
}

// PartialRatio scores the shorter string against every same-length rune
// window of the longer one and keeps the best, tolerating truncation and
// abbreviation.
func PartialRatio(a, b string) int {
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}

	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	if len(shorter) == len(longer) {
		return Ratio(string(shorter), string(longer))
	}

	s := string(shorter)
	best := 0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		window := string(longer[i : i+len(shorter)])
		if r := Ratio(s, window); r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}

// fuzzyScores is the best score each scorer family produced for a term
// against a candidate set.
type fuzzyScores struct {
	Whole    int
	TokenSet int
	Partial  int
}

// accepted reports whether any scorer cleared its own bar.
func (f fuzzyScores) accepted(cfg *Config) bool {
	return f.Whole >= cfg.Strict || f.TokenSet >= cfg.TokenStrict || f.Partial >= cfg.Loose
}

// bestFuzzyScores computes the per-scorer best of term against the
// candidates. Pure; iteration over a sorted slice keeps it deterministic.
func bestFuzzyScores(term string, candidates []string) fuzzyScores {
	var best fuzzyScores
	for _, candidate := range candidates {
		if r := Ratio(term, candidate); r > best.Whole {
			best.Whole = r
		}
		if r := TokenSetRatio(term, candidate); r > best.TokenSet {
			best.TokenSet = r
		}
		if r := PartialRatio(term, candidate); r > best.Partial {
			best.Partial = r
		}
	}
	return best
}

// candidateKey builds the cache key component identifying a candidate-set
// snapshot. Candidates must already be sorted.
func candidateKey(sorted []string) string {
	return strings.Join(sorted, "\x1f")
}

// sortedSlice returns the set as a sorted slice, the canonical candidate
// snapshot for caching.
func sortedSlice(s Set) []string {
	out := make([]string, 0, len(s))
	for item := range s {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}
