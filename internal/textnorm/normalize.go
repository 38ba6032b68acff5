// Package textnorm canonicalizes raw resume and job-description text into
// comparable forms. Normalize produces the single-line comparison form the
// matching engine works on; NormalizeForParsing keeps newlines so the
// structure parser can still see section breaks.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// Keep + # / & . - because they appear in tech terms (c++, c#, node.js).
	punctRe = regexp.MustCompile(`[^\p{L}\p{N}_\s+#/&.-]`)
	spaceRe = regexp.MustCompile(`\s+`)

	// De-hyphenate words like "end-to-end", "data-driven".
	dehyphenRe = regexp.MustCompile(`([\p{L}\p{N}])[-–—]([\p{L}\p{N}])`)

	// De-hyphenate only across linebreaks (e.g. "machine-\nlearning").
	linebreakHyphenRe = regexp.MustCompile(`([\p{L}\p{N}])-[ \t]*\n[ \t]*([\p{L}\p{N}])`)

	multispaceRe = regexp.MustCompile(`[ \t\f\v]+`)
)

// variantSeeds pair a spaced surface form with a fused variant that is
// inserted next to it, so either spelling in the other document matches.
// The spaced form is matched on word boundaries ("the commerce" is not
// "e commerce"), and the seed is guarded on the fused form being absent
// to keep Normalize idempotent.
var variantSeeds = []struct {
	re    *regexp.Regexp
	fused string
}{
	{regexp.MustCompile(`\be commerce\b`), "ecommerce"},
}

// Normalize lowercases, de-hyphenates, strips punctuation outside the
// allowed set and collapses all whitespace to single spaces. Empty input
// returns an empty string; Normalize(Normalize(x)) == Normalize(x).
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = linebreakHyphenRe.ReplaceAllString(s, "$1 $2")
	s = dehyphenRe.ReplaceAllString(s, "$1 $2")

	for _, seed := range variantSeeds {
		if strings.Contains(s, seed.fused) {
			continue
		}
		if loc := seed.re.FindStringIndex(s); loc != nil {
			s = s[:loc[0]] + seed.fused + " " + s[loc[0]:]
		}
	}

	s = punctRe.ReplaceAllString(s, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeForParsing keeps newlines and email characters; spaces and tabs
// are collapsed per line and the whole text is lowercased. Different from
// Normalize because the structure parser must preserve section breaks and
// emails (with '@', '.', '+', etc.).
func NormalizeForParsing(s string) string {
	if s == "" {
		return ""
	}

	s = norm.NFC.String(s)
	s = linebreakHyphenRe.ReplaceAllString(s, "$1 $2")

	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(multispaceRe.ReplaceAllString(line, " "))
	}

	return strings.TrimSpace(strings.ToLower(strings.Join(lines, "\n")))
}
