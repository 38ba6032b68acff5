package resume

import (
	"regexp"
	"strings"
)

// The parser is an ordered pipeline of line-shape detectors. Each rule
// below recognizes one shape (heading, company header, bullet, degree
// hint) and is exercised independently by the block parsers.

var (
	emailRe = regexp.MustCompile(`(?i)\b[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}\b`)

	// Obfuscated addresses like "name at domain dot com".
	emailFallbackRe = regexp.MustCompile(`(?i)\b([a-z0-9._%+-]+)\s*(?:@| at )\s*([a-z0-9.-]+)\s*(?:\.| dot )\s*([a-z]{2,})\b`)

	// 7 to 15 digits with optional country code, tolerant of punctuation.
	phoneRe = regexp.MustCompile(`(?:\+?\d{1,3}[\s.-]?)?(?:\(?\d{3}\)?[\s.-]?)?\d{3}[\s.-]?\d{4}`)

	nameLineRe = regexp.MustCompile(`(?i)^[a-z ,.'-]+$`)

	sectionHeadRe = regexp.MustCompile(`(?i)^\s*(education|work experience|professional experience|experience|employment|career history|academics|academic background|qualifications|projects)\s*:?\s*$`)

	bulletRe = regexp.MustCompile(`^[•‣◦⁃●-]\s+`)

	// Org lines rendered in all caps, e.g. "ACME ROBOTICS / WEST".
	upperHeadingRe = regexp.MustCompile(`^[A-Z][A-Z\s&/.-]+$`)

	degreeHintRe = regexp.MustCompile(`(?i)\b(b\.?sc|b\.?s|b\.?e|btech|b\.?tech|m\.?sc|m\.?s|mtech|m\.?tech|mba|ph\.?d|bachelor|master|doctorate|ms|bs|mca|bca)\b`)

	yearRe  = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	digitRe = regexp.MustCompile(`\d`)

	dashRe   = regexp.MustCompile(`\s*[–—-]\s*`)
	emDashRe = regexp.MustCompile(`\s*[–—]\s*`)

	lineSpaceRe = regexp.MustCompile(`\s+`)
)

const monthPattern = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec|january|february|march|april|june|july|august|september|october|november|december)`

var dateRangeRe = regexp.MustCompile(
	`(?i)\b(?:` + monthPattern + `\s+)?(?:19|20)\d{2}\s*[–—-]\s*(?:present|(?:` + monthPattern + `\s+)?(?:19|20)\d{2})\b`)

var educationKeys = []string{"education", "qualifications", "academics", "academic background", "coursework"}

var experienceKeys = []string{"experience", "work experience", "professional experience", "employment", "career history"}

var degreeMap = map[string]string{
	"bsc": "bachelor", "bs": "bachelor", "be": "bachelor", "btech": "bachelor", "bca": "bachelor",
	"msc": "master", "ms": "master", "mtech": "master", "mca": "master", "mba": "master",
	"phd": "doctorate",
}

func isSectionHeading(line string) bool {
	return sectionHeadRe.MatchString(line)
}

func headingMatchesAny(line string, keys []string) bool {
	l := strings.ToLower(line)
	for _, k := range keys {
		if strings.Contains(l, k) {
			return true
		}
	}
	return false
}

func isBullet(line string) bool {
	return bulletRe.MatchString(line)
}

// isCompanyHeader reports whether a line has the company-header shape:
// an em/en dash plus a date range, or an all-caps org line.
func isCompanyHeader(line string) bool {
	l := strings.TrimSpace(line)
	if (strings.Contains(l, "—") || strings.Contains(l, "–")) && dateRangeRe.MatchString(l) {
		return true
	}
	return upperHeadingRe.MatchString(l)
}

// looksLikeTitle accepts short lines with no digits and no terminal
// punctuation, the shape of a role title announced before its header.
func looksLikeTitle(line string) bool {
	if len(strings.Fields(line)) > 8 || digitRe.MatchString(line) {
		return false
	}
	switch {
	case strings.HasSuffix(line, "."), strings.HasSuffix(line, "!"),
		strings.HasSuffix(line, "?"), strings.HasSuffix(line, ":"),
		strings.HasSuffix(line, ";"):
		return false
	}
	return true
}

func degreeHint(line string) (string, bool) {
	m := degreeHintRe.FindString(line)
	if m == "" {
		return "", false
	}
	key := strings.TrimSpace(strings.ReplaceAll(strings.ToLower(m), ".", ""))
	if canonical, ok := degreeMap[key]; ok {
		return canonical, true
	}
	return strings.ToLower(strings.TrimSpace(m)), true
}

func cleanLine(s string) string {
	return strings.Trim(lineSpaceRe.ReplaceAllString(s, " "), " ·-–—")
}

// header holds the pieces of a company or school line such as
// "beedata technology — hyderabad, india jan 2020 – dec 2022".
type header struct {
	Company  string
	Location string
	Start    string
	End      string
}

func splitHeader(line string) header {
	s := strings.Trim(line, " -–—")

	var h header
	if loc := dateRangeRe.FindStringIndex(s); loc != nil {
		rng := s[loc[0]:loc[1]]
		parts := dashRe.Split(rng, 2)
		h.Start = strings.TrimSpace(parts[0])
		if len(parts) > 1 {
			h.End = strings.TrimSpace(parts[1])
		}
		s = strings.TrimSpace(strings.TrimRight(s[:loc[0]], ", "))
	}

	parts := emDashRe.Split(s, 2)
	h.Company = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		h.Location = strings.TrimSpace(parts[1])
	}
	return h
}
