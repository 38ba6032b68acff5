package resume

import (
	"strings"

	"go.uber.org/zap"

	"github.com/harishsure007/Jobflowai/internal/catalog"
	"github.com/harishsure007/Jobflowai/internal/textnorm"
)

// Options controls optional parser behavior.
type Options struct {
	// FuzzySkills expands the detected skill list with near variants of
	// resume tokens, e.g. "java script" filling in "javascript".
	FuzzySkills bool
	Logger      *zap.Logger
}

// DefaultOptions enables fuzzy skill expansion.
func DefaultOptions() Options {
	return Options{FuzzySkills: true}
}

// Parse extracts structured fields from raw resume text. It normalizes
// the text itself with the newline-preserving variant, so callers pass
// the resume as read. Unrecognized input degrades to empty fields.
func Parse(raw string, cat *catalog.Catalog, opts Options) *Structured {
	if cat == nil {
		cat = catalog.Default()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	text := textnorm.NormalizeForParsing(raw)

	out := &Structured{
		Skills:     []string{},
		Education:  []EducationEntry{},
		Experience: []ExperienceEntry{},
	}
	if strings.TrimSpace(text) == "" {
		return out
	}

	out.Name = guessName(text)
	out.Email = extractEmail(text)
	out.Phone = extractPhone(text)
	out.Skills = extractSkills(text, cat, opts.FuzzySkills)

	if blocks := sectionBlocks(text, educationKeys); len(blocks) > 0 {
		out.Education = parseEducationBlock(blocks[0])
	}
	if blocks := sectionBlocks(text, experienceKeys); len(blocks) > 0 {
		out.Experience = parseExperienceBlock(blocks[0])
	}

	log.Debug("resume parsed",
		zap.Int("skills", len(out.Skills)),
		zap.Int("education_entries", len(out.Education)),
		zap.Int("experience_entries", len(out.Experience)),
	)
	return out
}

func firstNonEmptyLines(text string, n int) []string {
	var out []string
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		out = append(out, ln)
		if len(out) == n {
			break
		}
	}
	return out
}

var nameParticles = map[string]struct{}{
	"of": {}, "and": {}, "the": {}, "da": {}, "de": {}, "van": {}, "von": {},
}

// guessName scans the first few lines for a name-shaped line: 2 to 6
// words, no digits, no "@". Words are title-cased except particles.
func guessName(text string) *string {
	for _, ln := range firstNonEmptyLines(text, 8) {
		if strings.Contains(ln, "@") || digitRe.MatchString(ln) {
			continue
		}
		words := strings.Fields(ln)
		if len(words) < 2 || len(words) > 6 || !nameLineRe.MatchString(ln) {
			continue
		}
		parts := make([]string, 0, len(words))
		for _, w := range words {
			lw := strings.ToLower(w)
			if _, small := nameParticles[lw]; small {
				parts = append(parts, lw)
				continue
			}
			parts = append(parts, titleWord(w))
		}
		return strPtr(strings.Join(parts, " "))
	}
	return nil
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}

func extractEmail(text string) *string {
	if m := emailRe.FindString(text); m != "" {
		return strPtr(strings.ToLower(m))
	}
	if g := emailFallbackRe.FindStringSubmatch(text); g != nil {
		return strPtr(strings.ToLower(g[1] + "@" + g[2] + "." + g[3]))
	}
	return nil
}

// extractPhone normalizes the first phone-shaped match to an E.164-ish
// form: "+1" is assumed for bare 10-digit numbers.
func extractPhone(text string) *string {
	m := phoneRe.FindString(text)
	if m == "" {
		return nil
	}
	var num strings.Builder
	for _, r := range m {
		if r == '+' || (r >= '0' && r <= '9') {
			num.WriteRune(r)
		}
	}
	s := num.String()
	digits := strings.TrimPrefix(s, "+")
	if strings.HasPrefix(s, "+") && len(digits) >= 8 && len(digits) <= 15 {
		return strPtr(s)
	}
	if len(digits) == 10 {
		return strPtr("+1" + digits)
	}
	if len(digits) >= 8 && len(digits) <= 15 {
		return strPtr("+" + digits)
	}
	return nil
}

// sectionBlocks splits text on heading lines. A block starts at a
// heading matching one of keys and ends at the next heading of any
// kind, so an experience section stops where education begins.
func sectionBlocks(text string, keys []string) []string {
	lines := strings.Split(text, "\n")

	var headIdx []int
	for i, ln := range lines {
		if isSectionHeading(ln) {
			headIdx = append(headIdx, i)
		}
	}

	var blocks []string
	for _, start := range headIdx {
		if !headingMatchesAny(lines[start], keys) {
			continue
		}
		end := len(lines)
		for _, h := range headIdx {
			if h > start {
				end = h
				break
			}
		}
		block := strings.TrimSpace(strings.Join(lines[start:end], "\n"))
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

func nonEmptyLines(block string) []string {
	var out []string
	for _, ln := range strings.Split(block, "\n") {
		if strings.TrimSpace(ln) != "" {
			out = append(out, ln)
		}
	}
	return out
}

// parseExperienceBlock builds role entries from an experience section.
// Two layouts are supported: company header then title then bullets,
// and title then company header then bullets.
func parseExperienceBlock(block string) []ExperienceEntry {
	lines := nonEmptyLines(block)
	if len(lines) == 0 {
		return []ExperienceEntry{}
	}
	lines = lines[1:] // drop the heading itself

	entries := []ExperienceEntry{}
	var cur *ExperienceEntry
	expectingTitle := false
	pendingTitle := ""

	for idx, raw := range lines {
		line := strings.TrimSpace(raw)

		if isCompanyHeader(line) {
			if cur != nil {
				entries = append(entries, *cur)
			}
			h := splitHeader(line)
			cur = &ExperienceEntry{
				Company:  strPtr(h.Company),
				Location: strPtr(h.Location),
				Start:    strPtr(h.Start),
				End:      strPtr(h.End),
				Bullets:  []string{},
			}
			if pendingTitle != "" {
				cur.Title = strPtr(cleanLine(pendingTitle))
				pendingTitle = ""
				expectingTitle = false
			} else {
				expectingTitle = true
			}
			continue
		}

		if isBullet(line) {
			if cur == nil {
				continue // bullet without a role, ignore
			}
			cur.Bullets = append(cur.Bullets, cleanLine(bulletRe.ReplaceAllString(line, "")))
			continue
		}

		// The first plain line after a header is the role title.
		if expectingTitle && cur != nil {
			cur.Title = strPtr(cleanLine(line))
			expectingTitle = false
			continue
		}

		// Otherwise prefer continuation of the last bullet or title.
		if cur != nil && len(cur.Bullets) > 0 {
			cur.Bullets[len(cur.Bullets)-1] = cleanLine(cur.Bullets[len(cur.Bullets)-1] + " " + line)
			continue
		}
		if cur != nil && cur.Title != nil {
			cur.Title = strPtr(cleanLine(*cur.Title + " " + line))
			continue
		}

		// Title announced before its header.
		nextIsHeader := idx+1 < len(lines) && isCompanyHeader(strings.TrimSpace(lines[idx+1]))
		if nextIsHeader && looksLikeTitle(line) {
			pendingTitle = line
			continue
		}

		// Stray text, ignore.
	}

	if cur != nil {
		entries = append(entries, *cur)
	}
	return entries
}

// parseEducationBlock pairs degree lines with the school line that
// follows. School-first layouts (school line with a year, then a
// degree line) are handled as a fallback.
func parseEducationBlock(block string) []EducationEntry {
	lines := nonEmptyLines(block)
	if len(lines) == 0 {
		return []EducationEntry{}
	}
	lines = lines[1:] // drop the heading itself

	out := []EducationEntry{}
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		if deg, ok := degreeHint(line); ok {
			entry := EducationEntry{Degree: deg}
			if i+1 < len(lines) {
				next := strings.TrimSpace(lines[i+1])
				h := splitHeader(next)
				entry.School = strPtr(h.Company)
				entry.Location = strPtr(h.Location)
				entry.Start = strPtr(h.Start)
				entry.End = strPtr(h.End)
				if h.Start == "" && h.End == "" {
					entry.Year = strPtr(yearRe.FindString(next))
				}
				i++
			}
			out = append(out, entry)
			continue
		}

		// School-first layout.
		h := splitHeader(line)
		hasYear := h.Start != "" || h.End != "" || yearRe.MatchString(line)
		if h.Company != "" && hasYear && i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if deg, ok := degreeHint(next); ok {
				out = append(out, EducationEntry{
					Degree:   deg,
					School:   strPtr(h.Company),
					Location: strPtr(h.Location),
					Start:    strPtr(h.Start),
					End:      strPtr(h.End),
				})
				i++
			}
		}
	}
	return out
}
