// Package catalog holds the static vocabularies the matching engine runs
// against: skills, stopwords, multi-word phrases and synonym aliases. A
// catalog is built once at startup and never mutated afterwards, so it is
// safe to share across concurrent scoring calls.
package catalog

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Data is the serializable form of a catalog, as found in an override file.
type Data struct {
	Skills    []string            `yaml:"skills"`
	StopWords []string            `yaml:"stop_words"`
	Phrases   []string            `yaml:"phrases"`
	Synonyms  map[string][]string `yaml:"synonyms"`
}

// Catalog is an immutable set of vocabularies. Construct with New, Default
// or FromFile.
type Catalog struct {
	skills    map[string]struct{}
	stop      map[string]struct{}
	phrases   []string
	synonyms  map[string][]string
	multiword []multiwordSkill
}

// multiwordSkill pairs a multi-word skill entry with its word-boundary
// pattern, compiled once at construction.
type multiwordSkill struct {
	skill string
	re    *regexp.Regexp
}

// New builds a catalog from the provided data. All entries are lowercased
// and trimmed; empty entries are dropped. Phrases are kept sorted longest
// first so multi-word entries are never shadowed by shorter ones sharing a
// prefix.
func New(d Data) *Catalog {
	c := &Catalog{
		skills:   make(map[string]struct{}, len(d.Skills)),
		stop:     make(map[string]struct{}, len(d.StopWords)),
		synonyms: make(map[string][]string, len(d.Synonyms)),
	}

	for _, s := range d.Skills {
		if s = clean(s); s != "" {
			c.skills[s] = struct{}{}
		}
	}
	for s := range c.skills {
		if strings.Contains(s, " ") {
			c.multiword = append(c.multiword, multiwordSkill{
				skill: s,
				re:    regexp.MustCompile(`\b` + regexp.QuoteMeta(s) + `\b`),
			})
		}
	}
	sort.Slice(c.multiword, func(i, j int) bool {
		return c.multiword[i].skill < c.multiword[j].skill
	})

	for _, s := range d.StopWords {
		if s = clean(s); s != "" {
			c.stop[s] = struct{}{}
		}
	}

	seen := make(map[string]struct{}, len(d.Phrases))
	for _, p := range d.Phrases {
		p = clean(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		c.phrases = append(c.phrases, p)
	}
	sort.Slice(c.phrases, func(i, j int) bool {
		if len(c.phrases[i]) != len(c.phrases[j]) {
			return len(c.phrases[i]) > len(c.phrases[j])
		}
		return c.phrases[i] < c.phrases[j]
	})

	for key, values := range d.Synonyms {
		key = clean(key)
		if key == "" {
			continue
		}
		cleaned := make([]string, 0, len(values))
		for _, v := range values {
			if v = clean(v); v != "" {
				cleaned = append(cleaned, v)
			}
		}
		if len(cleaned) == 0 {
			continue
		}
		sort.Strings(cleaned)
		c.synonyms[key] = cleaned
	}

	return c
}

// FromFile loads a catalog override from a YAML file. Sections present in
// the file replace the built-in defaults; absent or empty sections keep the
// defaults.
func FromFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var override Data
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return nil, fmt.Errorf("parsing catalog file %q: %w", path, err)
	}

	base := defaultData()
	if len(override.Skills) > 0 {
		base.Skills = override.Skills
	}
	if len(override.StopWords) > 0 {
		base.StopWords = override.StopWords
	}
	if len(override.Phrases) > 0 {
		base.Phrases = override.Phrases
	}
	if len(override.Synonyms) > 0 {
		base.Synonyms = override.Synonyms
	}

	return New(base), nil
}

// Default returns a catalog with the built-in vocabularies.
func Default() *Catalog {
	return New(defaultData())
}

// IsSkill reports whether the token or phrase is in the skill catalog.
func (c *Catalog) IsSkill(s string) bool {
	_, ok := c.skills[s]
	return ok
}

// IsStopWord reports whether the token is in the stopword set.
func (c *Catalog) IsStopWord(s string) bool {
	_, ok := c.stop[s]
	return ok
}

// Phrases returns the phrase catalog, longest entries first. The returned
// slice is shared; callers must not modify it.
func (c *Catalog) Phrases() []string {
	return c.phrases
}

// Skills returns the skill catalog as a sorted slice.
func (c *Catalog) Skills() []string {
	out := make([]string, 0, len(c.skills))
	for s := range c.skills {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// MatchMultiwordSkills returns the multi-word skill entries present in the
// text as whole units on word boundaries, sorted.
func (c *Catalog) MatchMultiwordSkills(text string) []string {
	var hits []string
	for _, mw := range c.multiword {
		if mw.re.MatchString(text) {
			hits = append(hits, mw.skill)
		}
	}
	return hits
}

// SkillCount returns the number of entries in the skill catalog.
func (c *Catalog) SkillCount() int {
	return len(c.skills)
}

// Synonyms returns the equivalents configured for the token, or nil. The
// returned slice is shared; callers must not modify it.
func (c *Catalog) Synonyms(token string) []string {
	return c.synonyms[token]
}

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
