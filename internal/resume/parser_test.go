package resume

import (
	"strings"
	"testing"

	"github.com/harishsure007/Jobflowai/internal/catalog"
)

const sampleResume = `John Smith
Hyderabad, India | john.smith@example.com | (415) 555-0123

Skills
Python, Machine Learning, AWS, Docker

Experience
BeeData Technology — Hyderabad, India Jan 2020 – Dec 2022
Software Engineer
• built data pipelines with python and aws
• deployed services with docker

Education
BSc in Computer Science
Some University — Hyderabad, India 2016 – 2020
`

func TestParseFullResume(t *testing.T) {
	got := Parse(sampleResume, catalog.Default(), DefaultOptions())

	if got.Name == nil || *got.Name != "John Smith" {
		t.Fatalf("Name = %v, want John Smith", got.Name)
	}
	if got.Email == nil || *got.Email != "john.smith@example.com" {
		t.Fatalf("Email = %v, want john.smith@example.com", got.Email)
	}
	if got.Phone == nil || *got.Phone != "+14155550123" {
		t.Fatalf("Phone = %v, want +14155550123", got.Phone)
	}

	if len(got.Experience) != 1 {
		t.Fatalf("Experience entries = %d, want 1", len(got.Experience))
	}
	exp := got.Experience[0]
	if exp.Company == nil || *exp.Company != "beedata technology" {
		t.Errorf("Company = %v, want beedata technology", exp.Company)
	}
	if exp.Location == nil || *exp.Location != "hyderabad, india" {
		t.Errorf("Location = %v, want hyderabad, india", exp.Location)
	}
	if exp.Start == nil || *exp.Start != "jan 2020" {
		t.Errorf("Start = %v, want jan 2020", exp.Start)
	}
	if exp.End == nil || *exp.End != "dec 2022" {
		t.Errorf("End = %v, want dec 2022", exp.End)
	}
	if exp.Title == nil || *exp.Title != "software engineer" {
		t.Errorf("Title = %v, want software engineer", exp.Title)
	}
	if len(exp.Bullets) != 2 {
		t.Fatalf("Bullets = %v, want 2 entries", exp.Bullets)
	}
	if exp.Bullets[0] != "built data pipelines with python and aws" {
		t.Errorf("Bullets[0] = %q", exp.Bullets[0])
	}

	if len(got.Education) != 1 {
		t.Fatalf("Education entries = %d, want 1", len(got.Education))
	}
	edu := got.Education[0]
	if edu.Degree != "bachelor" {
		t.Errorf("Degree = %q, want bachelor", edu.Degree)
	}
	if edu.School == nil || *edu.School != "some university" {
		t.Errorf("School = %v, want some university", edu.School)
	}
	if edu.Start == nil || *edu.Start != "2016" {
		t.Errorf("Start = %v, want 2016", edu.Start)
	}
	if edu.End == nil || *edu.End != "2020" {
		t.Errorf("End = %v, want 2020", edu.End)
	}

	wantSkills := []string{"aws", "docker", "machine learning", "python"}
	for _, w := range wantSkills {
		found := false
		for _, s := range got.Skills {
			if s == w {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Skills = %v, want to include %q", got.Skills, w)
		}
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   \n\n  "} {
		got := Parse(input, catalog.Default(), DefaultOptions())
		if got.Name != nil || got.Email != nil || got.Phone != nil {
			t.Errorf("Parse(%q) contact fields = %v/%v/%v, want all nil", input, got.Name, got.Email, got.Phone)
		}
		if len(got.Skills) != 0 || len(got.Education) != 0 || len(got.Experience) != 0 {
			t.Errorf("Parse(%q) lists not empty: %+v", input, got)
		}
		if got.Skills == nil || got.Education == nil || got.Experience == nil {
			t.Errorf("Parse(%q) lists should be empty, not nil", input)
		}
	}
}

func TestParseTitleBeforeHeader(t *testing.T) {
	text := `Experience
Senior Software Engineer
BeeData Technology — Hyderabad, India Jan 2020 – Dec 2022
• shipped the matching service
`
	got := Parse(text, catalog.Default(), DefaultOptions())
	if len(got.Experience) != 1 {
		t.Fatalf("Experience entries = %d, want 1", len(got.Experience))
	}
	exp := got.Experience[0]
	if exp.Title == nil || *exp.Title != "senior software engineer" {
		t.Errorf("Title = %v, want senior software engineer", exp.Title)
	}
	if exp.Company == nil || *exp.Company != "beedata technology" {
		t.Errorf("Company = %v, want beedata technology", exp.Company)
	}
}

func TestParseBulletContinuation(t *testing.T) {
	text := `Experience
BeeData Technology — Hyderabad, India Jan 2020 – Dec 2022
Software Engineer
• improved the ranking pipeline
which cut latency in half
`
	got := Parse(text, catalog.Default(), DefaultOptions())
	if len(got.Experience) != 1 {
		t.Fatalf("Experience entries = %d, want 1", len(got.Experience))
	}
	bullets := got.Experience[0].Bullets
	if len(bullets) != 1 {
		t.Fatalf("Bullets = %v, want continuation folded into one", bullets)
	}
	if bullets[0] != "improved the ranking pipeline which cut latency in half" {
		t.Errorf("Bullets[0] = %q", bullets[0])
	}
}

func TestParseEducationSchoolFirst(t *testing.T) {
	text := `Education
Some University — Boston, MA 2014 – 2018
BSc in Computer Science
`
	got := Parse(text, catalog.Default(), DefaultOptions())
	if len(got.Education) != 1 {
		t.Fatalf("Education entries = %d, want 1", len(got.Education))
	}
	edu := got.Education[0]
	if edu.Degree != "bachelor" {
		t.Errorf("Degree = %q, want bachelor", edu.Degree)
	}
	if edu.School == nil || *edu.School != "some university" {
		t.Errorf("School = %v, want some university", edu.School)
	}
}

func TestParseEducationSingleYear(t *testing.T) {
	text := `Education
MSc Data Science
Some University, Boston 2019
`
	got := Parse(text, catalog.Default(), DefaultOptions())
	if len(got.Education) != 1 {
		t.Fatalf("Education entries = %d, want 1", len(got.Education))
	}
	edu := got.Education[0]
	if edu.Degree != "master" {
		t.Errorf("Degree = %q, want master", edu.Degree)
	}
	if edu.Year == nil || *edu.Year != "2019" {
		t.Errorf("Year = %v, want 2019", edu.Year)
	}
	if edu.Start != nil || edu.End != nil {
		t.Errorf("Start/End = %v/%v, want nil without a range", edu.Start, edu.End)
	}
}

func TestExtractEmailObfuscated(t *testing.T) {
	got := extractEmail("reach me: jane doe at example dot com")
	if got == nil || *got != "doe@example.com" {
		t.Fatalf("extractEmail = %v, want doe@example.com", got)
	}
}

func TestExtractPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"call (415) 555-0123 today", "+14155550123"},
		{"+1-415-555-0123", "+14155550123"},
	}
	for _, tc := range cases {
		got := extractPhone(tc.in)
		if got == nil || *got != tc.want {
			t.Errorf("extractPhone(%q) = %v, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSkillConsolidation(t *testing.T) {
	cat := catalog.New(catalog.Data{
		Skills:    []string{"machine", "learning", "machine learning", "python"},
		StopWords: []string{"and"},
	})
	got := extractSkills("python and machine learning", cat, false)
	for _, s := range got {
		if s == "machine" || s == "learning" {
			t.Fatalf("skills %v still contain a word shadowed by its phrase", got)
		}
	}
	want := map[string]bool{"machine learning": false, "python": false}
	for _, s := range got {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for s, seen := range want {
		if !seen {
			t.Errorf("skills %v missing %q", got, s)
		}
	}
}

func TestFuzzySkillFill(t *testing.T) {
	cat := catalog.New(catalog.Data{
		Skills: []string{"javascript", "python"},
	})
	got := extractSkills("experienced javascrpt developer", cat, true)
	found := false
	for _, s := range got {
		if s == "javascript" {
			found = true
		}
	}
	if !found {
		t.Fatalf("skills = %v, want fuzzy fill to recover javascript", got)
	}
}

func TestGuessNameSkipsContactLines(t *testing.T) {
	text := strings.Join([]string{
		"john@example.com",
		"+1 415 555 0123",
		"Jane van Dijk",
		"Software Engineer",
	}, "\n")
	got := guessName(strings.ToLower(text))
	if got == nil || *got != "Jane van Dijk" {
		t.Fatalf("guessName = %v, want Jane van Dijk", got)
	}
}
