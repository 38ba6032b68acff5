package textnorm

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "lowercases", in: "Python Developer", want: "python developer"},
		{name: "dehyphenates", in: "end-to-end data-driven", want: "end to end data driven"},
		{name: "keeps tech punctuation", in: "C++, C# and Node.js!", want: "c++ c# and node.js"},
		{name: "collapses whitespace", in: "python \t  developer\n with aws", want: "python developer with aws"},
		{
			name: "dehyphenates across line wrap",
			in:   "machine-\nlearning engineer",
			want: "machine learning engineer",
		},
		{
			name: "seeds fused ecommerce variant",
			in:   "built an e-commerce platform",
			want: "built an ecommerce e commerce platform",
		},
		{
			name: "seeding respects word boundaries",
			in:   "the commerce team",
			want: "the commerce team",
		},
		{
			name: "no reseeding when fused form present",
			in:   "ecommerce and e-commerce",
			want: "ecommerce and e commerce",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Python Developer",
		"end-to-end Machine-Learning pipelines (C++/C#)",
		"built an e-commerce platform",
		"machine-\nlearning   across\nlines",
		"the commerce team",
		"résumé for señor developer",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeForParsing(t *testing.T) {
	in := "John  Doe\r\njohn.doe@example.com\r\n\rEXPERIENCE\nmachine-\nlearning engineer"
	got := NormalizeForParsing(in)

	if strings.Contains(got, "\r") {
		t.Fatalf("expected unified EOLs, got %q", got)
	}

	lines := strings.Split(got, "\n")
	if lines[0] != "john doe" {
		t.Fatalf("expected collapsed first line, got %q", lines[0])
	}

	if lines[1] != "john.doe@example.com" {
		t.Fatalf("expected email preserved, got %q", lines[1])
	}

	if !strings.Contains(got, "machine learning engineer") {
		t.Fatalf("expected line-wrap hyphen removed, got %q", got)
	}

	if got != strings.ToLower(got) {
		t.Fatalf("expected lowercased output")
	}

	if NormalizeForParsing("") != "" {
		t.Fatalf("expected empty output for empty input")
	}
}
