package match

import (
	"reflect"
	"testing"
)

func TestRatio(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"python", "python", 100},
		{"", "python", 0},
		{"python", "", 0},
		{"python", "pythn", 83},
		{"aws", "gcp", 0},
	}
	for _, tc := range cases {
		if got := Ratio(tc.a, tc.b); got != tc.want {
			t.Errorf("Ratio(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestTokenSetRatioReorder(t *testing.T) {
	if got := TokenSetRatio("data science", "science data"); got != 100 {
		t.Fatalf("TokenSetRatio(reordered) = %d, want 100", got)
	}
	if got := TokenSetRatio("data data science", "science data"); got != 100 {
		t.Fatalf("TokenSetRatio(duplicated) = %d, want 100", got)
	}
}

func TestPartialRatioSubstring(t *testing.T) {
	if got := PartialRatio("learning", "machine learning"); got != 100 {
		t.Fatalf("PartialRatio(substring) = %d, want 100", got)
	}
	if got := PartialRatio("kubernetes", "kubernetes administration"); got != 100 {
		t.Fatalf("PartialRatio(prefix) = %d, want 100", got)
	}
}

func TestMatchAgainstPartition(t *testing.T) {
	engine, err := NewEngine(nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	source := NewSet("python", "microservice", "learning", "aws")
	target := NewSet("python", "microservices", "learn", "elephant", "golang")

	result := engine.MatchAgainst(source, target)

	union := result.Matched.Union(result.Unmatched)
	if !reflect.DeepEqual(union, target) {
		t.Fatalf("matched + unmatched = %v, want the target %v", union.Sorted(), target.Sorted())
	}
	if inter := result.Matched.Intersect(result.Unmatched); inter.Len() != 0 {
		t.Fatalf("matched and unmatched overlap: %v", inter.Sorted())
	}

	if !result.Matched.Has("python") {
		t.Error("verbatim hit python not matched")
	}
	if !result.Matched.Has("microservices") {
		t.Error("near variant microservices not matched by the whole-string scorer")
	}
	if !result.Matched.Has("learn") {
		t.Error("truncation learn not matched by the partial scorer")
	}
	if !result.Unmatched.Has("elephant") || !result.Unmatched.Has("golang") {
		t.Errorf("unmatched = %v, want elephant and golang", result.Unmatched.Sorted())
	}
}

func TestMatchAgainstEmptySides(t *testing.T) {
	engine, err := NewEngine(nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	empty := engine.MatchAgainst(NewSet("python"), NewSet())
	if empty.Matched.Len() != 0 || empty.Unmatched.Len() != 0 {
		t.Fatalf("empty target: got %v / %v", empty.Matched.Sorted(), empty.Unmatched.Sorted())
	}

	noSource := engine.MatchAgainst(NewSet(), NewSet("python", "aws"))
	if noSource.Matched.Len() != 0 || noSource.Unmatched.Len() != 2 {
		t.Fatalf("empty source: got %v / %v", noSource.Matched.Sorted(), noSource.Unmatched.Sorted())
	}
}

func TestMatchAgainstCacheEquivalence(t *testing.T) {
	cached, err := NewEngine(DefaultConfig(), nil, nil, nil)
	if err != nil {
		t.Fatalf("NewEngine(cached) error = %v", err)
	}
	uncachedCfg := DefaultConfig()
	uncachedCfg.CacheSize = 0
	uncached, err := NewEngine(uncachedCfg, nil, nil, nil)
	if err != nil {
		t.Fatalf("NewEngine(uncached) error = %v", err)
	}

	source := NewSet("python", "javascript", "machine", "learning", "aws")
	targets := []Set{
		NewSet("python", "pythn", "java", "reactjs"),
		NewSet("machine", "lerning", "gcp"),
		NewSet("python", "pythn", "java", "reactjs"), // repeat hits the cache
	}

	for _, target := range targets {
		a := cached.MatchAgainst(source, target)
		b := uncached.MatchAgainst(source, target)
		if !reflect.DeepEqual(a.Matched, b.Matched) || !reflect.DeepEqual(a.Unmatched, b.Unmatched) {
			t.Fatalf("cache changed results for %v: %v vs %v", target.Sorted(), a.Matched.Sorted(), b.Matched.Sorted())
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, mode := range []string{"word", "skill", "overall", " Word ", "OVERALL"} {
		if _, err := ParseMode(mode); err != nil {
			t.Errorf("ParseMode(%q) error = %v", mode, err)
		}
	}
	if _, err := ParseMode("semantic"); err == nil {
		t.Error("ParseMode(semantic): expected error")
	}
}
