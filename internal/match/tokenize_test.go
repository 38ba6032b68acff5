package match

import (
	"testing"

	"github.com/harishsure007/Jobflowai/internal/catalog"
)

func TestTokenizeDropsStopwords(t *testing.T) {
	cat := catalog.Default()
	got := Tokenize("looking for a python engineer with aws", cat, false)

	for _, want := range []string{"looking", "python", "engineer", "aws"} {
		if !got.Has(want) {
			t.Errorf("tokens %v missing %q", got.Sorted(), want)
		}
	}
	for _, stop := range []string{"for", "a", "with"} {
		if got.Has(stop) {
			t.Errorf("tokens %v contain stopword %q", got.Sorted(), stop)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if got := Tokenize("", catalog.Default(), false); got.Len() != 0 {
		t.Fatalf("Tokenize(\"\") = %v, want empty", got.Sorted())
	}
}

func TestTokenizeStemming(t *testing.T) {
	cat := catalog.New(catalog.Data{})
	got := Tokenize("running developers", cat, true)

	if !got.Has("run") {
		t.Errorf("tokens %v missing stem run", got.Sorted())
	}
	if !got.Has("develop") {
		t.Errorf("tokens %v missing stem develop", got.Sorted())
	}
}

func TestExtractPhrases(t *testing.T) {
	cat := catalog.Default()

	got := ExtractPhrases("strong machine learning background", cat)
	if !got.Has("machine learning") {
		t.Fatalf("phrases %v missing machine learning", got.Sorted())
	}

	// Word-boundary safety: no phrase hit inside a longer word.
	got = ExtractPhrases("worked on data sciences teams", cat)
	if got.Has("data science") {
		t.Fatalf("phrases %v must not match inside %q", got.Sorted(), "sciences")
	}

	if got := ExtractPhrases("", cat); got.Len() != 0 {
		t.Fatalf("ExtractPhrases(\"\") = %v, want empty", got.Sorted())
	}
}
