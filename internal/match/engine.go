// Package match implements the deterministic resume / job-description
// similarity engine: tokenization, phrase extraction, bounded synonym
// expansion, multi-scorer fuzzy matching and category-weighted scoring.
// An Engine is stateless per call apart from a bounded best-match cache
// and is safe for concurrent use.
package match

import (
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/harishsure007/Jobflowai/internal/catalog"
	"github.com/harishsure007/Jobflowai/internal/semantic"
)

// ErrUnknownMode is returned when the comparison mode is not one of word,
// skill or overall.
var ErrUnknownMode = errors.New("unknown comparison mode")

// Mode selects the comparison strategy.
type Mode string

const (
	// ModeWord scores generic word and phrase overlap.
	ModeWord Mode = "word"
	// ModeSkill restricts both sides to the skill catalog.
	ModeSkill Mode = "skill"
	// ModeOverall blends words, skills and phrases with category weights.
	ModeOverall Mode = "overall"
)

// Modes lists the supported comparison modes.
func Modes() []Mode {
	return []Mode{ModeWord, ModeSkill, ModeOverall}
}

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeWord:
		return ModeWord, nil
	case ModeSkill:
		return ModeSkill, nil
	case ModeOverall:
		return ModeOverall, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// MatchResult partitions a comparison target set: Matched and Unmatched
// are disjoint and their union is the target.
type MatchResult struct {
	Matched   Set
	Unmatched Set
}

// Engine computes similarity reports against a fixed catalog and config.
type Engine struct {
	cfg      *Config
	catalog  *catalog.Catalog
	semantic semantic.Scorer
	logger   *zap.Logger

	// cache memoizes per-scorer best scores keyed by (term, sorted
	// candidate snapshot). Purely an optimization: results are identical
	// with the cache disabled.
	cache *lru.Cache[string, fuzzyScores]
}

// NewEngine builds an engine. Nil arguments fall back to defaults: the
// built-in catalog, a disabled semantic scorer and a no-op logger.
func NewEngine(cfg *Config, cat *catalog.Catalog, sem semantic.Scorer, logger *zap.Logger) (*Engine, error) {
	if cat == nil {
		cat = catalog.Default()
	}
	if sem == nil {
		sem = semantic.Disabled{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Engine{
		cfg:      cfg.withDefaults(),
		catalog:  cat,
		semantic: sem,
		logger:   logger,
	}

	if e.cfg.CacheSize > 0 {
		cache, err := lru.New[string, fuzzyScores](e.cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating fuzzy match cache: %w", err)
		}
		e.cache = cache
	}

	return e, nil
}

// Config returns the effective engine configuration.
func (e *Engine) Config() Config {
	return *e.cfg
}

// MatchAgainst checks every element of target for a strong match in
// source. Verbatim hits are accepted immediately; the rest are fuzzed
// with the whole-string, token-set and partial scorers, each held to its
// own acceptance bar. The result partitions target and is independent of
// iteration order.
func (e *Engine) MatchAgainst(source, target Set) MatchResult {
	result := MatchResult{Matched: make(Set), Unmatched: make(Set)}
	if target.Len() == 0 {
		return result
	}
	if source.Len() == 0 {
		result.Unmatched = target.Clone()
		return result
	}

	candidates := sortedSlice(source)
	snapshot := candidateKey(candidates)

	for term := range target {
		if source.Has(term) {
			result.Matched.Add(term)
			continue
		}

		if e.scoresFor(term, candidates, snapshot).accepted(e.cfg) {
			result.Matched.Add(term)
		} else {
			result.Unmatched.Add(term)
		}
	}
	return result
}

func (e *Engine) scoresFor(term string, candidates []string, snapshot string) fuzzyScores {
	if e.cache == nil {
		return bestFuzzyScores(term, candidates)
	}

	key := term + "\x00" + snapshot
	if cached, ok := e.cache.Get(key); ok {
		return cached
	}

	scores := bestFuzzyScores(term, candidates)
	e.cache.Add(key, scores)
	return scores
}

// phraseHits resolves the phrases of the desired side that were not found
// verbatim. Each remaining phrase is fuzzed against sliding token windows
// of the source text rather than the whole document, avoiding the false
// positives a short phrase picks up against multi-page text.
func (e *Engine) phraseHits(sourceNorm string, missing Set) MatchResult {
	result := MatchResult{Matched: make(Set), Unmatched: make(Set)}
	if missing.Len() == 0 {
		return result
	}

	words := strings.Fields(sourceNorm)
	for phrase := range missing {
		if e.phraseInWindows(phrase, words) {
			result.Matched.Add(phrase)
		} else {
			result.Unmatched.Add(phrase)
		}
	}
	return result
}

func (e *Engine) phraseInWindows(phrase string, words []string) bool {
	if len(words) == 0 {
		return false
	}

	window := e.cfg.PhraseWindow
	if need := len(strings.Fields(phrase)) + 6; need > window {
		window = need
	}

	for start := 0; ; start += e.cfg.PhraseStep {
		end := start + window
		if end > len(words) {
			end = len(words)
		}
		if start >= end {
			break
		}

		text := strings.Join(words[start:end], " ")
		if Ratio(phrase, text) >= e.cfg.PhraseStrict {
			return true
		}
		if PartialRatio(phrase, text) >= e.cfg.PhraseLoose {
			return true
		}

		if end == len(words) {
			break
		}
	}
	return false
}
