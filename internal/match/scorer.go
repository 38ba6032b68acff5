package match

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/harishsure007/Jobflowai/internal/logger"
	"github.com/harishsure007/Jobflowai/internal/textnorm"
)

// ScoreOptions tunes a single Score call. The zero value applies the
// engine defaults.
type ScoreOptions struct {
	// TopN caps the keyword lists. Zero uses the configured default, a
	// negative value removes the cap.
	TopN int
	// Debug attaches the per-category breakdown to the report.
	Debug bool
}

// Score compares a resume against a job description and returns a compact
// report. Both inputs are raw text; normalization, tokenization, synonym
// expansion and phrase extraction happen here. The only error condition
// is an unknown mode: empty or malformed text yields a zero report.
func (e *Engine) Score(ctx context.Context, resumeText, jdText string, mode Mode, opts *ScoreOptions) (*Report, error) {
	mode, err := ParseMode(string(mode))
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &ScoreOptions{}
	}

	limit := e.cfg.TopKeywords
	if opts.TopN > 0 {
		limit = opts.TopN
	} else if opts.TopN < 0 {
		limit = 0
	}

	normResume := textnorm.Normalize(resumeText)
	normJD := textnorm.Normalize(jdText)

	resumeTokens := ExpandSynonyms(Tokenize(normResume, e.catalog, e.cfg.Stemming), e.catalog, e.cfg.SynonymHops, e.cfg.SynonymCap)
	jdTokens := ExpandSynonyms(Tokenize(normJD, e.catalog, e.cfg.Stemming), e.catalog, e.cfg.SynonymHops, e.cfg.SynonymCap)

	resumePhrases := ExtractPhrases(normResume, e.catalog)
	jdPhrases := ExtractPhrases(normJD, e.catalog)

	// Nothing to measure against: report zero instead of dividing by it.
	if jdTokens.Len() == 0 && jdPhrases.Len() == 0 {
		return &Report{
			MatchPercentage:   0.0,
			MatchedKeywords:   []string{},
			UnmatchedKeywords: []string{},
		}, nil
	}

	words := e.MatchAgainst(resumeTokens, jdTokens)

	exactPhrases := jdPhrases.Intersect(resumePhrases)
	fuzzyPhrases := e.phraseHits(normResume, jdPhrases.Diff(exactPhrases))
	matchedPhrases := exactPhrases.Union(fuzzyPhrases.Matched)
	unmatchedPhrases := fuzzyPhrases.Unmatched

	resumeSkills := e.skillSubset(resumeTokens)
	jdSkills := e.skillSubset(jdTokens)
	skills := e.MatchAgainst(resumeSkills, jdSkills)

	var (
		matched   Set
		unmatched Set
		percent   float64
		base      *float64
		sem       *float64
	)

	switch mode {
	case ModeSkill:
		matched = skills.Matched.Union(matchedPhrases)
		desired := jdSkills.Union(jdPhrases)
		unmatched = desired.Diff(matched)
		if desired.Len() > 0 {
			percent = float64(matched.Intersect(desired).Len()) / float64(desired.Len()) * 100
		}

	case ModeOverall:
		matched = words.Matched.Union(skills.Matched).Union(matchedPhrases)
		score := e.cfg.WordWeight*float64(matched.Intersect(jdTokens).Len()) +
			e.cfg.SkillWeight*float64(matched.Intersect(jdSkills).Len()) +
			e.cfg.PhraseWeight*float64(matched.Intersect(jdPhrases).Len())
		total := e.cfg.WordWeight*float64(jdTokens.Len()) +
			e.cfg.SkillWeight*float64(jdSkills.Len()) +
			e.cfg.PhraseWeight*float64(jdPhrases.Len())
		if total > 0 {
			percent = score / total * 100
		}
		unmatched = jdTokens.Union(jdPhrases).Union(jdSkills).Diff(matched)

		percent, base, sem = e.blendSemantic(ctx, percent, normResume, normJD)

	default: // ModeWord: words plus phrases with equal weight.
		matched = words.Matched.Union(matchedPhrases)
		desired := jdTokens.Union(jdPhrases)
		unmatched = desired.Diff(matched)
		if desired.Len() > 0 {
			percent = float64(matched.Intersect(desired).Len()) / float64(desired.Len()) * 100
		}
	}

	percent = round2(clampPercent(percent))

	report := &Report{
		MatchPercentage:   percent,
		MatchedKeywords:   stableKeywords(matched, limit),
		UnmatchedKeywords: stableKeywords(unmatched, limit),
	}

	if opts.Debug {
		report.Debug = &Debug{
			MatchedWords:     stableKeywords(words.Matched, limit),
			UnmatchedWords:   stableKeywords(words.Unmatched, limit),
			MatchedSkills:    stableKeywords(skills.Matched, limit),
			UnmatchedSkills:  stableKeywords(skills.Unmatched, limit),
			MatchedPhrases:   stableKeywords(matchedPhrases, limit),
			UnmatchedPhrases: stableKeywords(unmatchedPhrases, limit),
			BasePercent:      base,
			SemanticPercent:  sem,
		}
	}

	log := logger.WithMode(e.logger, string(mode))
	for _, c := range []struct {
		name               string
		matched, unmatched Set
	}{
		{"words", words.Matched, words.Unmatched},
		{"skills", skills.Matched, skills.Unmatched},
		{"phrases", matchedPhrases, unmatchedPhrases},
	} {
		log.Debug("category matched",
			zap.String(logger.FieldCategory, c.name),
			zap.Int("matched", c.matched.Len()),
			zap.Int("unmatched", c.unmatched.Len()),
		)
	}
	log.Debug("similarity computed",
		zap.Float64("match_percentage", percent),
		zap.Int("matched", matched.Len()),
		zap.Int("unmatched", unmatched.Len()),
	)

	return report, nil
}

// blendSemantic mixes the deterministic percentage with an embedding
// similarity when a semantic scorer is available. Any failure degrades
// silently to the deterministic score; this path never errors.
func (e *Engine) blendSemantic(ctx context.Context, deterministic float64, normResume, normJD string) (float64, *float64, *float64) {
	similarity, err := e.semantic.Similarity(ctx, normResume, normJD)
	if err != nil {
		e.logger.Debug("semantic similarity unavailable", zap.Error(err))
		return deterministic, nil, nil
	}

	semanticPercent := clampPercent(similarity * 100)
	blended := e.cfg.BaseWeight*deterministic + e.cfg.EmbedWeight*semanticPercent

	basePercent := round2(clampPercent(deterministic))
	semPercent := round2(semanticPercent)
	return blended, &basePercent, &semPercent
}

func (e *Engine) skillSubset(tokens Set) Set {
	out := make(Set)
	for tok := range tokens {
		if e.catalog.IsSkill(tok) {
			out.Add(tok)
		}
	}
	return out
}

func clampPercent(p float64) float64 {
	return math.Max(0.0, math.Min(100.0, p))
}

func round2(p float64) float64 {
	return math.Round(p*100) / 100
}
