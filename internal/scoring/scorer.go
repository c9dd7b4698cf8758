// Package scoring turns a skill match into a 0..100 score and a verdict tier.
package scoring

import (
	"context"
	"fmt"
	"math"

	"github.com/hyperjump/screener/internal/models"
)

// Verdict thresholds, inclusive at the lower bound.
const (
	HighThreshold   = 75
	MediumThreshold = 50
)

// Weights of the two score terms.
const (
	HardWeight     = 0.5
	SemanticWeight = 0.5
)

// HardPercentage returns floor(100*matched/required), or 0 when required is not positive.
func HardPercentage(matched, required int) int {
	if required <= 0 {
		return 0
	}
	return (100 * matched) / required
}

// Final blends the hard percentage with a semantic term and floors the result into 0..100.
func Final(hard int, semantic float64) int {
	v := math.Floor(HardWeight*float64(hard) + SemanticWeight*semantic)
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 100:
		return 100
	}
	return int(v)
}

// VerdictFor maps a final score to its tier.
func VerdictFor(score int) models.Verdict {
	switch {
	case score >= HighThreshold:
		return models.VerdictHigh
	case score >= MediumThreshold:
		return models.VerdictMedium
	default:
		return models.VerdictLow
	}
}

// Scorer computes evaluations from match results using a SemanticScorer for the second term.
type Scorer struct {
	semantic SemanticScorer
}

// NewScorer returns a Scorer. A nil semantic scorer behaves like FixedScorer(0).
func NewScorer(semantic SemanticScorer) *Scorer {
	if semantic == nil {
		semantic = NewFixedScorer(0)
	}
	return &Scorer{semantic: semantic}
}

// Provider returns the name of the semantic provider in use.
func (s *Scorer) Provider() string {
	return s.semantic.Name()
}

// Score computes the evaluation for match. requiredCount is the size of the required-skill list.
func (s *Scorer) Score(ctx context.Context, match models.MatchResult, requiredCount int, resumeText, jdText string) (models.Evaluation, error) {
	semantic, err := s.semantic.SemanticScore(ctx, resumeText, jdText)
	if err != nil {
		return models.Evaluation{}, fmt.Errorf("semantic score: %w", err)
	}
	hard := HardPercentage(len(match.Matched), requiredCount)
	final := Final(hard, semantic)
	return models.Evaluation{
		Score:          final,
		Verdict:        VerdictFor(final),
		HardPercentage: hard,
		SemanticScore:  semantic,
		MatchedSkills:  nonNil(match.Matched),
		MissingSkills:  nonNil(match.Missing),
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
