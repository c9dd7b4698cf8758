package scoring

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Semantic provider names accepted in configuration.
const (
	ProviderFixed  = "fixed"
	ProviderRandom = "random"
)

// SemanticScorer supplies the second term of the final score.
type SemanticScorer interface {
	SemanticScore(ctx context.Context, resumeText, jdText string) (float64, error)
	Name() string
}

// FixedScorer returns the same value for every input.
type FixedScorer struct {
	value float64
}

// NewFixedScorer returns a scorer that always yields value.
func NewFixedScorer(value float64) *FixedScorer {
	return &FixedScorer{value: value}
}

// SemanticScore returns the fixed value.
func (f *FixedScorer) SemanticScore(ctx context.Context, resumeText, jdText string) (float64, error) {
	return f.value, nil
}

// Name returns ProviderFixed.
func (f *FixedScorer) Name() string { return ProviderFixed }

// RandomScorer returns a fresh value in [0,1) per call, so identical inputs can score
// differently between runs.
type RandomScorer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomScorer returns a RandomScorer seeded with seed. A zero seed uses the current time.
func NewRandomScorer(seed int64) *RandomScorer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomScorer{rng: rand.New(rand.NewSource(seed))}
}

// SemanticScore returns a value in [0,1).
func (r *RandomScorer) SemanticScore(ctx context.Context, resumeText, jdText string) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64(), nil
}

// Name returns ProviderRandom.
func (r *RandomScorer) Name() string { return ProviderRandom }

// NewSemanticScorer builds the provider named by name.
func NewSemanticScorer(name string, fixedValue float64) (SemanticScorer, error) {
	switch name {
	case "", ProviderFixed:
		return NewFixedScorer(fixedValue), nil
	case ProviderRandom:
		return NewRandomScorer(0), nil
	default:
		return nil, fmt.Errorf("unknown semantic provider %q", name)
	}
}
