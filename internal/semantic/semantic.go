// Package semantic is the optional embedding-based similarity capability.
// The engine depends on the Scorer interface only; deployments without an
// embedding provider use the Disabled variant and scoring stays fully
// deterministic.
package semantic

import (
	"context"
	"errors"
)

// ErrUnavailable signals that no semantic scorer is configured or that
// the configured one cannot serve the request. Callers treat it as "fall
// back to deterministic scoring", never as a hard failure.
var ErrUnavailable = errors.New("semantic scorer is unavailable")

// Scorer computes a similarity in [0,1] between two texts.
type Scorer interface {
	Similarity(ctx context.Context, a, b string) (float64, error)
}

// Disabled is the no-op Scorer: it always reports ErrUnavailable.
type Disabled struct{}

// Similarity implements Scorer.
func (Disabled) Similarity(context.Context, string, string) (float64, error) {
	return 0, ErrUnavailable
}
