package ports

import (
	"context"
	"fmt"

	"trip-match-service/internal/domain"
)

// StatusOK marks a routable origin/destination pair.
const StatusOK = "OK"

// One cell of a duration matrix: the travel time for a single
// origin/destination pair, or a provider status explaining its absence.
type MatrixCell struct {
	DurationSeconds int
	Status          string
}

// OK reports whether the provider routed this pair.
func (c MatrixCell) OK() bool { return c.Status == StatusOK }

// Contract for retrieving pairwise travel durations from a routing provider.
//
// Implementations make exactly one external call per invocation and do not
// retry, batch-split, or cache. Per-pair failures come back inline as not-OK
// cells; only a failure of the lookup itself is returned as an error (a
// GatewayError), so callers can tell "the request failed" apart from "some
// pairs are simply unroutable".
type DurationMatrixProvider interface {
	// Return a len(origins) x len(destinations) grid of durations.
	// Both lists must be non-empty.
	Durations(ctx context.Context, origins, destinations []domain.Coordinates) ([][]MatrixCell, error)
}

// GatewayError reports that a duration-matrix lookup could not be completed:
// the provider was unreachable or returned a non-success top-level status.
// It carries the provider's diagnostic for the caller.
type GatewayError struct {
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("duration matrix: %s: %v", e.Message, e.Err)
	}
	return "duration matrix: " + e.Message
}

func (e *GatewayError) Unwrap() error { return e.Err }
