package matrix

import (
	"context"
	"sync"

	"trip-match-service/internal/domain"
	"trip-match-service/internal/ports"
)

type MockPair struct {
	From, To domain.Coordinates
	Seconds  int
}

// MockMatrixProvider is a deterministic DurationMatrixProvider for tests.
// Pairs without an entry come back as ZERO_RESULTS cells rather than errors,
// mirroring per-pair unroutability. Calls counts invocations so tests can
// assert how many external lookups a code path performs; lookups within one
// ranking run concurrently, hence the mutex.
type MockMatrixProvider struct {
	m map[string]int

	mu    sync.Mutex
	Calls int
	// Fail, when set, is returned from every Durations call in place of a grid.
	Fail error
}

func NewMockMatrixProvider(pairs []MockPair) *MockMatrixProvider {
	m := make(map[string]int, len(pairs))
	for _, p := range pairs {
		m[p.From.LatLng()+"|"+p.To.LatLng()] = p.Seconds
	}
	return &MockMatrixProvider{m: m}
}

func (p *MockMatrixProvider) Durations(
	ctx context.Context,
	origins, destinations []domain.Coordinates,
) ([][]ports.MatrixCell, error) {
	p.mu.Lock()
	p.Calls++
	fail := p.Fail
	p.mu.Unlock()

	if fail != nil {
		return nil, fail
	}

	grid := make([][]ports.MatrixCell, len(origins))
	for i, o := range origins {
		row := make([]ports.MatrixCell, len(destinations))
		for j, d := range destinations {
			if seconds, ok := p.m[o.LatLng()+"|"+d.LatLng()]; ok {
				row[j] = ports.MatrixCell{DurationSeconds: seconds, Status: ports.StatusOK}
			} else {
				row[j] = ports.MatrixCell{Status: "ZERO_RESULTS"}
			}
		}
		grid[i] = row
	}

	return grid, nil
}
