package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"trip-match-service/internal/domain"
	"trip-match-service/internal/platform/obs"
	"trip-match-service/internal/ports"
)

type RankMatchesRequest struct {
	Trip       TripDescriptor
	Candidates []TripDescriptor
}

// RankMatches scores every candidate against the primary trip and returns
// them ordered by ascending detour, unroutable candidates last.
//
// An empty candidate list is a valid request: it yields an empty match list
// without touching the provider. Otherwise exactly two matrix lookups are
// performed (primary origin -> candidate origins, candidate destinations ->
// primary destination); a failure of either is fatal to the call.
func RankMatches(
	ctx context.Context,
	req RankMatchesRequest,
	provider ports.DurationMatrixProvider,
) (_ []domain.MatchResult, err error) {
	defer obs.Time(ctx, "services.RankMatches")(&err)

	if err := validateGroup("", req.Trip, req.Candidates); err != nil {
		return nil, err
	}

	if len(req.Candidates) == 0 {
		return []domain.MatchResult{}, nil
	}

	primary := req.Trip.leg()
	candidates := make([]domain.TripLeg, len(req.Candidates))
	for i, c := range req.Candidates {
		candidates[i] = c.leg()
	}

	originLegs, destinationLegs, err := fetchLegDurations(ctx, primary, candidates, provider)
	if err != nil {
		return nil, fmt.Errorf("rank matches: %w", err)
	}

	results := make([]domain.MatchResult, len(candidates))
	for i, c := range candidates {
		results[i] = domain.MatchResult{
			CandidateID: c.ID,
			Detour: ComputeDetour(
				originLegs[i],
				destinationLegs[i],
				c.DirectDurationSeconds,
				primary.DirectDurationSeconds,
			),
		}
	}

	return RankByDetour(results), nil
}

// fetchLegDurations performs the two matrix lookups for one primary trip and
// returns, per candidate, the primary-origin -> candidate-origin cell and
// the candidate-destination -> primary-destination cell.
//
// The lookups share no data, so they run concurrently. Neither is cancelled
// when the other fails: both are awaited before the first error is raised.
func fetchLegDurations(
	ctx context.Context,
	primary domain.TripLeg,
	candidates []domain.TripLeg,
	provider ports.DurationMatrixProvider,
) ([]ports.MatrixCell, []ports.MatrixCell, error) {
	candidateOrigins := make([]domain.Coordinates, len(candidates))
	candidateDestinations := make([]domain.Coordinates, len(candidates))
	for i, c := range candidates {
		candidateOrigins[i] = c.Origin
		candidateDestinations[i] = c.Destination
	}

	var (
		originGrid      [][]ports.MatrixCell
		destinationGrid [][]ports.MatrixCell
	)

	var g errgroup.Group
	g.Go(func() error {
		grid, err := provider.Durations(ctx, []domain.Coordinates{primary.Origin}, candidateOrigins)
		if err != nil {
			return fmt.Errorf("origin legs: %w", err)
		}
		originGrid = grid
		return nil
	})
	g.Go(func() error {
		grid, err := provider.Durations(ctx, candidateDestinations, []domain.Coordinates{primary.Destination})
		if err != nil {
			return fmt.Errorf("destination legs: %w", err)
		}
		destinationGrid = grid
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	if len(originGrid) != 1 || len(originGrid[0]) != len(candidates) {
		return nil, nil, fmt.Errorf("origin legs: grid is not 1x%d", len(candidates))
	}
	if len(destinationGrid) != len(candidates) {
		return nil, nil, fmt.Errorf("destination legs: grid is not %dx1", len(candidates))
	}

	destinationLegs := make([]ports.MatrixCell, len(candidates))
	for i, row := range destinationGrid {
		if len(row) != 1 {
			return nil, nil, fmt.Errorf("destination legs: grid is not %dx1", len(candidates))
		}
		destinationLegs[i] = row[0]
	}

	return originGrid[0], destinationLegs, nil
}
