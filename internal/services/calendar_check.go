package services

import (
	"context"
	"fmt"

	"trip-match-service/internal/domain"
	"trip-match-service/internal/platform/obs"
	"trip-match-service/internal/ports"
)

// DefaultDetourThresholdSeconds is the detour cutoff used when a calendar
// check supplies none (30 minutes).
const DefaultDetourThresholdSeconds = 1800

// One primary trip with its candidate pool.
type TripGroup struct {
	Trip       TripDescriptor
	Candidates []TripDescriptor
}

type CalendarCheckRequest struct {
	Trips []TripGroup
	// ThresholdSeconds is shared across all groups; nil selects the default.
	ThresholdSeconds *int
}

// CalendarCheck evaluates match viability for many primary trips in one
// call, returning one summary per group in input order.
//
// Every group is validated before the first lookup, so a ValidationError
// never follows a network side effect. Groups are then processed strictly
// sequentially; each performs the same two matrix lookups as RankMatches,
// except groups with no candidates, which are summarized as "no match"
// without touching the provider. A gateway failure on any group is fatal to
// the whole batch: no partial results are returned.
func CalendarCheck(
	ctx context.Context,
	req CalendarCheckRequest,
	provider ports.DurationMatrixProvider,
) (_ []domain.CalendarCheckSummary, err error) {
	defer obs.Time(ctx, "services.CalendarCheck")(&err)

	if len(req.Trips) == 0 {
		return nil, &ValidationError{Entity: "trips"}
	}

	for i, group := range req.Trips {
		if err := validateGroup(fmt.Sprintf("trips[%d].", i), group.Trip, group.Candidates); err != nil {
			return nil, err
		}
	}

	threshold := DefaultDetourThresholdSeconds
	if req.ThresholdSeconds != nil {
		threshold = *req.ThresholdSeconds
	}

	summaries := make([]domain.CalendarCheckSummary, 0, len(req.Trips))
	for i, group := range req.Trips {
		summary, err := checkGroup(ctx, group, threshold, provider)
		if err != nil {
			return nil, fmt.Errorf("calendar check: trips[%d]: %w", i, err)
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// checkGroup runs the detour pipeline for one primary trip and reduces it to
// a threshold summary: how many candidates have a routed detour at or below
// the threshold, and the minimum such detour.
func checkGroup(
	ctx context.Context,
	group TripGroup,
	threshold int,
	provider ports.DurationMatrixProvider,
) (domain.CalendarCheckSummary, error) {
	summary := domain.CalendarCheckSummary{TripID: group.Trip.ID}

	if len(group.Candidates) == 0 {
		return summary, nil
	}

	primary := group.Trip.leg()
	candidates := make([]domain.TripLeg, len(group.Candidates))
	for i, c := range group.Candidates {
		candidates[i] = c.leg()
	}

	originLegs, destinationLegs, err := fetchLegDurations(ctx, primary, candidates, provider)
	if err != nil {
		return domain.CalendarCheckSummary{}, err
	}

	for i, c := range candidates {
		detour := ComputeDetour(originLegs[i], destinationLegs[i], c.DirectDurationSeconds, primary.DirectDurationSeconds)

		seconds, ok := detour.Seconds()
		if !ok || seconds > threshold {
			continue
		}

		summary.MatchCount++
		if summary.BestDetourSeconds == nil || seconds < *summary.BestDetourSeconds {
			best := seconds
			summary.BestDetourSeconds = &best
		}
	}

	summary.HasMatch = summary.MatchCount > 0
	return summary, nil
}
