package services

import (
	"fmt"

	"trip-match-service/internal/domain"
)

// Caller-supplied trip fields prior to validation. Pointer fields keep
// absent/null distinguishable from a legitimate zero value (latitude 0 and
// duration 0 are both valid).
type TripDescriptor struct {
	ID                    string
	OriginLat             *float64
	OriginLng             *float64
	DestinationLat        *float64
	DestinationLng        *float64
	DirectDurationSeconds *int
}

// ValidationError reports malformed caller input: a missing required field,
// or an empty required list. It is always raised before any external call.
type ValidationError struct {
	Entity string
	// Field is empty when the entity itself is missing or empty.
	Field string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: must be non-empty", e.Entity)
	}
	return fmt.Sprintf("%s: missing required field %q", e.Entity, e.Field)
}

// validateTrip confirms every required field is present on one trip.
// Zero values pass; only absent fields fail, first one wins.
func validateTrip(entity string, t TripDescriptor) error {
	required := []struct {
		name    string
		present bool
	}{
		{"origin_lat", t.OriginLat != nil},
		{"origin_lng", t.OriginLng != nil},
		{"destination_lat", t.DestinationLat != nil},
		{"destination_lng", t.DestinationLng != nil},
		{"duration_seconds", t.DirectDurationSeconds != nil},
	}

	for _, f := range required {
		if !f.present {
			return &ValidationError{Entity: entity, Field: f.name}
		}
	}

	return nil
}

// validateGroup checks a primary trip and all of its candidates. The prefix
// scopes entity names when the group sits inside a batch ("trips[2].").
func validateGroup(prefix string, primary TripDescriptor, candidates []TripDescriptor) error {
	if err := validateTrip(prefix+"trip", primary); err != nil {
		return err
	}

	for i, c := range candidates {
		if err := validateTrip(fmt.Sprintf("%scandidates[%d]", prefix, i), c); err != nil {
			return err
		}
	}

	return nil
}

// leg converts a validated descriptor into a domain trip.
// Callers must run validation first; the dereferences assume it.
func (t TripDescriptor) leg() domain.TripLeg {
	return domain.TripLeg{
		ID:                    t.ID,
		Origin:                domain.Coordinates{Lat: *t.OriginLat, Lng: *t.OriginLng},
		Destination:           domain.Coordinates{Lat: *t.DestinationLat, Lng: *t.DestinationLng},
		DirectDurationSeconds: *t.DirectDurationSeconds,
	}
}
