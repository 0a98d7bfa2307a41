package domain

// Represents a single trip, primary or candidate.
// The identifier is opaque and caller-supplied (optional for the primary
// trip). The direct duration is the travel time of the trip's own route as
// supplied by the caller; it is never computed by this service.
type TripLeg struct {
	ID                    string
	Origin                Coordinates
	Destination           Coordinates
	DirectDurationSeconds int
}
