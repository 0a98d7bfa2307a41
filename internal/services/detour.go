package services

import (
	"trip-match-service/internal/domain"
	"trip-match-service/internal/ports"
)

// ComputeDetour combines the two extra legs of a shared ride with the
// candidate's own direct duration and subtracts the primary trip's direct
// duration:
//
//	originLeg + candidateDirect + destinationLeg - primaryDirect
//
// Either leg being not-OK makes the detour unroutable; a missing leg is
// never substituted with a default duration. The result is unbounded in
// both directions: inconsistent provider data can produce a negative detour
// and it is passed through unchanged.
func ComputeDetour(originLeg, destinationLeg ports.MatrixCell, candidateDirect, primaryDirect int) domain.Detour {
	if !originLeg.OK() || !destinationLeg.OK() {
		return domain.Unroutable()
	}

	return domain.Routed(originLeg.DurationSeconds + candidateDirect + destinationLeg.DurationSeconds - primaryDirect)
}
