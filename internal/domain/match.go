package domain

// Outcome of scoring one candidate trip against the primary trip.
// A MatchResult is created fresh per ranking call, is never persisted, and
// is immutable once produced. Its detour carries a duration exactly when the
// candidate was routable.
type MatchResult struct {
	CandidateID string
	Detour      Detour
}

// Per-trip aggregate produced by a calendar check: how many candidates fall
// at or below the detour threshold, and the smallest such detour.
// BestDetourSeconds is nil exactly when MatchCount is zero.
type CalendarCheckSummary struct {
	TripID            string
	HasMatch          bool
	MatchCount        int
	BestDetourSeconds *int
}
