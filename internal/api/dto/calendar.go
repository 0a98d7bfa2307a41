package dto

type CalendarTripGroup struct {
	Trip       TripRequest   `json:"trip"`
	Candidates []TripRequest `json:"candidates"`
}

type CalendarCheckRequest struct {
	Trips            []CalendarTripGroup `json:"trips"`
	ThresholdSeconds *int                `json:"threshold_seconds"`
}

// BestDetourSeconds is null exactly when MatchCount is zero.
type CalendarSummaryResponse struct {
	TripID            string `json:"trip_id"`
	HasMatch          bool   `json:"has_match"`
	MatchCount        int    `json:"match_count"`
	BestDetourSeconds *int   `json:"best_detour_seconds"`
}

type CalendarCheckResponse struct {
	Trips []CalendarSummaryResponse `json:"trips"`
}
