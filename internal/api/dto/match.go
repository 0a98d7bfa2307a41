package dto

// Pointer fields distinguish absent/null from zero: latitude 0 and a direct
// duration of 0 are both valid inputs.
type TripRequest struct {
	ID              string   `json:"id"`
	OriginLat       *float64 `json:"origin_lat"`
	OriginLng       *float64 `json:"origin_lng"`
	DestinationLat  *float64 `json:"destination_lat"`
	DestinationLng  *float64 `json:"destination_lng"`
	DurationSeconds *int     `json:"duration_seconds"`
}

type RankMatchesRequest struct {
	Trip       TripRequest   `json:"trip"`
	Candidates []TripRequest `json:"candidates"`
}

// DetourSeconds is present exactly when Error is absent.
type MatchResponse struct {
	CandidateID   string `json:"candidate_id"`
	DetourSeconds *int   `json:"detour_seconds"`
	Error         string `json:"error,omitempty"`
}

type RankMatchesResponse struct {
	Matches []MatchResponse `json:"matches"`
}
