package handlers

import (
	"net/http"

	"trip-match-service/internal/api/dto"
	"trip-match-service/internal/ports"
	"trip-match-service/internal/services"
)

type CalendarHandler struct {
	Provider ports.DurationMatrixProvider
}

// Check evaluates many primary trips against their candidate pools in one
// call and returns a threshold summary per trip, in input order. Any single
// group's gateway failure fails the whole batch.
func (h *CalendarHandler) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.CalendarCheckRequest
	defer r.Body.Close()
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	groups := make([]services.TripGroup, 0, len(req.Trips))
	for _, g := range req.Trips {
		groups = append(groups, services.TripGroup{
			Trip:       tripDescriptor(g.Trip),
			Candidates: tripDescriptors(g.Candidates),
		})
	}

	summaries, err := services.CalendarCheck(r.Context(), services.CalendarCheckRequest{
		Trips:            groups,
		ThresholdSeconds: req.ThresholdSeconds,
	}, h.Provider)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.CalendarCheckResponse{Trips: make([]dto.CalendarSummaryResponse, 0, len(summaries))}
	for _, s := range summaries {
		res.Trips = append(res.Trips, dto.CalendarSummaryResponse{
			TripID:            s.TripID,
			HasMatch:          s.HasMatch,
			MatchCount:        s.MatchCount,
			BestDetourSeconds: s.BestDetourSeconds,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
