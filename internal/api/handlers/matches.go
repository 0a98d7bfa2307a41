package handlers

import (
	"net/http"

	"trip-match-service/internal/api/dto"
	"trip-match-service/internal/domain"
	"trip-match-service/internal/ports"
	"trip-match-service/internal/services"
)

type MatchHandler struct {
	Provider ports.DurationMatrixProvider
}

// Rank scores every candidate trip against the primary trip and returns the
// matches ordered by ascending detour, unroutable candidates last.
func (h *MatchHandler) Rank(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RankMatchesRequest
	defer r.Body.Close()
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	results, err := services.RankMatches(r.Context(), services.RankMatchesRequest{
		Trip:       tripDescriptor(req.Trip),
		Candidates: tripDescriptors(req.Candidates),
	}, h.Provider)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.RankMatchesResponse{Matches: make([]dto.MatchResponse, 0, len(results))}
	for _, m := range results {
		res.Matches = append(res.Matches, matchResponse(m))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func matchResponse(m domain.MatchResult) dto.MatchResponse {
	out := dto.MatchResponse{CandidateID: m.CandidateID}

	if seconds, ok := m.Detour.Seconds(); ok {
		detour := seconds
		out.DetourSeconds = &detour
	} else {
		out.Error = "unroutable"
	}

	return out
}
