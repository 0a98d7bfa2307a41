package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"trip-match-service/internal/api/dto"
	"trip-match-service/internal/ports"
	"trip-match-service/internal/services"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeServiceError maps service errors onto HTTP statuses: malformed input
// is the caller's fault, gateway failures surface the upstream diagnostic,
// anything else stays opaque.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		writeError(w, r, http.StatusBadRequest, ve.Error())
		return
	}

	var ge *ports.GatewayError
	if errors.As(err, &ge) {
		writeError(w, r, http.StatusBadGateway, ge.Error())
		return
	}

	log.Printf("request failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}

// decodeStrict decodes a single JSON object, rejecting unknown fields and
// trailing content.
func decodeStrict(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return errors.New("invalid json body")
	}
	if dec.More() {
		return errors.New("body must contain only one JSON object")
	}

	return nil
}

func tripDescriptor(t dto.TripRequest) services.TripDescriptor {
	return services.TripDescriptor{
		ID:                    t.ID,
		OriginLat:             t.OriginLat,
		OriginLng:             t.OriginLng,
		DestinationLat:        t.DestinationLat,
		DestinationLng:        t.DestinationLng,
		DirectDurationSeconds: t.DurationSeconds,
	}
}

func tripDescriptors(ts []dto.TripRequest) []services.TripDescriptor {
	out := make([]services.TripDescriptor, len(ts))
	for i, t := range ts {
		out[i] = tripDescriptor(t)
	}
	return out
}
