package api

import (
	"net/http"

	"trip-match-service/internal/api/handlers"
	"trip-match-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(provider ports.DurationMatrixProvider, apiKey string) http.Handler {
	mux := http.NewServeMux()

	matchHandler := &handlers.MatchHandler{Provider: provider}
	calendarHandler := &handlers.CalendarHandler{Provider: provider}

	mux.HandleFunc("/health", handlers.Health)
	mux.Handle("/matches/rank", apiKeyMiddleware(http.HandlerFunc(matchHandler.Rank), apiKey))
	mux.Handle("/calendar/check", apiKeyMiddleware(http.HandlerFunc(calendarHandler.Check), apiKey))

	return requestIDMiddleware(loggingMiddleware(mux))
}
