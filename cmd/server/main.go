package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"trip-match-service/internal/adapters/matrix"
	"trip-match-service/internal/api"
	"trip-match-service/internal/platform/config"
)

// main is the application composition root.
// It wires the Google Distance Matrix adapter behind the provider port and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	provider, err := matrix.NewGoogleMatrixProvider(cfg.MapsAPIKey)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(provider, cfg.APIKey)

	// The write timeout leaves room for large calendar checks, which issue
	// two provider calls per group sequentially.
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
