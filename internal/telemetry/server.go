package telemetry

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// NewServer builds the observability HTTP server exposing /health and
// /metrics. It is started only when a listen address is configured; long
// tuning runs use it for progress scraping.
func NewServer(addr string, registry *Registry) *http.Server {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	}).Methods(http.MethodGet)

	router.Handle("/metrics", registry.Handler()).Methods(http.MethodGet)

	return &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// Serve runs the server in a goroutine, logging instead of failing when the
// listener cannot start: observability must never abort an engine run.
func Serve(server *http.Server) {
	go func() {
		log.Info().Str("addr", server.Addr).Msg("Telemetry endpoints available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn().Err(err).Msg("Telemetry server stopped")
		}
	}()
}
