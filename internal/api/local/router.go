package local

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"psn-emulator/internal/api/idp"
	"psn-emulator/internal/api/player"
	"psn-emulator/internal/api/response"
	"psn-emulator/internal/apperr"
	"psn-emulator/internal/middleware"
)

// RouterConfig holds configuration for the local dev router
type RouterConfig struct {
	Logger        *slog.Logger
	IDPHandler    *idp.Handler
	PlayerHandler *player.Handler
}

// NewRouter mounts both APIs on one mux router for local development.
// Lambda deployments bypass this entirely; routing there happens inside
// the event handlers.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger, panicHandler))
	r.Use(middleware.Logging(cfg.Logger))

	// Identity routes
	idpHandler := Adapt(cfg.IDPHandler.Handle)
	r.Handle("/auth/token", idpHandler).Methods(http.MethodPost)
	r.Handle("/auth/userinfo", idpHandler).Methods(http.MethodGet)
	r.Handle("/auth/refresh", idpHandler).Methods(http.MethodPost)

	// Player account routes
	playerHandler := Adapt(cfg.PlayerHandler.Handle)
	r.Handle("/players", playerHandler).Methods(http.MethodPost, http.MethodGet)
	r.Handle("/players/{player_id}", playerHandler).Methods(http.MethodGet, http.MethodPut, http.MethodDelete)
	r.Handle("/players/{player_id}/stats", playerHandler).Methods(http.MethodGet)

	// Health check endpoint
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Unmatched routes get the same envelope the event routers produce
	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(notFoundHandler)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeProxyResponse(w, response.Error(
		apperr.Newf(apperr.NotFound, "Endpoint not found: %s %s", r.Method, r.URL.Path)))
}

func panicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	writeProxyResponse(w, response.Error(apperr.NewInternal()))
}
