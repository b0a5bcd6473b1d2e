package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

const (
	statusOK          = "ok"
	statusUnavailable = "unavailable"

	checkTimeout = 2 * time.Second
)

// Check reports whether one dependency is usable.
type Check func(ctx context.Context) error

type HealthHandler interface {
	Ping(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type healthHandler struct {
	logger *slog.Logger
	checks map[string]Check
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func NewHealthHandler(logger *slog.Logger, checks map[string]Check) HealthHandler {
	return &healthHandler{
		logger: logger.With("component", "health"),
		checks: checks,
	}
}

func (that *healthHandler) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// Health - runs every check; one failing check makes the whole service unavailable.
func (that *healthHandler) Health(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Health")

	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	response := healthResponse{
		Status: statusOK,
		Checks: make(map[string]string, len(that.checks)),
	}

	for name, check := range that.checks {
		if err := check(ctx); err != nil {
			log.Warn("health check failed", "check", name, "error", err)

			response.Status = statusUnavailable
			response.Checks[name] = err.Error()
			continue
		}
		response.Checks[name] = statusOK
	}

	code := http.StatusOK
	if response.Status != statusOK {
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write health response", "error", err)
	}
}
