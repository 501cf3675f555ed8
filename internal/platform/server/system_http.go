package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cardroomlabs/balanced/internal/balance"
	"github.com/cardroomlabs/balanced/internal/balance/store"
	"github.com/cardroomlabs/balanced/internal/platform/clock"
)

// SystemHandler serves the unauthenticated health and readiness probes.
type SystemHandler struct {
	Store store.Store
	Clock clock.Clock
}

func (h SystemHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/health", h.health)
	mux.HandleFunc("/api/ready", h.ready)
}

func (h SystemHandler) now() time.Time {
	if h.Clock == nil {
		return time.Now().UTC()
	}
	return h.Clock.Now()
}

func (h SystemHandler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	storeStatus := "ok"
	if h.Store != nil {
		if err := h.Store.Ping(ctx); err != nil {
			storeStatus = "unavailable"
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": balance.FormatTime(h.now()),
		"redis":     storeStatus,
	})
}

func (h SystemHandler) ready(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ready": true})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
