package http_handlers

import (
	"database/sql"
	"net/http"

	"github.com/cinevault/movies-service/internal/transport/http/response"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

type healthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	DB      string `json:"db,omitempty"`
}

// Healthz reports process liveness only. It must never touch the
// database, otherwise an outage turns liveness restarts into a loop.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, healthStatus{Status: "ok", Service: "movies-service"})
}

// Readyz additionally pings the database so load balancers stop
// routing to an instance that lost its pool.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	dbState := ""
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			response.WriteJSON(w, http.StatusServiceUnavailable, healthStatus{
				Status:  "unavailable",
				Service: "movies-service",
				DB:      "unreachable",
			})
			return
		}
		dbState = "ok"
	}
	response.WriteJSON(w, http.StatusOK, healthStatus{Status: "ready", Service: "movies-service", DB: dbState})
}
