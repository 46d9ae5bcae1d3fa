// internal/app/features/health/health.go
package health

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/seftonweb/southportlocal/internal/app/system/jsonutil"
	"github.com/seftonweb/southportlocal/internal/app/system/timeouts"
)

// Handler serves the liveness and readiness probes. These are the only JSON
// endpoints on an otherwise server-rendered site.
type Handler struct {
	mongoClient *mongo.Client
	logger      *zap.Logger
}

func NewHandler(mongoClient *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{
		mongoClient: mongoClient,
		logger:      logger,
	}
}

// Response is the probe payload.
type Response struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services,omitempty"`
}

// Routes serves /health (full check with per-service detail), /health/ready
// and /health/live.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Check)
	r.Get("/ready", h.Ready)
	r.Get("/live", h.Live)
	return r
}

// MountRootEndpoints registers the probe aliases Kubernetes expects at the
// root: /ready, /readyz and /livez.
func MountRootEndpoints(r chi.Router, h *Handler) {
	r.Get("/ready", h.Ready)
	r.Get("/readyz", h.Ready)
	r.Get("/livez", h.Live)
}

// Check reports overall status plus per-service detail. MongoDB is the only
// backing service; a failed ping degrades the status rather than erroring.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	resp := Response{
		Status:   "ok",
		Services: make(map[string]string),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if err := h.mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		resp.Status = "degraded"
		resp.Services["mongodb"] = "unavailable"
		h.logger.Warn("health check: mongodb ping failed", zap.Error(err))
	} else {
		resp.Services["mongodb"] = "ok"
	}

	if resp.Status != "ok" {
		jsonutil.ServiceUnavailable(w, resp)
		return
	}
	jsonutil.OK(w, resp)
}

// Ready answers readiness probes; not ready until MongoDB responds.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if err := h.mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		h.logger.Warn("readiness check failed", zap.Error(err))
		jsonutil.ServiceUnavailable(w, Response{Status: "not ready"})
		return
	}

	jsonutil.OK(w, Response{Status: "ready"})
}

// Live answers liveness probes. No dependencies are checked; if the process
// can serve this request it is alive.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, Response{Status: "alive"})
}
