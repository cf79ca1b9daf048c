package misc

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const healthCheckTimeout = 2 * time.Second

// Pinger is a dependency the service cannot work without (postgres, redis).
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a plain func to Pinger.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

type Handler struct {
	versionInfo string
	deps        map[string]Pinger
}

func NewHandler(versionInfo string, deps map[string]Pinger) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		deps:        deps,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET").Name("health")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	if handler.versionInfo == "" {
		pkg.WriteTextResponseOK(w, "unknown")
		return
	}
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:       "ok",
		Dependencies: make(map[string]string, len(handler.deps)),
	}
	for name, dep := range handler.deps {
		if err := dep.Ping(ctx); err != nil {
			log.Errorf("health check, ping %s: %s", name, err)
			resp.Dependencies[name] = "down"
			resp.Status = "degraded"
			continue
		}
		resp.Dependencies[name] = "ok"
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
		span.SetStatus(codes.Error, "degraded")
	}
	pkg.WriteJSON(w, resp, status)
}
