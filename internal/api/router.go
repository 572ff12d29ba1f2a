package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/hackgods/clinic-scheduling/internal/appointment"
)

// RouterConfig wires the HTTP surface. PgPool and Redis are optional.
type RouterConfig struct {
	Service *appointment.Service
	PgPool  *pgxpool.Pool
	Redis   *redis.Client
	Logger  *zap.Logger
	Env     string
	Version string
}

func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	// Apply middleware
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(logger))

	// Health endpoints
	health := NewHealthHandler(cfg.PgPool, cfg.Redis, cfg.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	h := &handlers{svc: cfg.Service}

	// Appointment endpoints
	r.Get("/appointments", h.listAppointments)
	r.Post("/appointments/office", h.bookOffice)
	r.Post("/appointments/imaging", h.bookImaging)
	r.Post("/appointments/cancel", h.cancel)
	r.Post("/appointments/reschedule", h.reschedule)

	r.Get("/providers", h.listProviders)
	r.Get("/technicians/rotation", h.rotation)

	r.Get("/reports/credit", h.creditReport)
	r.Post("/reports/billing", h.billingStatement)

	return r
}
