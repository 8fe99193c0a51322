package admin

import (
	"log"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sngm3741/facility-feedback-services/api/internal/feedback/application"
	"github.com/sngm3741/facility-feedback-services/api/internal/report"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger    *log.Logger
	queries   application.QueryService
	commands  application.CommandService
	renderer  *report.Renderer
	location  *time.Location
	username  string
	password  string
	jwtSecret []byte
	jwtIssuer string
	tokenTTL  time.Duration
}

// Config provides dependencies for Handler.
type Config struct {
	Logger    *log.Logger
	Queries   application.QueryService
	Commands  application.CommandService
	Renderer  *report.Renderer
	Location  *time.Location
	Username  string
	Password  string
	JWTSecret []byte
	JWTIssuer string
	TokenTTL  time.Duration
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}
	tokenTTL := cfg.TokenTTL
	if tokenTTL <= 0 {
		tokenTTL = 12 * time.Hour
	}
	return &Handler{
		logger:    cfg.Logger,
		queries:   cfg.Queries,
		commands:  cfg.Commands,
		renderer:  cfg.Renderer,
		location:  location,
		username:  cfg.Username,
		password:  cfg.Password,
		jwtSecret: cfg.JWTSecret,
		jwtIssuer: cfg.JWTIssuer,
		tokenTTL:  tokenTTL,
	}
}

// RegisterPublic mounts the routes reachable without a session token.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Post("/login", h.loginHandler())
}

// Register mounts admin routes onto router. Callers must guard the router
// with the auth middleware.
func (h *Handler) Register(r chi.Router) {
	r.Get("/feedback", h.feedbackListHandler())
	r.Get("/feedback/export", h.feedbackExportHandler())
	r.Get("/feedback/{id}", h.feedbackDetailHandler())
	r.Patch("/feedback/{id}", h.feedbackUpdateHandler())
	r.Delete("/feedback/{id}", h.feedbackDeleteHandler())
}
