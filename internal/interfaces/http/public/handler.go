package public

import (
	"log"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sngm3741/facility-feedback-services/api/internal/feedback/application"
	"github.com/sngm3741/facility-feedback-services/api/internal/notification"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger     *log.Logger
	commands   application.CommandService
	dispatcher *notification.Dispatcher
	location   *time.Location
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger     *log.Logger
	Commands   application.CommandService
	Dispatcher *notification.Dispatcher
	Location   *time.Location
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		logger:     cfg.Logger,
		commands:   cfg.Commands,
		dispatcher: cfg.Dispatcher,
		location:   location,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/feedback/options", h.feedbackOptionsHandler())
	r.Post("/feedback/validate", h.feedbackValidateHandler())
	r.Post("/feedback", h.feedbackCreateHandler())
}
