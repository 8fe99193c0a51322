package application

import (
	"context"
	"time"

	"github.com/sngm3741/facility-feedback-services/api/internal/feedback/domain"
)

// Repository handles feedback reads/writes.
type Repository interface {
	Create(ctx context.Context, feedback *domain.Feedback) error
	FindAll(ctx context.Context) ([]domain.Feedback, error)
	FindByID(ctx context.Context, id string) (*domain.Feedback, error)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]domain.Feedback, error)
	Update(ctx context.Context, feedback *domain.Feedback) error
	Delete(ctx context.Context, id string) error
}

// Filter expresses the admin search criteria. The date range applies only
// when both bounds are present; the location keyword is a case-insensitive
// substring match applied after the range.
type Filter struct {
	From     *time.Time
	To       *time.Time
	Location string
}

// QueryService describes feedback read use-cases.
type QueryService interface {
	List(ctx context.Context, filter Filter) ([]domain.Feedback, error)
	Detail(ctx context.Context, id string) (*domain.Feedback, error)
}

// CommandService handles writing use-cases.
type CommandService interface {
	Submit(ctx context.Context, cmd SubmitCommand) (*domain.Feedback, error)
	Update(ctx context.Context, id string, cmd UpdateCommand) (*domain.Feedback, error)
	Delete(ctx context.Context, id string) error
}

// SubmitCommand captures a validated submission. CreatedAt carries the
// date/time the submitter declared on the form, not the server clock.
type SubmitCommand struct {
	CreatedAt          time.Time
	Shift              domain.Shift
	Location           domain.Location
	FloorCondition     domain.CleanlinessRating
	OverallCleanliness domain.CleanlinessRating
	BowlCleanliness    domain.CleanlinessRating
	TrashBinCondition  domain.TrashBinCondition
	WaterSupply        domain.WaterSupply
	Lighting           domain.Lighting
	Comments           string
	Attachments        []domain.Attachment
}

// UpdateCommand patches an existing record. Nil fields stay untouched;
// NewAttachments are appended to the stored sequence, never replacing it.
type UpdateCommand struct {
	Shift              *domain.Shift
	Location           *domain.Location
	FloorCondition     *domain.CleanlinessRating
	OverallCleanliness *domain.CleanlinessRating
	BowlCleanliness    *domain.CleanlinessRating
	TrashBinCondition  *domain.TrashBinCondition
	WaterSupply        *domain.WaterSupply
	Lighting           *domain.Lighting
	Comments           *string
	NewAttachments     []domain.Attachment
}
