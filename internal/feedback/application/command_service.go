package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sngm3741/facility-feedback-services/api/internal/feedback/domain"
)

func NewCommandService(repo Repository) CommandService {
	return &commandService{repo: repo}
}

type commandService struct {
	repo Repository
}

// Submit persists a new feedback record. The record becomes readable only
// after the single write completes; attachments ride along in the same
// document, so there is no partial-record state to clean up on failure.
func (s *commandService) Submit(ctx context.Context, cmd SubmitCommand) (*domain.Feedback, error) {
	now := time.Now().UTC()
	createdAt := cmd.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	feedback := &domain.Feedback{
		Shift:              cmd.Shift,
		Location:           cmd.Location,
		FloorCondition:     cmd.FloorCondition,
		OverallCleanliness: cmd.OverallCleanliness,
		BowlCleanliness:    cmd.BowlCleanliness,
		TrashBinCondition:  cmd.TrashBinCondition,
		WaterSupply:        cmd.WaterSupply,
		Lighting:           cmd.Lighting,
		Comments:           cmd.Comments,
		Attachments:        append([]domain.Attachment{}, cmd.Attachments...),
		CreatedAt:          createdAt,
		UpdatedAt:          now,
	}

	if len(feedback.Attachments) > domain.MaxAttachmentCount {
		return nil, domain.ErrTooManyImages
	}

	return feedback, s.repo.Create(ctx, feedback)
}

// Update applies the patch to the stored record and appends any new
// attachments to the existing sequence.
func (s *commandService) Update(ctx context.Context, id string, cmd UpdateCommand) (*domain.Feedback, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyPatch(existing, cmd)

	if len(cmd.NewAttachments) > 0 {
		total := len(existing.Attachments) + len(cmd.NewAttachments)
		if total > domain.MaxAttachmentCount {
			return nil, fmt.Errorf("%w: %d attachments requested", domain.ErrTooManyImages, total)
		}
		existing.Attachments = append(existing.Attachments, cmd.NewAttachments...)
	}

	existing.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *commandService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func applyPatch(feedback *domain.Feedback, cmd UpdateCommand) {
	if cmd.Shift != nil {
		feedback.Shift = *cmd.Shift
	}
	if cmd.Location != nil {
		feedback.Location = *cmd.Location
	}
	if cmd.FloorCondition != nil {
		feedback.FloorCondition = *cmd.FloorCondition
	}
	if cmd.OverallCleanliness != nil {
		feedback.OverallCleanliness = *cmd.OverallCleanliness
	}
	if cmd.BowlCleanliness != nil {
		feedback.BowlCleanliness = *cmd.BowlCleanliness
	}
	if cmd.TrashBinCondition != nil {
		feedback.TrashBinCondition = *cmd.TrashBinCondition
	}
	if cmd.WaterSupply != nil {
		feedback.WaterSupply = *cmd.WaterSupply
	}
	if cmd.Lighting != nil {
		feedback.Lighting = *cmd.Lighting
	}
	if cmd.Comments != nil {
		feedback.Comments = *cmd.Comments
	}
}
