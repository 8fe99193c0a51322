package public

import (
	"time"

	"github.com/sngm3741/facility-feedback-services/api/internal/feedback/domain"
)

type feedbackPayload struct {
	DateTime           string                `json:"dateTime"`
	Shift              string                `json:"shift"`
	Location           string                `json:"location"`
	FloorCondition     string                `json:"floorCondition,omitempty"`
	OverallCleanliness string                `json:"overallCleanliness,omitempty"`
	BowlCleanliness    string                `json:"bowlCleanliness,omitempty"`
	TrashBinCondition  string                `json:"trashBinCondition,omitempty"`
	WaterSupply        string                `json:"waterSupply,omitempty"`
	Lighting           string                `json:"lighting,omitempty"`
	Comments           string                `json:"comments,omitempty"`
	ImageAttachments   []imageUploadPayload  `json:"imageAttachments,omitempty"`
}

type imageUploadPayload struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Data string `json:"data"`
}

type validateFeedbackRequest struct {
	Step     int             `json:"step"`
	Feedback feedbackPayload `json:"feedback"`
}

type createFeedbackResponse struct {
	Status   string           `json:"status"`
	Warning  string           `json:"warning,omitempty"`
	Feedback feedbackResponse `json:"feedback"`
}

type feedbackResponse struct {
	ID                 string               `json:"id"`
	CreatedAt          time.Time            `json:"createdAt"`
	UpdatedAt          time.Time            `json:"updatedAt"`
	Shift              string               `json:"shift"`
	Location           string               `json:"location"`
	FloorCondition     string               `json:"floorCondition,omitempty"`
	OverallCleanliness string               `json:"overallCleanliness,omitempty"`
	BowlCleanliness    string               `json:"bowlCleanliness,omitempty"`
	TrashBinCondition  string               `json:"trashBinCondition,omitempty"`
	WaterSupply        string               `json:"waterSupply,omitempty"`
	Lighting           string               `json:"lighting,omitempty"`
	Comments           string               `json:"comments,omitempty"`
	ImageAttachments   []attachmentResponse `json:"imageAttachments"`
}

type attachmentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

func buildFeedbackResponse(record domain.Feedback) feedbackResponse {
	attachments := make([]attachmentResponse, 0, len(record.Attachments))
	for _, attachment := range record.Attachments {
		attachments = append(attachments, attachmentResponse{
			ID:        attachment.ID,
			Name:      attachment.Name,
			Type:      attachment.ContentType,
			Size:      attachment.Size,
			CreatedAt: attachment.CreatedAt,
		})
	}
	return feedbackResponse{
		ID:                 record.ID,
		CreatedAt:          record.CreatedAt,
		UpdatedAt:          record.UpdatedAt,
		Shift:              record.Shift.String(),
		Location:           record.Location.String(),
		FloorCondition:     record.FloorCondition.String(),
		OverallCleanliness: record.OverallCleanliness.String(),
		BowlCleanliness:    record.BowlCleanliness.String(),
		TrashBinCondition:  record.TrashBinCondition.String(),
		WaterSupply:        record.WaterSupply.String(),
		Lighting:           record.Lighting.String(),
		Comments:           record.Comments,
		ImageAttachments:   attachments,
	}
}
