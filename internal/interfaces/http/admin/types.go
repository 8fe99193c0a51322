package admin

import "time"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type adminFeedbackListResponse struct {
	Items []adminFeedbackResponse `json:"items"`
	Total int                     `json:"total"`
}

type adminFeedbackResponse struct {
	ID                 string                    `json:"id"`
	CreatedAt          time.Time                 `json:"createdAt"`
	UpdatedAt          time.Time                 `json:"updatedAt"`
	Shift              string                    `json:"shift"`
	Location           string                    `json:"location"`
	FloorCondition     string                    `json:"floorCondition,omitempty"`
	OverallCleanliness string                    `json:"overallCleanliness,omitempty"`
	BowlCleanliness    string                    `json:"bowlCleanliness,omitempty"`
	TrashBinCondition  string                    `json:"trashBinCondition,omitempty"`
	WaterSupply        string                    `json:"waterSupply,omitempty"`
	Lighting           string                    `json:"lighting,omitempty"`
	Comments           string                    `json:"comments,omitempty"`
	ImageAttachments   []adminAttachmentResponse `json:"imageAttachments"`
}

type adminAttachmentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Size      int64     `json:"size"`
	Data      string    `json:"data,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type updateFeedbackRequest struct {
	Shift               *string             `json:"shift"`
	Location            *string             `json:"location"`
	FloorCondition      *string             `json:"floorCondition"`
	OverallCleanliness  *string             `json:"overallCleanliness"`
	BowlCleanliness     *string             `json:"bowlCleanliness"`
	TrashBinCondition   *string             `json:"trashBinCondition"`
	WaterSupply         *string             `json:"waterSupply"`
	Lighting            *string             `json:"lighting"`
	Comments            *string             `json:"comments"`
	NewImageAttachments []adminImagePayload `json:"newImageAttachments"`
}

type adminImagePayload struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Data string `json:"data"`
}
