package domain

import "time"

// Feedback represents one submitted restroom cleanliness report.
type Feedback struct {
	ID                 string
	Shift              Shift
	Location           Location
	FloorCondition     CleanlinessRating
	OverallCleanliness CleanlinessRating
	BowlCleanliness    CleanlinessRating
	TrashBinCondition  TrashBinCondition
	WaterSupply        WaterSupply
	Lighting           Lighting
	Comments           string
	Attachments        []Attachment
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Clone returns a deep copy so callers never share attachment slices
// with stored state.
func (f Feedback) Clone() Feedback {
	copied := f
	copied.Attachments = append([]Attachment(nil), f.Attachments...)
	return copied
}
