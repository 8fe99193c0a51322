package domain

import (
	"fmt"
	"strings"
)

// Form steps of the submission flow. Only the first collects required
// fields; ratings and extras may be skipped entirely.
const (
	StepBasicInfo = iota
	StepCleanliness
	StepAdditional
	StepReview
)

// Draft holds the raw form values of an in-progress submission.
type Draft struct {
	DateTime           string
	Shift              string
	Location           string
	FloorCondition     string
	OverallCleanliness string
	BowlCleanliness    string
	TrashBinCondition  string
	WaterSupply        string
	Lighting           string
	Comments           string
}

// ValidateStep checks whether the draft may advance past the given step.
func (d Draft) ValidateStep(step int) error {
	if step == StepBasicInfo {
		return d.requireBasicInfo()
	}
	return nil
}

// Validate re-checks the required fields before final submission. Step
// validation alone is not trusted: a submission must never reach the store
// with missing basics even if the step flow was bypassed.
func (d Draft) Validate() error {
	return d.requireBasicInfo()
}

func (d Draft) requireBasicInfo() error {
	if strings.TrimSpace(d.DateTime) == "" {
		return fmt.Errorf("%w: dateTime", ErrMissingRequiredField)
	}
	if strings.TrimSpace(d.Shift) == "" {
		return fmt.Errorf("%w: shift", ErrMissingRequiredField)
	}
	if strings.TrimSpace(d.Location) == "" {
		return fmt.Errorf("%w: location", ErrMissingRequiredField)
	}
	return nil
}
