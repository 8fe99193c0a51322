package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDraft() Draft {
	return Draft{
		DateTime:           "2025-03-05T14:30",
		Shift:              "A",
		Location:           "team member ladies",
		FloorCondition:     "clean",
		OverallCleanliness: "veryClean",
		Comments:           "all fine",
	}
}

func TestDraft_ValidateStep(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Draft)
		step    int
		wantErr error
	}{
		{name: "complete basic info passes", step: StepBasicInfo},
		{name: "missing date time", mutate: func(d *Draft) { d.DateTime = "" }, step: StepBasicInfo, wantErr: ErrMissingRequiredField},
		{name: "blank shift", mutate: func(d *Draft) { d.Shift = "   " }, step: StepBasicInfo, wantErr: ErrMissingRequiredField},
		{name: "missing location", mutate: func(d *Draft) { d.Location = "" }, step: StepBasicInfo, wantErr: ErrMissingRequiredField},
		{name: "cleanliness step never blocks", mutate: func(d *Draft) { d.FloorCondition = "" }, step: StepCleanliness},
		{name: "additional step never blocks", mutate: func(d *Draft) { d.Comments = "" }, step: StepAdditional},
		{name: "review step never blocks", step: StepReview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := completeDraft()
			if tt.mutate != nil {
				tt.mutate(&draft)
			}
			err := draft.ValidateStep(tt.step)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDraft_Validate_RechecksRequiredFields(t *testing.T) {
	draft := completeDraft()
	require.NoError(t, draft.Validate())

	draft.Shift = ""
	assert.ErrorIs(t, draft.Validate(), ErrMissingRequiredField)
}
