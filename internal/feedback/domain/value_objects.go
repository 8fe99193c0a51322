package domain

import (
	"fmt"
	"strings"
)

var allowedLocations = []string{
	"team member ladies",
	"team member gents",
	"near Medical Centre ladies",
	"near Medical Centre gents",
	"executive washroom",
	"operation area ladies",
	"operation area gents",
}

// Locations returns the fixed set of restroom location labels.
func Locations() []string {
	return append([]string(nil), allowedLocations...)
}

type Shift string

const (
	ShiftA       Shift = "A"
	ShiftB       Shift = "B"
	ShiftGeneral Shift = "General"
)

func NewShift(value string) (Shift, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: shift", ErrMissingRequiredField)
	}
	switch Shift(trimmed) {
	case ShiftA, ShiftB, ShiftGeneral:
		return Shift(trimmed), nil
	}
	return "", fmt.Errorf("invalid shift: %s", trimmed)
}

func (s Shift) String() string {
	return string(s)
}

type Location string

func NewLocation(value string) (Location, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%w: location", ErrMissingRequiredField)
	}
	for _, allowed := range allowedLocations {
		if allowed == trimmed {
			return Location(trimmed), nil
		}
	}
	return "", fmt.Errorf("invalid location: %s", trimmed)
}

func (l Location) String() string {
	return string(l)
}

// ContainsFold reports whether the location label contains the keyword
// under case-insensitive comparison.
func (l Location) ContainsFold(keyword string) bool {
	return strings.Contains(strings.ToLower(string(l)), strings.ToLower(keyword))
}

// CleanlinessRating grades floor, bowl and overall cleanliness.
// The empty value means the dimension was not rated.
type CleanlinessRating string

const (
	RatingVeryClean       CleanlinessRating = "veryClean"
	RatingClean           CleanlinessRating = "clean"
	RatingModeratelyClean CleanlinessRating = "moderatelyClean"
	RatingDirty           CleanlinessRating = "dirty"
)

func NewCleanlinessRating(value string) (CleanlinessRating, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	switch CleanlinessRating(trimmed) {
	case RatingVeryClean, RatingClean, RatingModeratelyClean, RatingDirty:
		return CleanlinessRating(trimmed), nil
	}
	return "", fmt.Errorf("invalid cleanliness rating: %s", trimmed)
}

func (r CleanlinessRating) String() string {
	return string(r)
}

type TrashBinCondition string

const (
	TrashBinEmpty    TrashBinCondition = "empty"
	TrashBinHalfFull TrashBinCondition = "halfFull"
	TrashBinFull     TrashBinCondition = "full"
	TrashBinMissing  TrashBinCondition = "noTrashBin"
)

func NewTrashBinCondition(value string) (TrashBinCondition, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	switch TrashBinCondition(trimmed) {
	case TrashBinEmpty, TrashBinHalfFull, TrashBinFull, TrashBinMissing:
		return TrashBinCondition(trimmed), nil
	}
	return "", fmt.Errorf("invalid trash bin condition: %s", trimmed)
}

func (c TrashBinCondition) String() string {
	return string(c)
}

type WaterSupply string

const (
	WaterSufficient   WaterSupply = "sufficient"
	WaterInsufficient WaterSupply = "insufficient"
	WaterNone         WaterSupply = "noWater"
)

func NewWaterSupply(value string) (WaterSupply, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	switch WaterSupply(trimmed) {
	case WaterSufficient, WaterInsufficient, WaterNone:
		return WaterSupply(trimmed), nil
	}
	return "", fmt.Errorf("invalid water supply: %s", trimmed)
}

func (s WaterSupply) String() string {
	return string(s)
}

type Lighting string

const (
	LightingWellLit    Lighting = "wellLit"
	LightingSufficient Lighting = "sufficient"
	LightingDim        Lighting = "dimLight"
)

func NewLighting(value string) (Lighting, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	switch Lighting(trimmed) {
	case LightingWellLit, LightingSufficient, LightingDim:
		return Lighting(trimmed), nil
	}
	return "", fmt.Errorf("invalid lighting: %s", trimmed)
}

func (l Lighting) String() string {
	return string(l)
}
