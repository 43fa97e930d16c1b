// Package models defines the domain models for the sun exposure calculator.
package models

import "fmt"

// ClothingLevel represents how much skin is exposed to the sun.
// Each level maps to a fixed fraction of body surface available for
// cutaneous synthesis.
type ClothingLevel string

const (
	ClothingNude     ClothingLevel = "NUDE"
	ClothingMinimal  ClothingLevel = "MINIMAL"
	ClothingLight    ClothingLevel = "LIGHT"
	ClothingModerate ClothingLevel = "MODERATE"
	ClothingHeavy    ClothingLevel = "HEAVY"
)

// AllClothingLevels lists the levels in descending order of exposure,
// matching the order they are presented for selection.
var AllClothingLevels = []ClothingLevel{
	ClothingNude,
	ClothingMinimal,
	ClothingLight,
	ClothingModerate,
	ClothingHeavy,
}

// clothingFactors maps each level to its synthesis multiplier.
// This is the single source of truth for valid levels; it also backs
// input validation at the presentation boundary.
var clothingFactors = map[ClothingLevel]float64{
	ClothingNude:     1.0,
	ClothingMinimal:  0.8,
	ClothingLight:    0.4,
	ClothingModerate: 0.15,
	ClothingHeavy:    0.05,
}

// Valid returns true if the clothing level is a known value.
func (c ClothingLevel) Valid() bool {
	_, ok := clothingFactors[c]
	return ok
}

// Factor returns the synthesis multiplier for the level.
// Returns 0 for unknown levels; callers must Valid()-check first.
func (c ClothingLevel) Factor() float64 {
	return clothingFactors[c]
}

// String returns the display label for the level.
func (c ClothingLevel) String() string {
	switch c {
	case ClothingNude:
		return "Nude (100%)"
	case ClothingMinimal:
		return "Minimal/Swimwear (80%)"
	case ClothingLight:
		return "Light/Shorts & T-shirt (40%)"
	case ClothingModerate:
		return "Moderate/Long sleeves (15%)"
	case ClothingHeavy:
		return "Heavy/Fully covered (5%)"
	default:
		return "Unknown"
	}
}

// ParseClothingLevel converts a stored or flag value into a ClothingLevel.
func ParseClothingLevel(s string) (ClothingLevel, error) {
	c := ClothingLevel(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown clothing level: %q", s)
	}
	return c, nil
}
