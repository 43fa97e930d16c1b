package synthesis

import (
	"fmt"
	"time"
)

// winterMonths is the window in which ambient UV-B at the reference
// latitude (~40.7°N) is insufficient for cutaneous synthesis.
var winterMonths = map[time.Month]bool{
	time.November: true,
	time.December: true,
	time.January:  true,
	time.February: true,
}

// Supplement dose tiers in IU/day, selected by BMI. Heavier individuals
// sequester vitamin D in adipose tissue and need a larger oral dose.
const (
	SupplementDoseNormal     = 2000
	SupplementDoseOverweight = 3000
	SupplementDoseObese      = 4000

	bmiOverweightThreshold = 25.0
	bmiObeseThreshold      = 30.0
)

// SupplementAdvice is the seasonal recommendation attached to a report.
// DoseIU is zero outside the winter window; Note always carries the
// human-readable guidance for the active branch.
type SupplementAdvice struct {
	InWinterWindow bool
	DoseIU         int
	Note           string
}

// IsWinterMonth reports whether the month falls in the insufficient-UV window.
func IsWinterMonth(month time.Month) bool {
	return winterMonths[month]
}

// SupplementDose returns the recommended daily dose for a BMI.
// Tiers are evaluated high-to-low; boundary values fall into the higher tier.
func SupplementDose(bmi float64) int {
	switch {
	case bmi >= bmiObeseThreshold:
		return SupplementDoseObese
	case bmi >= bmiOverweightThreshold:
		return SupplementDoseOverweight
	default:
		return SupplementDoseNormal
	}
}

// AdviseSupplement produces the seasonal recommendation for a month and BMI.
func AdviseSupplement(month time.Month, bmi float64) SupplementAdvice {
	if !IsWinterMonth(month) {
		return SupplementAdvice{
			InWinterWindow: false,
			Note:           "It's not winter (Nov-Feb), so sun exposure can contribute to vitamin D needs, but monitor UV levels.",
		}
	}

	dose := SupplementDose(bmi)
	return SupplementAdvice{
		InWinterWindow: true,
		DoseIU:         dose,
		Note: fmt.Sprintf(
			"Winter Vitamin D Notice: UV-B is insufficient for synthesis from November to February at this latitude. "+
				"Your BMI is approximately %.1f. Recommend supplementing %d IU/day of vitamin D during these months. "+
				"This is a general guideline; consult a healthcare provider for personalized advice.",
			bmi, dose),
	}
}
