package synthesis

const (
	// PeakStartHour and PeakEndHour bound the peak-efficacy window.
	// quality factor is 1.0 for hours in [PeakStartHour, PeakEndHour).
	PeakStartHour = 10
	PeakEndHour   = 15

	// OffPeakQuality is the reduced multiplier outside the peak window.
	// Deliberately a coarse two-level step; morning and evening sun carry
	// proportionally less UV-B at the reference latitude.
	OffPeakQuality = 0.5

	inchesToMeters = 0.0254
	lbsToKilograms = 0.453592
)

// QualityFactor returns the time-of-day multiplier for the given local
// hour (0-23). 1.0 inside the 10:00-15:00 peak window, 0.5 otherwise.
func QualityFactor(hour int) float64 {
	if hour >= PeakStartHour && hour < PeakEndHour {
		return 1.0
	}
	return OffPeakQuality
}

// UVFactor returns the saturating UV-B efficiency multiplier
// (uv × 3) / (4 + uv). The curve is 0 at uv 0 and approaches but never
// reaches 3.0 as uv grows.
func UVFactor(uvIndex float64) float64 {
	return (uvIndex * 3.0) / (4.0 + uvIndex)
}

// BMI computes body mass index from imperial measurements.
// Returns 0 when height is non-positive.
func BMI(heightInches, weightLbs float64) float64 {
	heightM := heightInches * inchesToMeters
	if heightM <= 0 {
		return 0
	}
	weightKg := weightLbs * lbsToKilograms
	return weightKg / (heightM * heightM)
}
