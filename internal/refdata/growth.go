package refdata

// Growth reference anchors, version 1.
//
// These are discrete mean/SD anchors at 24, 36, 48 and 60 months with
// nearest-anchor selection. They approximate the full WHO growth-standard
// tables; replacing them with complete LMS tables requires clinical
// sign-off and is tracked as a follow-up, so do not "improve" individual
// values in place.

// GrowthReference is the age/sex reference mean and standard deviation for
// the three assessed indicators.
type GrowthReference struct {
	AnchorMonths int
	WeightMean   float64 // kg
	WeightSD     float64
	HeightMean   float64 // cm
	HeightSD     float64
	BMIMean      float64 // kg/m²
	BMISD        float64
}

var growthAnchorsMale = []GrowthReference{
	{AnchorMonths: 24, WeightMean: 12.2, WeightSD: 1.4, HeightMean: 87.1, HeightSD: 3.2, BMIMean: 16.0, BMISD: 1.3},
	{AnchorMonths: 36, WeightMean: 14.3, WeightSD: 1.7, HeightMean: 96.1, HeightSD: 3.6, BMIMean: 15.6, BMISD: 1.2},
	{AnchorMonths: 48, WeightMean: 16.3, WeightSD: 2.0, HeightMean: 103.3, HeightSD: 4.0, BMIMean: 15.3, BMISD: 1.2},
	{AnchorMonths: 60, WeightMean: 18.3, WeightSD: 2.4, HeightMean: 110.0, HeightSD: 4.4, BMIMean: 15.2, BMISD: 1.3},
}

var growthAnchorsFemale = []GrowthReference{
	{AnchorMonths: 24, WeightMean: 11.5, WeightSD: 1.4, HeightMean: 85.7, HeightSD: 3.3, BMIMean: 15.7, BMISD: 1.3},
	{AnchorMonths: 36, WeightMean: 13.9, WeightSD: 1.8, HeightMean: 95.1, HeightSD: 3.7, BMIMean: 15.4, BMISD: 1.3},
	{AnchorMonths: 48, WeightMean: 16.1, WeightSD: 2.2, HeightMean: 102.7, HeightSD: 4.2, BMIMean: 15.3, BMISD: 1.3},
	{AnchorMonths: 60, WeightMean: 18.2, WeightSD: 2.6, HeightMean: 109.4, HeightSD: 4.6, BMIMean: 15.3, BMISD: 1.4},
}

// GrowthReferenceFor selects the nearest anchor for the given sex and age.
// Ages below the first anchor clamp to 24 months, above the last to 60.
// Ties between two anchors resolve to the younger one.
func GrowthReferenceFor(male bool, ageMonths int) GrowthReference {
	anchors := growthAnchorsFemale
	if male {
		anchors = growthAnchorsMale
	}

	best := anchors[0]
	bestDist := abs(ageMonths - best.AnchorMonths)
	for _, a := range anchors[1:] {
		if d := abs(ageMonths - a.AnchorMonths); d < bestDist {
			best, bestDist = a, d
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
