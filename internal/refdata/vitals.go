package refdata

import "github.com/pediatric-clinical-engine/internal/domain"

// Pediatric vital-sign normal ranges by age category. Oxygen saturation and
// temperature apply across all buckets; heart rate, respiratory rate and
// blood pressure are age-dependent.

var vitalRangesByCategory = map[domain.AgeCategory]domain.NormalRanges{
	domain.INFANT: {
		HeartRate:        domain.VitalRange{Min: 100, Max: 160, Unit: "bpm"},
		RespiratoryRate:  domain.VitalRange{Min: 30, Max: 60, Unit: "breaths/min"},
		OxygenSaturation: domain.VitalRange{Min: 95, Max: 100, Unit: "%"},
		Temperature:      domain.VitalRange{Min: 36.0, Max: 37.5, Unit: "°C"},
		SystolicBP:       domain.VitalRange{Min: 70, Max: 100, Unit: "mmHg"},
		DiastolicBP:      domain.VitalRange{Min: 35, Max: 65, Unit: "mmHg"},
	},
	domain.TODDLER: {
		HeartRate:        domain.VitalRange{Min: 90, Max: 150, Unit: "bpm"},
		RespiratoryRate:  domain.VitalRange{Min: 24, Max: 40, Unit: "breaths/min"},
		OxygenSaturation: domain.VitalRange{Min: 95, Max: 100, Unit: "%"},
		Temperature:      domain.VitalRange{Min: 36.0, Max: 37.5, Unit: "°C"},
		SystolicBP:       domain.VitalRange{Min: 80, Max: 110, Unit: "mmHg"},
		DiastolicBP:      domain.VitalRange{Min: 40, Max: 70, Unit: "mmHg"},
	},
	domain.CHILD: {
		HeartRate:        domain.VitalRange{Min: 70, Max: 120, Unit: "bpm"},
		RespiratoryRate:  domain.VitalRange{Min: 18, Max: 30, Unit: "breaths/min"},
		OxygenSaturation: domain.VitalRange{Min: 95, Max: 100, Unit: "%"},
		Temperature:      domain.VitalRange{Min: 36.0, Max: 37.5, Unit: "°C"},
		SystolicBP:       domain.VitalRange{Min: 85, Max: 120, Unit: "mmHg"},
		DiastolicBP:      domain.VitalRange{Min: 50, Max: 80, Unit: "mmHg"},
	},
	domain.ADOLESCENT: {
		HeartRate:        domain.VitalRange{Min: 60, Max: 100, Unit: "bpm"},
		RespiratoryRate:  domain.VitalRange{Min: 12, Max: 20, Unit: "breaths/min"},
		OxygenSaturation: domain.VitalRange{Min: 95, Max: 100, Unit: "%"},
		Temperature:      domain.VitalRange{Min: 36.0, Max: 37.5, Unit: "°C"},
		SystolicBP:       domain.VitalRange{Min: 95, Max: 130, Unit: "mmHg"},
		DiastolicBP:      domain.VitalRange{Min: 55, Max: 85, Unit: "mmHg"},
	},
}

// AgeCategoryFor buckets an age in months for range selection.
func AgeCategoryFor(ageMonths int) domain.AgeCategory {
	switch {
	case ageMonths < 12:
		return domain.INFANT
	case ageMonths < 36:
		return domain.TODDLER
	case ageMonths < 144:
		return domain.CHILD
	default:
		return domain.ADOLESCENT
	}
}

// VitalRangesFor returns the age category and its normal ranges for an age
// in months.
func VitalRangesFor(ageMonths int) (domain.AgeCategory, domain.NormalRanges) {
	cat := AgeCategoryFor(ageMonths)
	return cat, vitalRangesByCategory[cat]
}
