package engine

import "math"

// HRMax returns the profile override when set, otherwise the Tanaka estimate
// round(208 - 0.7*age).
func HRMax(age, override int) int {
	if override > 0 {
		return override
	}
	return int(math.Round(208 - 0.7*float64(age)))
}

// VO2FromHRRatio estimates VO2max from the HRmax/HRrest ratio (Uth et al.),
// rounded to one decimal. 0 when either rate is absent.
func VO2FromHRRatio(hrMax, hrRest int) float64 {
	if hrMax <= 0 || hrRest <= 0 {
		return 0
	}
	return round1(15.3 * float64(hrMax) / float64(hrRest))
}

// VO2FromCooper estimates VO2max from a 12-minute Cooper-test distance in
// meters, rounded to one decimal. 0 when no distance is recorded.
func VO2FromCooper(meters float64) float64 {
	if meters <= 0 {
		return 0
	}
	return round1((meters - 504.9) / 44.73)
}

// zoneBounds are the edges of the five heart-rate-reserve bands: Z1 spans
// 50-60% up through Z5 at 90-100%.
var zoneBounds = [6]float64{0.50, 0.60, 0.70, 0.80, 0.90, 1.00}

// Zones converts the five reserve bands to bpm ranges via the Karvonen
// formula rest + pct*(max-rest), rounding at each band edge. For any
// rest < max the bands are contiguous and strictly increasing.
func Zones(hrRest, hrMax int) []HeartRateZone {
	reserve := float64(hrMax - hrRest)
	zones := make([]HeartRateZone, 0, 5)
	for i := 0; i < 5; i++ {
		low := int(math.Round(float64(hrRest) + zoneBounds[i]*reserve))
		high := int(math.Round(float64(hrRest) + zoneBounds[i+1]*reserve))
		zones = append(zones, HeartRateZone{Zone: i + 1, LowBPM: low, HighBPM: high})
	}
	return zones
}

// Tier boundaries on the total assessment score (range 21-105).
const (
	rebuildMaxScore = 45
	buildMaxScore   = 80
)

// TierForScore buckets the total assessment score into a cardio tier.
func TierForScore(total int) CardioTier {
	switch {
	case total <= rebuildMaxScore:
		return TierRebuild
	case total <= buildMaxScore:
		return TierBuild
	default:
		return TierPerform
	}
}

// Per-tier prescription tables.
var (
	zone2MinutesByTier = map[CardioTier]int{TierRebuild: 30, TierBuild: 40, TierPerform: 50}
	intervalsByTier    = map[CardioTier]int{TierRebuild: 4, TierBuild: 6, TierPerform: 8}
)

// Prescription builds the weekly cardio plan for a tier. From age 50 on the
// interval count drops by one, floored at 3.
func Prescription(tier CardioTier, age int) CardioPlan {
	intervals := intervalsByTier[tier]
	if age >= 50 {
		intervals--
		if intervals < 3 {
			intervals = 3
		}
	}
	return CardioPlan{
		Tier:          tier,
		Zone2Minutes:  zone2MinutesByTier[tier],
		IntervalCount: intervals,
	}
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
