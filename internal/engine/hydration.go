package engine

import "math"

// WaterMl computes the daily water target: 35 ml per kg of body weight plus
// 8 ml per zone-2 minute beyond the 30-minute base, plus the cycle delta.
// 0 when weight is absent: no body mass, no meaningful volume.
func WaterMl(weightKg float64, zone2Minutes int, cycle CycleAdjustment) int {
	if weightKg <= 0 {
		return 0
	}
	extra := float64(zone2Minutes-30) * 8
	if extra < 0 {
		extra = 0
	}
	return int(math.Round(weightKg*35+extra)) + cycle.WaterMlDelta
}

// SodiumMg computes the daily sodium target: 1800 mg base plus 3 mg per
// zone-2 minute beyond the first hour, clamped to [1500, 4000].
func SodiumMg(zone2Minutes int) int {
	extra := zone2Minutes - 60
	if extra < 0 {
		extra = 0
	}
	v := 1800 + extra*3
	if v < 1500 {
		v = 1500
	}
	if v > 4000 {
		v = 4000
	}
	return v
}

// SleepHours computes the nightly sleep target from a 7.5 h base: half an
// hour extra for a struggling sleep domain, another half for breath, plus
// the cycle bonus, rounded to one decimal and clamped to [7, 9.5].
func SleepHours(sleepScore, breathScore int, cycle CycleAdjustment) float64 {
	v := 7.5
	if sleepScore <= 2 {
		v += 0.5
	}
	if breathScore <= 2 {
		v += 0.5
	}
	v += cycle.SleepBonusHours
	v = round1(v)
	if v < 7 {
		v = 7
	}
	if v > 9.5 {
		v = 9.5
	}
	return v
}
