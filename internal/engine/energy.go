package engine

import "math"

// activityMultipliers maps activity levels to their TDEE multiplier. This is
// the single source of truth for valid activity levels; ValidActivityLevel
// checks membership here.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityActive:    1.725,
	ActivityAthlete:   1.9,
}

// Target-calorie shaping constants.
const (
	cutFactor      = 0.82
	bulkFactor     = 1.10
	deadbandKg     = 2.0
	calorieFloor   = 1200
	calorieCeiling = 5000
)

// BMR computes basal metabolic rate via Mifflin-St Jeor, rounded to a whole
// kcal. Returns 0 when gender, age, height, or weight is absent/zero; the
// zero cascades through TDEE and target calories and stays displayable.
func BMR(gender Gender, age int, heightCm, weightKg float64) int {
	if age <= 0 || heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	v := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch gender {
	case GenderMale:
		v += 5
	case GenderFemale:
		v -= 161
	default:
		return 0
	}
	return int(math.Round(v))
}

// TDEE scales BMR by the activity multiplier. An unknown or empty level
// falls back to sedentary so a half-filled profile still gets a usable
// number.
func TDEE(bmr int, level ActivityLevel) int {
	if bmr == 0 {
		return 0
	}
	mult, ok := activityMultipliers[level]
	if !ok {
		mult = activityMultipliers[ActivitySedentary]
	}
	return int(math.Round(float64(bmr) * mult))
}

// TargetCalories applies the goal-direction factor, the cycle calorie delta,
// and the [1200, 5000] safety clamp. Within the 2 kg maintenance deadband
// the target equals TDEE exactly, avoiding oscillating recommendations near
// goal. A zero goal weight means no goal is set and also reads as
// maintenance. A zero TDEE short-circuits to 0: the clamp protects real
// formula outputs, not the empty-profile cascade.
func TargetCalories(tdee int, weightKg, goalWeightKg float64, cycle CycleAdjustment) int {
	if tdee == 0 {
		return 0
	}
	delta := goalWeightKg - weightKg
	if goalWeightKg <= 0 {
		delta = 0
	}
	target := tdee
	if math.Abs(delta) >= deadbandKg {
		if delta < 0 {
			target = int(math.Round(float64(tdee) * cutFactor))
		} else {
			target = int(math.Round(float64(tdee) * bulkFactor))
		}
	}
	target += cycle.KcalDelta
	if target < calorieFloor {
		target = calorieFloor
	}
	if target > calorieCeiling {
		target = calorieCeiling
	}
	return target
}

// Macros splits the calorie target into protein/fat/carb grams: protein at
// 1.8 g per kg of body weight, fat at 28% of calories, carbs absorbing the
// remainder without going negative. All zeros when calories or weight is 0.
func Macros(calories int, weightKg float64) MacroSplit {
	if calories == 0 || weightKg <= 0 {
		return MacroSplit{}
	}
	protein := int(math.Round(weightKg * 1.8))
	fat := int(math.Round(float64(calories) * 0.28 / 9))
	carbs := int(math.Round(float64(calories-protein*4-fat*9) / 4))
	if carbs < 0 {
		carbs = 0
	}
	return MacroSplit{ProteinG: protein, FatG: fat, CarbsG: carbs}
}

// ClassifyDietMode compares target calories against TDEE: more than 5% under
// is cutting, more than 5% over is bulking, the band between is maintenance.
func ClassifyDietMode(calories, tdee int) DietMode {
	switch {
	case float64(calories) < 0.95*float64(tdee):
		return DietCutting
	case float64(calories) > 1.05*float64(tdee):
		return DietBulking
	default:
		return DietMaintenance
	}
}
