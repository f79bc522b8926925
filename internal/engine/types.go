// Package engine derives every displayed health metric from the current
// profile and assessment snapshot. All computations are pure functions with a
// degrade-to-neutral policy: missing or zero inputs produce zero/default
// outputs rather than errors, so callers always have displayable values.
package engine

/* ─── Profile enums ───────────────────────────────────────────────────── */

// Gender selects the Mifflin-St Jeor constant and gates cycle-phase
// adjustments (phase deltas only apply to female profiles).
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// UnitSystem says how the raw height/weight fields on Profile are encoded.
// Imperial profiles carry feet+inches and pounds; metric ones centimeters
// and kilograms.
type UnitSystem string

const (
	UnitsImperial UnitSystem = "imperial"
	UnitsMetric   UnitSystem = "metric"
)

// ActivityLevel keys the TDEE multiplier table in energy.go.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
	ActivityAthlete   ActivityLevel = "athlete"
)

// CyclePhase indexes the adjustment table in cycle.go. PhaseNone or any
// unrecognized value maps to the neutral adjustment.
type CyclePhase string

const (
	PhaseNone         CyclePhase = "none"
	PhaseMenstruation CyclePhase = "menstruation"
	PhaseFollicular   CyclePhase = "follicular"
	PhaseOvulation    CyclePhase = "ovulation"
	PhaseLuteal       CyclePhase = "luteal"
)

// DietMode classifies target calories against TDEE.
type DietMode string

const (
	DietCutting     DietMode = "cutting"
	DietMaintenance DietMode = "maintenance"
	DietBulking     DietMode = "bulking"
)

// CardioTier buckets the total assessment score into a training tier.
type CardioTier string

const (
	TierRebuild CardioTier = "rebuild"
	TierBuild   CardioTier = "build"
	TierPerform CardioTier = "perform"
)

/* ─── Enum validation ─────────────────────────────────────────────────── */

// validGenders, validUnits, and validPhases are the single source of truth
// for enum validation at the edit boundary. Activity levels validate against
// the multiplier table in energy.go for the same reason: validation can
// never drift from computation.
var (
	validGenders = map[Gender]bool{GenderMale: true, GenderFemale: true}
	validUnits   = map[UnitSystem]bool{UnitsImperial: true, UnitsMetric: true}
	validPhases  = map[CyclePhase]bool{
		PhaseNone:         true,
		PhaseMenstruation: true,
		PhaseFollicular:   true,
		PhaseOvulation:    true,
		PhaseLuteal:       true,
	}
)

// ValidGender reports whether v is an accepted gender value.
func ValidGender(v string) bool { return validGenders[Gender(v)] }

// ValidUnitSystem reports whether v is an accepted unit system value.
func ValidUnitSystem(v string) bool { return validUnits[UnitSystem(v)] }

// ValidActivityLevel reports whether v has a TDEE multiplier.
func ValidActivityLevel(v string) bool {
	_, ok := activityMultipliers[ActivityLevel(v)]
	return ok
}

// ValidCyclePhase reports whether v is an accepted cycle phase value.
func ValidCyclePhase(v string) bool { return validPhases[CyclePhase(v)] }

/* ─── Profile ─────────────────────────────────────────────────────────── */

// Profile is the single-user body profile every derived number comes from.
// Zero values mean "not provided": derivations degrade to neutral outputs
// instead of erroring when fields are missing.
type Profile struct {
	Name   string     `json:"name"`
	Gender Gender     `json:"gender"`
	Age    int        `json:"age"`
	Units  UnitSystem `json:"units"`

	// Raw measurements in the profile's unit system. Imperial profiles use
	// HeightFt+HeightIn and pounds; metric ones use HeightCm and kilograms.
	HeightFt   float64 `json:"height_ft"`
	HeightIn   float64 `json:"height_in"`
	HeightCm   float64 `json:"height_cm"`
	Weight     float64 `json:"weight"`
	GoalWeight float64 `json:"goal_weight"`

	ActivityLevel ActivityLevel `json:"activity_level"`
	CyclePhase    CyclePhase    `json:"cycle_phase"`

	RestingHR       int     `json:"resting_hr"`
	HRMaxOverride   int     `json:"hrmax_override"`
	CooperDistanceM float64 `json:"cooper_distance_m"`
}

// DefaultProfile returns the profile used before the user has entered
// anything.
func DefaultProfile() Profile {
	return Profile{
		Gender:        GenderMale,
		Units:         UnitsImperial,
		ActivityLevel: ActivityModerate,
		CyclePhase:    PhaseNone,
	}
}

// HeightCmValue returns the height in centimeters regardless of unit system.
func (p Profile) HeightCmValue() float64 {
	if p.Units == UnitsMetric {
		return p.HeightCm
	}
	return HeightCm(p.HeightFt, p.HeightIn)
}

// WeightKgValue returns the current weight in kilograms regardless of unit
// system.
func (p Profile) WeightKgValue() float64 {
	if p.Units == UnitsMetric {
		return p.Weight
	}
	return WeightKg(p.Weight)
}

// GoalWeightKgValue returns the goal weight in kilograms regardless of unit
// system. Zero means no goal is set.
func (p Profile) GoalWeightKgValue() float64 {
	if p.Units == UnitsMetric {
		return p.GoalWeight
	}
	return WeightKg(p.GoalWeight)
}

/* ─── Derived outputs ─────────────────────────────────────────────────── */

// MacroSplit is the daily macro targets in grams.
type MacroSplit struct {
	ProteinG int `json:"protein_g"`
	FatG     int `json:"fat_g"`
	CarbsG   int `json:"carbs_g"`
}

// HydrationTargets is the daily water and sodium targets.
type HydrationTargets struct {
	WaterMl  int `json:"water_ml"`
	SodiumMg int `json:"sodium_mg"`
}

// VO2Estimates holds the two independent VO2max estimators. A zero value
// means that estimator's inputs are absent.
type VO2Estimates struct {
	FromHRRatio    float64 `json:"from_hr_ratio"`
	FromCooperTest float64 `json:"from_cooper_test"`
}

// HeartRateZone is one Karvonen reserve band converted to bpm.
type HeartRateZone struct {
	Zone    int `json:"zone"`
	LowBPM  int `json:"low_bpm"`
	HighBPM int `json:"high_bpm"`
}

// CardioPlan is the tiered weekly cardio prescription.
type CardioPlan struct {
	Tier          CardioTier `json:"tier"`
	Zone2Minutes  int        `json:"zone2_minutes"`
	IntervalCount int        `json:"interval_count"`
}

// CycleAdjustment is the additive delta set for one cycle phase. The engine
// applies the numeric deltas internally; TrainingBias and Micronutrients are
// display guidance passed through on DerivedMetrics.
type CycleAdjustment struct {
	KcalDelta       int      `json:"kcal_delta"`
	WaterMlDelta    int      `json:"water_ml_delta"`
	SleepBonusHours float64  `json:"sleep_bonus_hours"`
	TrainingBias    string   `json:"training_bias"`
	Micronutrients  []string `json:"micronutrients,omitempty"`
}

// DerivedMetrics is the full computed snapshot. Never persisted; recomputed
// from (Profile, AssessmentAnswers) on every observation.
type DerivedMetrics struct {
	BMR             int              `json:"bmr"`
	TDEE            int              `json:"tdee"`
	TargetCalories  int              `json:"target_calories"`
	Macros          MacroSplit       `json:"macros"`
	DietMode        DietMode         `json:"diet_mode"`
	Hydration       HydrationTargets `json:"hydration"`
	SleepHours      float64          `json:"sleep_hours"`
	HRMax           int              `json:"hr_max"`
	VO2             VO2Estimates     `json:"vo2"`
	Zones           []HeartRateZone  `json:"zones"`
	Cardio          CardioPlan       `json:"cardio"`
	Cycle           CycleAdjustment  `json:"cycle"`
	AssessmentTotal int              `json:"assessment_total"`
}

// PreferredVO2 returns the estimate used for the daily time-series append:
// the Cooper-test value when present, else the heart-rate-ratio value.
// ok=false when neither estimator has inputs.
func (m DerivedMetrics) PreferredVO2() (value float64, ok bool) {
	if m.VO2.FromCooperTest > 0 {
		return m.VO2.FromCooperTest, true
	}
	if m.VO2.FromHRRatio > 0 {
		return m.VO2.FromHRRatio, true
	}
	return 0, false
}
