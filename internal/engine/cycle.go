package engine

// cycleAdjustments is the phase-indexed delta table applied to female
// profiles. The micronutrient lists are display-only guidance.
var cycleAdjustments = map[CyclePhase]CycleAdjustment{
	PhaseMenstruation: {
		KcalDelta:       100,
		WaterMlDelta:    300,
		SleepBonusHours: 0.5,
		TrainingBias:    "Deload/skill/Zone 2",
		Micronutrients:  []string{"iron", "magnesium", "vitamin C"},
	},
	PhaseFollicular: {
		TrainingBias:   "Push strength/HIIT",
		Micronutrients: []string{"B vitamins", "zinc"},
	},
	PhaseOvulation: {
		WaterMlDelta:   150,
		TrainingBias:   "Peak power; protect joints",
		Micronutrients: []string{"omega-3", "antioxidants"},
	},
	PhaseLuteal: {
		KcalDelta:       150,
		WaterMlDelta:    400,
		SleepBonusHours: 0.5,
		TrainingBias:    "Zone 2/tempo; manage heat",
		Micronutrients:  []string{"magnesium", "calcium", "vitamin B6"},
	},
}

// NeutralCycle is the all-zero adjustment used for male profiles and for any
// unset or unrecognized phase.
func NeutralCycle() CycleAdjustment {
	return CycleAdjustment{TrainingBias: "Balanced"}
}

// CycleFor returns the adjustment for the profile's phase. Only female
// profiles get phase deltas; everything else is neutral.
func CycleFor(gender Gender, phase CyclePhase) CycleAdjustment {
	if gender != GenderFemale {
		return NeutralCycle()
	}
	adj, ok := cycleAdjustments[phase]
	if !ok {
		return NeutralCycle()
	}
	return adj
}
