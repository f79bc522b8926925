package engine

// ComputeDerivedMetrics recomputes the full metrics snapshot from the
// current profile and answers. Pure and total: every input combination
// produces a displayable result, with absent inputs degrading per the rules
// on the individual computations. Called in full on every observation;
// nothing here is worth caching at single-user scale.
func ComputeDerivedMetrics(p Profile, a AssessmentAnswers) DerivedMetrics {
	heightCm := p.HeightCmValue()
	weightKg := p.WeightKgValue()
	goalKg := p.GoalWeightKgValue()

	cycle := CycleFor(p.Gender, p.CyclePhase)
	bmr := BMR(p.Gender, p.Age, heightCm, weightKg)
	tdee := TDEE(bmr, p.ActivityLevel)
	calories := TargetCalories(tdee, weightKg, goalKg, cycle)

	total := a.Total()
	plan := Prescription(TierForScore(total), p.Age)
	hrMax := HRMax(p.Age, p.HRMaxOverride)

	return DerivedMetrics{
		BMR:            bmr,
		TDEE:           tdee,
		TargetCalories: calories,
		Macros:         Macros(calories, weightKg),
		DietMode:       ClassifyDietMode(calories, tdee),
		Hydration: HydrationTargets{
			WaterMl:  WaterMl(weightKg, plan.Zone2Minutes, cycle),
			SodiumMg: SodiumMg(plan.Zone2Minutes),
		},
		SleepHours: SleepHours(a.Score("sleep"), a.Score("breath"), cycle),
		HRMax:      hrMax,
		VO2: VO2Estimates{
			FromHRRatio:    VO2FromHRRatio(hrMax, p.RestingHR),
			FromCooperTest: VO2FromCooper(p.CooperDistanceM),
		},
		Zones:           Zones(p.RestingHR, hrMax),
		Cardio:          plan,
		Cycle:           cycle,
		AssessmentTotal: total,
	}
}
