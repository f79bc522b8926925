package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestComputeDerivedMetrics_CutScenario runs the full pipeline on the
// reference cutting profile and diffs the complete snapshot. Every number
// here is hand-computed from the formulas: BMR 1829.5 → 1830, TDEE
// round(1830*1.55) = 2837, target round(2837*0.82) = 2326, build-tier
// cardio from the default assessment total of 63, HRmax 208-0.7*30 = 187.
func TestComputeDerivedMetrics_CutScenario(t *testing.T) {
	p := Profile{
		Name:            "Sam",
		Gender:          GenderMale,
		Age:             30,
		Units:           UnitsMetric,
		HeightCm:        178,
		Weight:          86.2,
		GoalWeight:      81.6,
		ActivityLevel:   ActivityModerate,
		RestingHR:       60,
		CooperDistanceM: 2400,
	}

	got := ComputeDerivedMetrics(p, DefaultAnswers())
	want := DerivedMetrics{
		BMR:            1830,
		TDEE:           2837,
		TargetCalories: 2326,
		Macros:         MacroSplit{ProteinG: 155, FatG: 72, CarbsG: 265},
		DietMode:       DietCutting,
		Hydration:      HydrationTargets{WaterMl: 3097, SodiumMg: 1800},
		SleepHours:     7.5,
		HRMax:          187,
		VO2:            VO2Estimates{FromHRRatio: 47.7, FromCooperTest: 42.4},
		Zones: []HeartRateZone{
			{Zone: 1, LowBPM: 124, HighBPM: 136},
			{Zone: 2, LowBPM: 136, HighBPM: 149},
			{Zone: 3, LowBPM: 149, HighBPM: 162},
			{Zone: 4, LowBPM: 162, HighBPM: 174},
			{Zone: 5, LowBPM: 174, HighBPM: 187},
		},
		Cardio:          CardioPlan{Tier: TierBuild, Zone2Minutes: 40, IntervalCount: 6},
		Cycle:           CycleAdjustment{TrainingBias: "Balanced"},
		AssessmentTotal: 63,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

// TestComputeDerivedMetrics_ImperialProfile verifies the unit-conversion
// path: 5'10" and 190lb convert to 177.8cm / 86.18kg before the energy
// formulas run.
func TestComputeDerivedMetrics_ImperialProfile(t *testing.T) {
	p := Profile{
		Gender:        GenderMale,
		Age:           30,
		Units:         UnitsImperial,
		HeightFt:      5,
		HeightIn:      10,
		Weight:        190,
		GoalWeight:    188,
		ActivityLevel: ActivityModerate,
	}

	got := ComputeDerivedMetrics(p, DefaultAnswers())
	if got.BMR != 1828 {
		t.Errorf("BMR = %d, want 1828", got.BMR)
	}
	if got.TDEE != 2833 {
		t.Errorf("TDEE = %d, want 2833", got.TDEE)
	}
	// 190lb and 188lb are 0.9kg apart: inside the maintenance deadband.
	if got.TargetCalories != got.TDEE {
		t.Errorf("TargetCalories = %d, want TDEE %d", got.TargetCalories, got.TDEE)
	}
}

// TestComputeDerivedMetrics_FemaleCyclePhases verifies the phase deltas land
// on the final numbers: menstruation adds 100 kcal, 300 ml and half an hour
// of sleep against the same profile in the neutral phase.
func TestComputeDerivedMetrics_FemaleCyclePhases(t *testing.T) {
	p := Profile{
		Gender:        GenderFemale,
		Age:           30,
		Units:         UnitsMetric,
		HeightCm:      178,
		Weight:        86.2,
		GoalWeight:    86.2,
		ActivityLevel: ActivityModerate,
		CyclePhase:    PhaseNone,
	}
	answers := DefaultAnswers()
	base := ComputeDerivedMetrics(p, answers)

	p.CyclePhase = PhaseMenstruation
	adjusted := ComputeDerivedMetrics(p, answers)

	if got := adjusted.TargetCalories - base.TargetCalories; got != 100 {
		t.Errorf("menstruation kcal delta = %d, want 100", got)
	}
	if got := adjusted.Hydration.WaterMl - base.Hydration.WaterMl; got != 300 {
		t.Errorf("menstruation water delta = %d, want 300", got)
	}
	if got := adjusted.SleepHours - base.SleepHours; got != 0.5 {
		t.Errorf("menstruation sleep delta = %.1f, want 0.5", got)
	}
	if adjusted.Cycle.TrainingBias != "Deload/skill/Zone 2" {
		t.Errorf("TrainingBias = %q, want \"Deload/skill/Zone 2\"", adjusted.Cycle.TrainingBias)
	}

	// Follicular carries no numeric deltas: everything matches the baseline.
	p.CyclePhase = PhaseFollicular
	follicular := ComputeDerivedMetrics(p, answers)
	if follicular.TargetCalories != base.TargetCalories ||
		follicular.Hydration.WaterMl != base.Hydration.WaterMl ||
		follicular.SleepHours != base.SleepHours {
		t.Errorf("follicular changed numbers: target %d/%d water %d/%d sleep %.1f/%.1f",
			follicular.TargetCalories, base.TargetCalories,
			follicular.Hydration.WaterMl, base.Hydration.WaterMl,
			follicular.SleepHours, base.SleepHours)
	}
}

// TestComputeDerivedMetrics_EmptyProfile verifies the zero cascade on a
// completely empty profile with no recorded answers: energy values all 0,
// neutral sleep and sodium defaults, no VO2 estimate available.
func TestComputeDerivedMetrics_EmptyProfile(t *testing.T) {
	got := ComputeDerivedMetrics(Profile{}, nil)

	if got.BMR != 0 || got.TDEE != 0 || got.TargetCalories != 0 {
		t.Errorf("energy cascade = %d/%d/%d, want 0/0/0", got.BMR, got.TDEE, got.TargetCalories)
	}
	if got.Macros != (MacroSplit{}) {
		t.Errorf("Macros = %+v, want zero split", got.Macros)
	}
	if got.Hydration.WaterMl != 0 {
		t.Errorf("WaterMl = %d, want 0", got.Hydration.WaterMl)
	}
	if got.Hydration.SodiumMg != 1800 {
		t.Errorf("SodiumMg = %d, want 1800", got.Hydration.SodiumMg)
	}
	if got.SleepHours != 7.5 {
		t.Errorf("SleepHours = %.1f, want 7.5", got.SleepHours)
	}
	// A nil answer map reads as the neutral sheet.
	if got.AssessmentTotal != 63 {
		t.Errorf("AssessmentTotal = %d, want 63", got.AssessmentTotal)
	}
	if _, ok := got.PreferredVO2(); ok {
		t.Error("PreferredVO2 ok = true on empty profile, want false")
	}
}

// TestPreferredVO2 verifies the estimator preference order for the daily
// time-series append: Cooper when present, ratio as fallback, none when
// neither has inputs.
func TestPreferredVO2(t *testing.T) {
	both := DerivedMetrics{VO2: VO2Estimates{FromHRRatio: 45.9, FromCooperTest: 42.4}}
	if v, ok := both.PreferredVO2(); !ok || v != 42.4 {
		t.Errorf("PreferredVO2 = %.1f/%v, want 42.4/true (Cooper preferred)", v, ok)
	}

	ratioOnly := DerivedMetrics{VO2: VO2Estimates{FromHRRatio: 45.9}}
	if v, ok := ratioOnly.PreferredVO2(); !ok || v != 45.9 {
		t.Errorf("PreferredVO2 = %.1f/%v, want 45.9/true", v, ok)
	}

	none := DerivedMetrics{}
	if _, ok := none.PreferredVO2(); ok {
		t.Error("PreferredVO2 ok = true with no estimates, want false")
	}
}
