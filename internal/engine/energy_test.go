package engine

import "testing"

/* ─── BMR tests ──────────────────────────────────────────────────────── */

// TestBMR_KnownProfiles verifies the Mifflin-St Jeor formula against
// hand-computed values.
//
// male, 30y, 178cm, 86.2kg: 10*86.2 + 6.25*178 - 5*30 + 5 = 1829.5 → 1830.
// female, same numbers: 1829.5 - 166 = 1663.5 → 1664.
func TestBMR_KnownProfiles(t *testing.T) {
	cases := []struct {
		name     string
		gender   Gender
		age      int
		heightCm float64
		weightKg float64
		want     int
	}{
		{"male reference", GenderMale, 30, 178, 86.2, 1830},
		{"female reference", GenderFemale, 30, 178, 86.2, 1664},
		{"male light frame", GenderMale, 25, 170, 60, 1543},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BMR(tc.gender, tc.age, tc.heightCm, tc.weightKg)
			if got != tc.want {
				t.Errorf("BMR(%s, %d, %.1f, %.1f) = %d, want %d",
					tc.gender, tc.age, tc.heightCm, tc.weightKg, got, tc.want)
			}
		})
	}
}

// TestBMR_MissingInputs verifies the degrade-to-zero policy: any absent
// required input yields 0, not an error.
func TestBMR_MissingInputs(t *testing.T) {
	cases := []struct {
		name     string
		gender   Gender
		age      int
		heightCm float64
		weightKg float64
	}{
		{"zero age", GenderMale, 0, 178, 86.2},
		{"zero height", GenderMale, 30, 0, 86.2},
		{"zero weight", GenderMale, 30, 178, 0},
		{"empty gender", "", 30, 178, 86.2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BMR(tc.gender, tc.age, tc.heightCm, tc.weightKg); got != 0 {
				t.Errorf("BMR = %d, want 0 for %s", got, tc.name)
			}
		})
	}
}

/* ─── TDEE tests ─────────────────────────────────────────────────────── */

// TestTDEE_Multipliers verifies every activity multiplier against BMR 1830,
// and that an unknown level falls back to the sedentary multiplier.
func TestTDEE_Multipliers(t *testing.T) {
	cases := []struct {
		level ActivityLevel
		want  int
	}{
		{ActivitySedentary, 2196},
		{ActivityLight, 2516},
		{ActivityModerate, 2837},
		{ActivityActive, 3157},
		{ActivityAthlete, 3477},
		{"unknown", 2196},
		{"", 2196},
	}

	for _, tc := range cases {
		name := string(tc.level)
		if name == "" {
			name = "empty"
		}
		t.Run(name, func(t *testing.T) {
			if got := TDEE(1830, tc.level); got != tc.want {
				t.Errorf("TDEE(1830, %q) = %d, want %d", tc.level, got, tc.want)
			}
		})
	}
}

// TestTDEE_ZeroBMR verifies the zero cascade: no BMR, no TDEE.
func TestTDEE_ZeroBMR(t *testing.T) {
	if got := TDEE(0, ActivityModerate); got != 0 {
		t.Errorf("TDEE(0, moderate) = %d, want 0", got)
	}
}

/* ─── Target-calorie tests ───────────────────────────────────────────── */

// TestTargetCalories_CutScenario verifies the cutting path with the
// reference profile: TDEE 2837, 86.2kg aiming for 81.6kg (Δ = -4.6kg)
// → round(2837*0.82) = 2326.
func TestTargetCalories_CutScenario(t *testing.T) {
	got := TargetCalories(2837, 86.2, 81.6, NeutralCycle())
	if got != 2326 {
		t.Errorf("TargetCalories = %d, want 2326", got)
	}
}

// TestTargetCalories_MaintenanceDeadband verifies that any goal within 2kg
// of the current weight leaves the target at TDEE exactly, with no
// oscillating cut/bulk recommendations near goal.
func TestTargetCalories_MaintenanceDeadband(t *testing.T) {
	cases := []struct {
		name   string
		weight float64
		goal   float64
	}{
		{"at goal", 80, 80},
		{"1.9kg under goal", 80, 81.9},
		{"1.9kg over goal", 80, 78.1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TargetCalories(2837, tc.weight, tc.goal, NeutralCycle()); got != 2837 {
				t.Errorf("TargetCalories = %d, want 2837 (TDEE unchanged)", got)
			}
		})
	}
}

// TestTargetCalories_BulkScenario verifies the gaining path: Δ = +5kg
// → round(2837*1.10) = 3121.
func TestTargetCalories_BulkScenario(t *testing.T) {
	got := TargetCalories(2837, 75, 80, NeutralCycle())
	if got != 3121 {
		t.Errorf("TargetCalories = %d, want 3121", got)
	}
}

// TestTargetCalories_NoGoalWeight verifies that a zero goal weight reads as
// "no goal set" and keeps the target at TDEE rather than applying the cut
// factor against an implied goal of 0kg.
func TestTargetCalories_NoGoalWeight(t *testing.T) {
	if got := TargetCalories(2837, 86.2, 0, NeutralCycle()); got != 2837 {
		t.Errorf("TargetCalories with no goal = %d, want 2837", got)
	}
}

// TestTargetCalories_Clamp verifies the [1200, 5000] safety clamp on both
// ends.
func TestTargetCalories_Clamp(t *testing.T) {
	// Cutting from a low TDEE: round(1400*0.82) = 1148 → floor 1200.
	if got := TargetCalories(1400, 90, 70, NeutralCycle()); got != 1200 {
		t.Errorf("low-end target = %d, want 1200", got)
	}
	// Bulking from a high TDEE: round(4800*1.10) = 5280 → ceiling 5000.
	if got := TargetCalories(4800, 70, 90, NeutralCycle()); got != 5000 {
		t.Errorf("high-end target = %d, want 5000", got)
	}
}

// TestTargetCalories_ZeroTDEE verifies that an empty profile stays at 0 even
// when a cycle delta is active: the clamp must not pull an absent target up
// to 1200.
func TestTargetCalories_ZeroTDEE(t *testing.T) {
	menstruation := CycleFor(GenderFemale, PhaseMenstruation)
	if got := TargetCalories(0, 0, 0, menstruation); got != 0 {
		t.Errorf("TargetCalories with zero TDEE = %d, want 0", got)
	}
}

// TestTargetCalories_CycleDelta verifies the additive phase calorie delta on
// a maintenance target: menstruation adds 100 kcal.
func TestTargetCalories_CycleDelta(t *testing.T) {
	menstruation := CycleFor(GenderFemale, PhaseMenstruation)
	if got := TargetCalories(2837, 86.2, 86.2, menstruation); got != 2937 {
		t.Errorf("TargetCalories with menstruation delta = %d, want 2937", got)
	}
}

/* ─── Macro tests ────────────────────────────────────────────────────── */

// TestMacros_ReferenceSplit verifies the macro split for the cut scenario:
// 2326 kcal at 86.2kg → protein round(86.2*1.8) = 155g, fat
// round(2326*0.28/9) = 72g, carbs round((2326 - 620 - 648)/4) = 265g.
func TestMacros_ReferenceSplit(t *testing.T) {
	got := Macros(2326, 86.2)
	want := MacroSplit{ProteinG: 155, FatG: 72, CarbsG: 265}
	if got != want {
		t.Errorf("Macros(2326, 86.2) = %+v, want %+v", got, want)
	}
}

// TestMacros_CarbsNeverNegative verifies that a heavy body weight on a low
// calorie target (protein + fat alone exceed the calories) floors carbs at 0
// instead of going negative.
func TestMacros_CarbsNeverNegative(t *testing.T) {
	got := Macros(1200, 200)
	if got.CarbsG != 0 {
		t.Errorf("CarbsG = %d, want 0", got.CarbsG)
	}
	if got.ProteinG != 360 || got.FatG != 37 {
		t.Errorf("ProteinG/FatG = %d/%d, want 360/37", got.ProteinG, got.FatG)
	}
}

// TestMacros_ZeroInputs verifies the all-zero split when calories or weight
// is absent.
func TestMacros_ZeroInputs(t *testing.T) {
	if got := Macros(0, 86.2); got != (MacroSplit{}) {
		t.Errorf("Macros(0, 86.2) = %+v, want zero split", got)
	}
	if got := Macros(2326, 0); got != (MacroSplit{}) {
		t.Errorf("Macros(2326, 0) = %+v, want zero split", got)
	}
}

/* ─── Diet-mode tests ────────────────────────────────────────────────── */

// TestClassifyDietMode_Boundaries verifies the 5% band edges around TDEE
// 100: 94 is cutting, 95 and 105 sit on the (exclusive) boundaries and stay
// maintenance, 106 is bulking.
func TestClassifyDietMode_Boundaries(t *testing.T) {
	cases := []struct {
		calories int
		tdee     int
		want     DietMode
	}{
		{94, 100, DietCutting},
		{95, 100, DietMaintenance},
		{100, 100, DietMaintenance},
		{105, 100, DietMaintenance},
		{106, 100, DietBulking},
		{2326, 2837, DietCutting},
		{0, 0, DietMaintenance},
	}

	for _, tc := range cases {
		got := ClassifyDietMode(tc.calories, tc.tdee)
		if got != tc.want {
			t.Errorf("ClassifyDietMode(%d, %d) = %s, want %s", tc.calories, tc.tdee, got, tc.want)
		}
	}
}
