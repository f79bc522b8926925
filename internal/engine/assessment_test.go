package engine

import "testing"

// TestDefaultAnswers verifies a fresh sheet: all 21 domains present at the
// neutral score, totalling 63.
func TestDefaultAnswers(t *testing.T) {
	a := DefaultAnswers()
	if len(a) != len(DomainKeys) {
		t.Fatalf("got %d answers, want %d", len(a), len(DomainKeys))
	}
	for _, k := range DomainKeys {
		if a[k] != 3 {
			t.Errorf("default %s = %d, want 3", k, a[k])
		}
	}
	if got := a.Total(); got != 63 {
		t.Errorf("Total() = %d, want 63", got)
	}
}

// TestScore_DefaultsAndClamps verifies the read-path repair rules: missing
// keys read as 3, stored values outside [1,5] clamp instead of leaking.
func TestScore_DefaultsAndClamps(t *testing.T) {
	a := AssessmentAnswers{"sleep": 9, "focus": -2, "grit": 4}

	if got := a.Score("sleep"); got != 5 {
		t.Errorf("Score(sleep) = %d, want clamp to 5", got)
	}
	if got := a.Score("focus"); got != 1 {
		t.Errorf("Score(focus) = %d, want clamp to 1", got)
	}
	if got := a.Score("grit"); got != 4 {
		t.Errorf("Score(grit) = %d, want 4", got)
	}
	if got := a.Score("breath"); got != 3 {
		t.Errorf("Score(breath) = %d, want default 3", got)
	}
}

// TestTotal_Range verifies the score range: all 1s at the bottom, all 5s at
// the top.
func TestTotal_Range(t *testing.T) {
	low := AssessmentAnswers{}
	high := AssessmentAnswers{}
	for _, k := range DomainKeys {
		low[k] = 1
		high[k] = 5
	}
	if got := low.Total(); got != 21 {
		t.Errorf("all-1s Total() = %d, want 21", got)
	}
	if got := high.Total(); got != 105 {
		t.Errorf("all-5s Total() = %d, want 105", got)
	}
}

// TestWeakest_OrderAndTies verifies ranking: explicit low scores come first,
// and equal scores fall back to canonical key order, which keeps downstream
// content selection deterministic.
func TestWeakest_OrderAndTies(t *testing.T) {
	a := DefaultAnswers()
	a["focus"] = 1
	a["breath"] = 2

	got := a.Weakest(2)
	if got[0] != "focus" || got[1] != "breath" {
		t.Errorf("Weakest(2) = %v, want [focus breath]", got)
	}

	// All scores equal: canonical order decides.
	tied := DefaultAnswers()
	got = tied.Weakest(2)
	if got[0] != "sleep" || got[1] != "nutrition" {
		t.Errorf("tied Weakest(2) = %v, want [sleep nutrition]", got)
	}
}

// TestWeakest_CapsAtDomainCount verifies n larger than the domain count
// returns all 21 keys.
func TestWeakest_CapsAtDomainCount(t *testing.T) {
	if got := DefaultAnswers().Weakest(100); len(got) != len(DomainKeys) {
		t.Errorf("Weakest(100) returned %d keys, want %d", len(got), len(DomainKeys))
	}
}

// TestIsDomain verifies membership checks against the canonical key list.
func TestIsDomain(t *testing.T) {
	if !IsDomain("internalHealth") {
		t.Error("IsDomain(internalHealth) = false, want true")
	}
	if IsDomain("mood") {
		t.Error("IsDomain(mood) = true, want false")
	}
}

// TestClone_Independent verifies that mutating a clone leaves the original
// untouched.
func TestClone_Independent(t *testing.T) {
	a := DefaultAnswers()
	b := a.Clone()
	b["sleep"] = 1
	if a["sleep"] != 3 {
		t.Errorf("original sleep = %d after clone mutation, want 3", a["sleep"])
	}
}
