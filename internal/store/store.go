// Package store persists the profile, assessment answers, and the VO2 time
// series behind a small repository interface, with in-memory, SQLite, and
// PostgreSQL backends.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"vitalis/internal/engine"
)

// VO2Sample is one day's recorded fitness estimate. Samples are immutable
// once written and unique per calendar day.
type VO2Sample struct {
	Day   string  `json:"day"   db:"day"`
	Value float64 `json:"value" db:"value"`
}

// Repository is the persistence boundary for all session state. Loads return
// documented defaults (not errors) when nothing has been saved yet.
// Implementations must make AppendVO2's check-then-append atomic so the
// one-entry-per-day invariant holds under concurrent requests.
type Repository interface {
	LoadProfile(ctx context.Context) (engine.Profile, error)
	SaveProfile(ctx context.Context, p engine.Profile) error
	LoadAnswers(ctx context.Context) (engine.AssessmentAnswers, error)
	SaveAnswers(ctx context.Context, a engine.AssessmentAnswers) error
	// VO2History returns all samples ordered by day ascending.
	VO2History(ctx context.Context) ([]VO2Sample, error)
	// AppendVO2 records value for day unless the day already has a sample.
	// Returns true when a new sample was written. Existing samples are never
	// touched.
	AppendVO2(ctx context.Context, day string, value float64) (bool, error)
	Close() error
}

/* ─── Record codec ────────────────────────────────────────────────────── */

// The SQL backends share a flat key/value record layout: each profile field
// is its own `profile.<field>` record with a JSON-encoded value, and the
// answers map is the single `assessment` record.

const answersKey = "assessment"

// profileFields flattens a profile into its individually keyed records.
func profileFields(p engine.Profile) (map[string]string, error) {
	fields := map[string]any{
		"name":              p.Name,
		"gender":            p.Gender,
		"age":               p.Age,
		"units":             p.Units,
		"height_ft":         p.HeightFt,
		"height_in":         p.HeightIn,
		"height_cm":         p.HeightCm,
		"weight":            p.Weight,
		"goal_weight":       p.GoalWeight,
		"activity_level":    p.ActivityLevel,
		"cycle_phase":       p.CyclePhase,
		"resting_hr":        p.RestingHR,
		"hrmax_override":    p.HRMaxOverride,
		"cooper_distance_m": p.CooperDistanceM,
	}
	out := make(map[string]string, len(fields))
	for name, v := range fields {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode profile field %s: %w", name, err)
		}
		out["profile."+name] = string(raw)
	}
	return out, nil
}

// applyProfileField decodes one stored record into its profile field.
// Unrecognized keys are skipped so records from an older layout cannot break
// loading.
func applyProfileField(p *engine.Profile, key, raw string) error {
	b := []byte(raw)
	var err error
	switch key {
	case "profile.name":
		err = json.Unmarshal(b, &p.Name)
	case "profile.gender":
		err = json.Unmarshal(b, &p.Gender)
	case "profile.age":
		err = json.Unmarshal(b, &p.Age)
	case "profile.units":
		err = json.Unmarshal(b, &p.Units)
	case "profile.height_ft":
		err = json.Unmarshal(b, &p.HeightFt)
	case "profile.height_in":
		err = json.Unmarshal(b, &p.HeightIn)
	case "profile.height_cm":
		err = json.Unmarshal(b, &p.HeightCm)
	case "profile.weight":
		err = json.Unmarshal(b, &p.Weight)
	case "profile.goal_weight":
		err = json.Unmarshal(b, &p.GoalWeight)
	case "profile.activity_level":
		err = json.Unmarshal(b, &p.ActivityLevel)
	case "profile.cycle_phase":
		err = json.Unmarshal(b, &p.CyclePhase)
	case "profile.resting_hr":
		err = json.Unmarshal(b, &p.RestingHR)
	case "profile.hrmax_override":
		err = json.Unmarshal(b, &p.HRMaxOverride)
	case "profile.cooper_distance_m":
		err = json.Unmarshal(b, &p.CooperDistanceM)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// encodeAnswers marshals the answers map for the single assessment record.
func encodeAnswers(a engine.AssessmentAnswers) (string, error) {
	raw, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("encode answers: %w", err)
	}
	return string(raw), nil
}

// decodeAnswers unmarshals the assessment record.
func decodeAnswers(raw string) (engine.AssessmentAnswers, error) {
	var a engine.AssessmentAnswers
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	return a, nil
}
