package session

import (
	"fmt"
	"strconv"

	"vitalis/internal/engine"
)

// ProfilePatch is a partial profile edit. Nil fields are left untouched, so
// the HTTP PATCH body and the CLI `set` command share one code path. Enum
// fields arrive as plain strings and are validated before application.
type ProfilePatch struct {
	Name            *string  `json:"name"`
	Gender          *string  `json:"gender"`
	Age             *int     `json:"age"`
	Units           *string  `json:"units"`
	HeightFt        *float64 `json:"height_ft"`
	HeightIn        *float64 `json:"height_in"`
	HeightCm        *float64 `json:"height_cm"`
	Weight          *float64 `json:"weight"`
	GoalWeight      *float64 `json:"goal_weight"`
	ActivityLevel   *string  `json:"activity_level"`
	CyclePhase      *string  `json:"cycle_phase"`
	RestingHR       *int     `json:"resting_hr"`
	HRMaxOverride   *int     `json:"hrmax_override"`
	CooperDistanceM *float64 `json:"cooper_distance_m"`
}

// validate rejects enum values outside their closed sets. Numeric fields are
// not range-checked here; out-of-range numbers degrade to neutral outputs in
// the engine instead of blocking the edit.
func (p ProfilePatch) validate() error {
	if p.Gender != nil && !engine.ValidGender(*p.Gender) {
		return fmt.Errorf("invalid gender %q", *p.Gender)
	}
	if p.Units != nil && !engine.ValidUnitSystem(*p.Units) {
		return fmt.Errorf("invalid units %q", *p.Units)
	}
	if p.ActivityLevel != nil && !engine.ValidActivityLevel(*p.ActivityLevel) {
		return fmt.Errorf("invalid activity level %q", *p.ActivityLevel)
	}
	if p.CyclePhase != nil && !engine.ValidCyclePhase(*p.CyclePhase) {
		return fmt.Errorf("invalid cycle phase %q", *p.CyclePhase)
	}
	return nil
}

// apply copies the provided fields onto dst. Callers validate first.
func (p ProfilePatch) apply(dst *engine.Profile) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Gender != nil {
		dst.Gender = engine.Gender(*p.Gender)
	}
	if p.Age != nil {
		dst.Age = *p.Age
	}
	if p.Units != nil {
		dst.Units = engine.UnitSystem(*p.Units)
	}
	if p.HeightFt != nil {
		dst.HeightFt = *p.HeightFt
	}
	if p.HeightIn != nil {
		dst.HeightIn = *p.HeightIn
	}
	if p.HeightCm != nil {
		dst.HeightCm = *p.HeightCm
	}
	if p.Weight != nil {
		dst.Weight = *p.Weight
	}
	if p.GoalWeight != nil {
		dst.GoalWeight = *p.GoalWeight
	}
	if p.ActivityLevel != nil {
		dst.ActivityLevel = engine.ActivityLevel(*p.ActivityLevel)
	}
	if p.CyclePhase != nil {
		dst.CyclePhase = engine.CyclePhase(*p.CyclePhase)
	}
	if p.RestingHR != nil {
		dst.RestingHR = *p.RestingHR
	}
	if p.HRMaxOverride != nil {
		dst.HRMaxOverride = *p.HRMaxOverride
	}
	if p.CooperDistanceM != nil {
		dst.CooperDistanceM = *p.CooperDistanceM
	}
}

// FieldPatch builds a single-field patch from a name/value string pair, the
// shape produced by `vitalis set <field> <value>`. Field names match the
// profile's JSON tags.
func FieldPatch(field, value string) (ProfilePatch, error) {
	var p ProfilePatch
	switch field {
	case "name":
		p.Name = &value
	case "gender":
		p.Gender = &value
	case "age":
		n, err := parseInt(field, value)
		if err != nil {
			return ProfilePatch{}, err
		}
		p.Age = &n
	case "units":
		p.Units = &value
	case "height_ft":
		f, err := parseFloat(field, value)
		if err != nil {
			return ProfilePatch{}, err
		}
		p.HeightFt = &f
	case "height_in":
		f, err := parseFloat(field, value)
		if err != nil {
			return ProfilePatch{}, err
		}
		p.HeightIn = &f
	case "height_cm":
		f, err := parseFloat(field, value)
		if err != nil {
			return ProfilePatch{}, err
		}
		p.HeightCm = &f
	case "weight":
		f, err := parseFloat(field, value)
		if err != nil {
			return ProfilePatch{}, err
		}
		p.Weight = &f
	case "goal_weight":
		f, err := parseFloat(field, value)
		if err != nil {
			return ProfilePatch{}, err
		}
		p.GoalWeight = &f
	case "activity_level":
		p.ActivityLevel = &value
	case "cycle_phase":
		p.CyclePhase = &value
	case "resting_hr":
		n, err := parseInt(field, value)
		if err != nil {
			return ProfilePatch{}, err
		}
		p.RestingHR = &n
	case "hrmax_override":
		n, err := parseInt(field, value)
		if err != nil {
			return ProfilePatch{}, err
		}
		p.HRMaxOverride = &n
	case "cooper_distance_m":
		f, err := parseFloat(field, value)
		if err != nil {
			return ProfilePatch{}, err
		}
		p.CooperDistanceM = &f
	default:
		return ProfilePatch{}, fmt.Errorf("unknown profile field %q", field)
	}
	return p, nil
}

func parseInt(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s wants a whole number, got %q", field, value)
	}
	return n, nil
}

func parseFloat(field, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s wants a number, got %q", field, value)
	}
	return f, nil
}
