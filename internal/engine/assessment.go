package engine

import "sort"

// DomainKeys lists the 21 assessment domains in canonical order. The order
// is load-bearing: ranking ties break by position here, which keeps content
// selection deterministic when several domains share the lowest score.
var DomainKeys = []string{
	"sleep", "nutrition", "hydration", "bodyRel", "breath", "chatter",
	"compassion", "resilience", "focus", "grit", "rhythm", "spiritual",
	"turnToward", "conflict", "trust", "overthink", "intimacy", "selfExpand",
	"connection", "internalHealth", "allIn",
}

// domainIndex maps each domain key to its canonical position.
var domainIndex = func() map[string]int {
	m := make(map[string]int, len(DomainKeys))
	for i, k := range DomainKeys {
		m[k] = i
	}
	return m
}()

// IsDomain reports whether key is one of the 21 assessment domains.
func IsDomain(key string) bool {
	_, ok := domainIndex[key]
	return ok
}

// Score bounds for a single assessment answer.
const (
	MinScore     = 1
	MaxScore     = 5
	neutralScore = 3
)

// AssessmentAnswers maps domain keys to scores in [MinScore, MaxScore].
// Missing keys read as the neutral score; out-of-range stored values clamp
// on read, so a corrupted record still produces usable metrics.
type AssessmentAnswers map[string]int

// DefaultAnswers returns all 21 domains at the neutral score.
func DefaultAnswers() AssessmentAnswers {
	a := make(AssessmentAnswers, len(DomainKeys))
	for _, k := range DomainKeys {
		a[k] = neutralScore
	}
	return a
}

// Score returns the answer for key, defaulting missing entries to 3 and
// clamping stored values into [1,5].
func (a AssessmentAnswers) Score(key string) int {
	v, ok := a[key]
	if !ok {
		return neutralScore
	}
	if v < MinScore {
		return MinScore
	}
	if v > MaxScore {
		return MaxScore
	}
	return v
}

// Total sums all 21 domain scores. Range [21,105]; a default sheet scores 63.
func (a AssessmentAnswers) Total() int {
	sum := 0
	for _, k := range DomainKeys {
		sum += a.Score(k)
	}
	return sum
}

// Weakest returns the n lowest-scoring domain keys, ascending by score, ties
// broken by canonical order. n is capped at the domain count.
func (a AssessmentAnswers) Weakest(n int) []string {
	keys := make([]string, len(DomainKeys))
	copy(keys, DomainKeys)
	sort.SliceStable(keys, func(i, j int) bool {
		return a.Score(keys[i]) < a.Score(keys[j])
	})
	if n > len(keys) {
		n = len(keys)
	}
	return keys[:n]
}

// Clone returns an independent copy so callers can mutate without aliasing
// stored state.
func (a AssessmentAnswers) Clone() AssessmentAnswers {
	out := make(AssessmentAnswers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
