package store

import (
	"context"
	"sort"
	"sync"

	"vitalis/internal/engine"
)

// Memory is the in-memory repository used by tests and the throwaway
// `memory` backend. Same semantics as the durable backends, no I/O.
type Memory struct {
	mu         sync.RWMutex
	profile    engine.Profile
	answers    engine.AssessmentAnswers
	vo2        map[string]float64
	hasProfile bool
	hasAnswers bool
}

// NewMemory returns an empty in-memory repository.
func NewMemory() *Memory {
	return &Memory{vo2: make(map[string]float64)}
}

// LoadProfile returns the saved profile, or the default profile before the
// first save.
func (m *Memory) LoadProfile(ctx context.Context) (engine.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.hasProfile {
		return engine.DefaultProfile(), nil
	}
	return m.profile, nil
}

// SaveProfile stores the profile.
func (m *Memory) SaveProfile(ctx context.Context, p engine.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = p
	m.hasProfile = true
	return nil
}

// LoadAnswers returns the saved answers, or the neutral sheet before the
// first save.
func (m *Memory) LoadAnswers(ctx context.Context) (engine.AssessmentAnswers, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.hasAnswers {
		return engine.DefaultAnswers(), nil
	}
	return m.answers.Clone(), nil
}

// SaveAnswers stores a copy of the answers.
func (m *Memory) SaveAnswers(ctx context.Context, a engine.AssessmentAnswers) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.answers = a.Clone()
	m.hasAnswers = true
	return nil
}

// VO2History returns all samples ordered by day ascending.
func (m *Memory) VO2History(ctx context.Context) ([]VO2Sample, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	samples := make([]VO2Sample, 0, len(m.vo2))
	for day, value := range m.vo2 {
		samples = append(samples, VO2Sample{Day: day, Value: value})
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].Day < samples[j].Day })
	return samples, nil
}

// AppendVO2 records value for day if the day has no sample yet. The check
// and the write happen under one lock, keeping the append atomic.
func (m *Memory) AppendVO2(ctx context.Context, day string, value float64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.vo2[day]; exists {
		return false, nil
	}
	m.vo2[day] = value
	return true, nil
}

// Close is a no-op for the in-memory backend.
func (m *Memory) Close() error { return nil }
