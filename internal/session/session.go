// Package session owns the live profile and assessment state. It is the one
// place that mutates persisted records, recomputes derived metrics, performs
// the once-per-day VO2max append, and fans the result out to observers. Store
// failures are logged and absorbed so a broken disk degrades the app to
// in-memory operation instead of failing requests.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"vitalis/internal/content"
	"vitalis/internal/engine"
	"vitalis/internal/store"
)

/* ─── Types ───────────────────────────────────────────────────────────── */

// Broadcaster receives the derived-metrics JSON after every recomputation.
// Implementations must not block; the session calls Push inline.
type Broadcaster interface {
	Push(payload []byte)
}

// Snapshot is the full observable state for one calendar day.
type Snapshot struct {
	Day     string                   `json:"day"`
	Profile engine.Profile           `json:"profile"`
	Answers engine.AssessmentAnswers `json:"answers"`
	Metrics engine.DerivedMetrics    `json:"metrics"`
	Content content.Selection        `json:"content"`
	History []store.VO2Sample        `json:"vo2_history"`
}

// Session serializes all reads and writes of the single owner's state.
type Session struct {
	repo store.Repository
	pub  Broadcaster
	log  *zap.Logger
	now  func() time.Time

	mu      sync.Mutex
	profile engine.Profile
	answers engine.AssessmentAnswers
}

// New loads the persisted profile and answers and returns a ready session.
// Load failures fall back to defaults so the app still starts; pub may be
// nil when broadcasting is disabled.
func New(ctx context.Context, repo store.Repository, pub Broadcaster, log *zap.Logger) *Session {
	s := &Session{repo: repo, pub: pub, log: log, now: time.Now}

	p, err := repo.LoadProfile(ctx)
	if err != nil {
		log.Warn("load profile failed, starting from defaults", zap.Error(err))
		p = engine.DefaultProfile()
	}
	a, err := repo.LoadAnswers(ctx)
	if err != nil {
		log.Warn("load answers failed, starting from defaults", zap.Error(err))
		a = engine.DefaultAnswers()
	}
	s.profile = p
	s.answers = a
	return s
}

/* ─── Observation ─────────────────────────────────────────────────────── */

// Snapshot recomputes every derived metric from the current state, appends
// today's VO2max estimate to the time series if the day has none yet, and
// broadcasts the metrics. It never fails; store errors degrade to an empty
// history.
func (s *Session) Snapshot(ctx context.Context) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(ctx)
}

// snapshotLocked is the recomputation path shared by Snapshot and the edit
// operations. Callers must hold s.mu.
func (s *Session) snapshotLocked(ctx context.Context) Snapshot {
	day := s.now().Format("2006-01-02")
	metrics := engine.ComputeDerivedMetrics(s.profile, s.answers)
	selection := content.Select(s.answers, s.profile.Name, day)

	if v, ok := metrics.PreferredVO2(); ok {
		created, err := s.repo.AppendVO2(ctx, day, v)
		if err != nil {
			s.log.Warn("vo2 append failed", zap.String("day", day), zap.Error(err))
		} else if created {
			s.log.Info("vo2 sample recorded", zap.String("day", day), zap.Float64("value", v))
		}
	}

	history, err := s.repo.VO2History(ctx)
	if err != nil {
		s.log.Warn("vo2 history read failed", zap.Error(err))
		history = []store.VO2Sample{}
	}

	s.broadcast(metrics)

	return Snapshot{
		Day:     day,
		Profile: s.profile,
		Answers: s.answers.Clone(),
		Metrics: metrics,
		Content: selection,
		History: history,
	}
}

// broadcast pushes the metrics JSON to the configured broadcaster, if any.
func (s *Session) broadcast(metrics engine.DerivedMetrics) {
	if s.pub == nil {
		return
	}
	payload, err := json.Marshal(metrics)
	if err != nil {
		s.log.Warn("metrics marshal failed", zap.Error(err))
		return
	}
	s.pub.Push(payload)
}

/* ─── Edits ───────────────────────────────────────────────────────────── */

// UpdateProfile applies the provided patch fields, persists the profile, and
// returns the recomputed snapshot. Enum fields are validated before anything
// changes; a save failure after a valid edit is logged, not returned, so the
// edit stays live in memory.
func (s *Session) UpdateProfile(ctx context.Context, patch ProfilePatch) (Snapshot, error) {
	if err := patch.validate(); err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	patch.apply(&s.profile)
	if err := s.repo.SaveProfile(ctx, s.profile); err != nil {
		s.log.Warn("save profile failed", zap.Error(err))
	}
	return s.snapshotLocked(ctx), nil
}

// SetAnswer records one assessment answer and returns the recomputed
// snapshot. The domain must be one of the 21 fixed keys and the score must
// lie in [1,5].
func (s *Session) SetAnswer(ctx context.Context, domain string, score int) (Snapshot, error) {
	if !engine.IsDomain(domain) {
		return Snapshot{}, fmt.Errorf("unknown assessment domain %q", domain)
	}
	if score < engine.MinScore || score > engine.MaxScore {
		return Snapshot{}, fmt.Errorf("score %d out of range [%d,%d]", score, engine.MinScore, engine.MaxScore)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.answers[domain] = score
	if err := s.repo.SaveAnswers(ctx, s.answers); err != nil {
		s.log.Warn("save answers failed", zap.Error(err))
	}
	return s.snapshotLocked(ctx), nil
}

/* ─── Plain reads ─────────────────────────────────────────────────────── */

// Profile returns a copy of the current profile without recomputing.
func (s *Session) Profile() engine.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Answers returns a copy of the current assessment answers without
// recomputing.
func (s *Session) Answers() engine.AssessmentAnswers {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answers.Clone()
}

// History returns the VO2 time series oldest first. A store failure degrades
// to an empty series.
func (s *Session) History(ctx context.Context) []store.VO2Sample {
	samples, err := s.repo.VO2History(ctx)
	if err != nil {
		s.log.Warn("vo2 history read failed", zap.Error(err))
		return []store.VO2Sample{}
	}
	return samples
}
