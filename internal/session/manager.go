package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gruntled/assessment-backend/internal/catalog"
	"github.com/gruntled/assessment-backend/internal/metrics"
	"github.com/gruntled/assessment-backend/internal/scoring"
	"github.com/gruntled/assessment-backend/internal/sequence"
	"github.com/gruntled/assessment-backend/internal/storage/jsonstore"
	"github.com/gruntled/assessment-backend/internal/storage/models"
	"github.com/gruntled/assessment-backend/pkg/retry"
)

type State string

const (
	StateWelcome    State = "welcome"
	StateIntake     State = "intake"
	StateInProgress State = "in_progress"
	StateComplete   State = "complete"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid state transition")
)

// Session is the per-respondent context: intake data, the fixed question
// sequence, accumulated scores and the current flow state. It replaces the
// original's global mutable session state and is never shared across
// respondents.
type Session struct {
	ID              string
	State           State
	CoacheeName     string
	CoacheeEmail    string
	CoacheePhone    string
	AssessmentStart time.Time
	Questions       sequence.Sequence
	Scores          scoring.ScoreMap
	RecordID        string
	CompletedAt     time.Time
	saving          bool
	lastActive      time.Time
}

// View is the serializable snapshot handlers return to the UI.
type View struct {
	ID              string `json:"id"`
	State           State  `json:"state"`
	Answered        int    `json:"answered"`
	TotalQuestions  int    `json:"total_questions"`
	CoacheeName     string `json:"coachee_name,omitempty"`
	CoacheeEmail    string `json:"coachee_email,omitempty"`
	AssessmentStart string `json:"assessment_start,omitempty"`
	RecordID        string `json:"record_id,omitempty"`
}

type Config struct {
	IdleTTL time.Duration
	Logger  *zap.Logger

	// NewRand supplies the shuffle source for a new session. Tests inject a
	// seeded source; production leaves it nil for a time-seeded one.
	NewRand func() *rand.Rand
}

// Manager owns all live sessions. One respondent drives one session, so a
// single lock over the map and its sessions is sufficient.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	store   *jsonstore.Store
	logger  *zap.Logger
	idleTTL time.Duration
	newRand func() *rand.Rand

	janitor *time.Ticker
	done    chan struct{}
}

func NewManager(store *jsonstore.Store, cfg Config) *Manager {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.IdleTTL == 0 {
		cfg.IdleTTL = 2 * time.Hour
	}
	if cfg.NewRand == nil {
		cfg.NewRand = func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}

	m := &Manager{
		sessions: make(map[string]*Session),
		store:    store,
		logger:   cfg.Logger,
		idleTTL:  cfg.IdleTTL,
		newRand:  cfg.NewRand,
		janitor:  time.NewTicker(time.Minute),
		done:     make(chan struct{}),
	}
	go m.evictIdle()

	return m
}

func (m *Manager) Close() {
	m.janitor.Stop()
	close(m.done)
}

// Begin creates a session in the welcome state.
func (m *Manager) Begin() View {
	s := &Session{
		ID:         uuid.NewString(),
		State:      StateWelcome,
		Scores:     make(scoring.ScoreMap),
		lastActive: time.Now(),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	metrics.SessionsStarted.Inc()
	m.logger.Info("Session started", zap.String("session_id", s.ID))

	return m.view(s)
}

func (m *Manager) Get(id string) (View, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return View{}, ErrSessionNotFound
	}
	return m.view(s), nil
}

// OpenIntake moves a fresh session onto the intake form. Always available
// from welcome; reloading the form is a no-op.
func (m *Manager) OpenIntake(id string) (View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return View{}, ErrSessionNotFound
	}
	if s.State != StateWelcome && s.State != StateIntake {
		return View{}, fmt.Errorf("%w: cannot open intake from %s", ErrInvalidTransition, s.State)
	}

	s.State = StateIntake
	s.lastActive = time.Now()
	return m.view(s), nil
}

// SubmitIntake validates the coachee's details, records the assessment start
// time and generates the question sequence exactly once.
func (m *Manager) SubmitIntake(id, name, email, phone string) (View, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return View{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if email == "" {
		return View{}, fmt.Errorf("%w: email is required", ErrValidation)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return View{}, ErrSessionNotFound
	}
	if s.State != StateWelcome && s.State != StateIntake {
		return View{}, fmt.Errorf("%w: intake already submitted", ErrInvalidTransition)
	}

	s.CoacheeName = name
	s.CoacheeEmail = email
	s.CoacheePhone = phone
	s.AssessmentStart = time.Now().UTC()
	s.Questions = sequence.Generate(m.newRand())
	s.State = StateInProgress
	s.lastActive = time.Now()

	metrics.IntakesSubmitted.Inc()
	m.logger.Info("Intake submitted",
		zap.String("session_id", s.ID),
		zap.String("coachee_email", email),
	)

	return m.view(s), nil
}

// Questions returns the session's fixed sequence.
func (m *Manager) Questions(id string) (sequence.Sequence, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.State != StateInProgress {
		return nil, fmt.Errorf("%w: questions available only in progress", ErrInvalidTransition)
	}
	return s.Questions, nil
}

// RecordAnswer stores one rating. Re-answering overwrites the prior rating;
// last write wins, no history kept.
func (m *Manager) RecordAnswer(id, dimensionKey, statementKey string, rating int) (View, error) {
	if rating < catalog.MinRating || rating > catalog.MaxRating {
		return View{}, fmt.Errorf("%w: rating must be between %d and %d",
			ErrValidation, catalog.MinRating, catalog.MaxRating)
	}
	if !catalog.HasStatement(dimensionKey, statementKey) {
		return View{}, fmt.Errorf("%w: unknown statement %s/%s",
			ErrValidation, dimensionKey, statementKey)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return View{}, ErrSessionNotFound
	}
	if s.State != StateInProgress {
		return View{}, fmt.Errorf("%w: answers accepted only in progress", ErrInvalidTransition)
	}

	if s.Scores[dimensionKey] == nil {
		s.Scores[dimensionKey] = make(map[string]int)
	}
	s.Scores[dimensionKey][statementKey] = rating
	s.lastActive = time.Now()

	metrics.AnswersRecorded.Inc()
	return m.view(s), nil
}

// Complete builds the assessment record and persists it. Completion is
// allowed with unanswered questions; unanswered dimensions simply total low.
// A failed save keeps the session in progress so no answers are lost and the
// respondent can retry. The save itself runs outside the manager lock so a
// slow or failing disk does not stall other sessions.
func (m *Manager) Complete(ctx context.Context, id string) (models.StoredAssessment, error) {
	m.mu.Lock()

	s, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return models.StoredAssessment{}, ErrSessionNotFound
	}
	if s.State == StateComplete {
		m.mu.Unlock()
		return models.StoredAssessment{}, fmt.Errorf("%w: session already complete", ErrInvalidTransition)
	}
	if s.State != StateInProgress {
		m.mu.Unlock()
		return models.StoredAssessment{}, fmt.Errorf("%w: nothing to complete", ErrInvalidTransition)
	}
	if s.saving {
		m.mu.Unlock()
		return models.StoredAssessment{}, fmt.Errorf("%w: completion already in progress", ErrInvalidTransition)
	}
	s.saving = true

	completedAt := time.Now().UTC()
	record := models.AssessmentRecord{
		CoacheeName:     s.CoacheeName,
		CoacheeEmail:    s.CoacheeEmail,
		CoacheePhone:    s.CoacheePhone,
		AssessmentStart: s.AssessmentStart.Format(time.RFC3339),
		CompletionTime:  completedAt.Format(time.RFC3339),
		Scores:          copyScores(s.Scores),
		DimensionScores: scoring.DimensionTotals(s.Scores),
	}
	m.mu.Unlock()

	start := time.Now()
	recordID, err := retry.DoWithResult(ctx, retry.Config{
		MaxAttempts:     3,
		InitialDelay:    50 * time.Millisecond,
		RetryableErrors: []error{jsonstore.ErrStorageUnavailable},
		Logger:          m.logger,
	}, func() (string, error) {
		return m.store.Save(record)
	})
	metrics.SaveDuration.Observe(time.Since(start).Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()

	// The session may have been evicted while the save was in flight; the
	// record outcome stands either way.
	s, ok = m.sessions[id]
	if ok {
		s.saving = false
	}

	if err != nil {
		metrics.AssessmentsCompleted.WithLabelValues("save_failed").Inc()
		m.logger.Error("Failed to save assessment",
			zap.String("session_id", id),
			zap.Error(err),
		)
		return models.StoredAssessment{}, err
	}

	if ok && s.State == StateInProgress {
		s.State = StateComplete
		s.RecordID = recordID
		s.CompletedAt = completedAt
		s.lastActive = time.Now()
	}

	metrics.AssessmentsCompleted.WithLabelValues("saved").Inc()
	m.logger.Info("Assessment completed",
		zap.String("session_id", id),
		zap.String("record_id", recordID),
	)

	return models.StoredAssessment{ID: recordID, AssessmentRecord: record}, nil
}

// CompletedRecord rebuilds the persisted record view for a finished session,
// used by the respondent's own chart and summary endpoints.
func (m *Manager) CompletedRecord(id string) (models.StoredAssessment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return models.StoredAssessment{}, ErrSessionNotFound
	}
	if s.State != StateComplete {
		return models.StoredAssessment{}, fmt.Errorf("%w: results available once complete", ErrInvalidTransition)
	}

	return models.StoredAssessment{
		ID: s.RecordID,
		AssessmentRecord: models.AssessmentRecord{
			CoacheeName:     s.CoacheeName,
			CoacheeEmail:    s.CoacheeEmail,
			CoacheePhone:    s.CoacheePhone,
			AssessmentStart: s.AssessmentStart.Format(time.RFC3339),
			CompletionTime:  s.CompletedAt.Format(time.RFC3339),
			Scores:          copyScores(s.Scores),
			DimensionScores: scoring.DimensionTotals(s.Scores),
		},
	}, nil
}

func copyScores(scores scoring.ScoreMap) scoring.ScoreMap {
	out := make(scoring.ScoreMap, len(scores))
	for dim, ratings := range scores {
		inner := make(map[string]int, len(ratings))
		for stmt, rating := range ratings {
			inner[stmt] = rating
		}
		out[dim] = inner
	}
	return out
}

func (m *Manager) view(s *Session) View {
	answered := 0
	for _, ratings := range s.Scores {
		answered += len(ratings)
	}

	v := View{
		ID:             s.ID,
		State:          s.State,
		Answered:       answered,
		TotalQuestions: sequence.Len(),
		CoacheeName:    s.CoacheeName,
		CoacheeEmail:   s.CoacheeEmail,
		RecordID:       s.RecordID,
	}
	if !s.AssessmentStart.IsZero() {
		v.AssessmentStart = s.AssessmentStart.Format(time.RFC3339)
	}
	return v
}

// evictIdle drops sessions idle past the TTL, in the manner of a token
// bucket cleanup. Persisted records are unaffected.
func (m *Manager) evictIdle() {
	for {
		select {
		case <-m.done:
			return
		case <-m.janitor.C:
			cutoff := time.Now().Add(-m.idleTTL)

			m.mu.Lock()
			for id, s := range m.sessions {
				if s.lastActive.Before(cutoff) {
					delete(m.sessions, id)
					if s.State != StateComplete {
						metrics.SessionsExpired.Inc()
						m.logger.Warn("Idle session evicted",
							zap.String("session_id", id),
							zap.String("state", string(s.State)),
						)
					}
				}
			}
			m.mu.Unlock()
		}
	}
}
