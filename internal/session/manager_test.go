package session

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gruntled/assessment-backend/internal/catalog"
	"github.com/gruntled/assessment-backend/internal/storage/jsonstore"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	store := jsonstore.New(t.TempDir(), nil)
	m := NewManager(store, Config{
		NewRand: func() *rand.Rand { return rand.New(rand.NewSource(1)) },
	})
	t.Cleanup(m.Close)
	return m
}

func startedSession(t *testing.T, m *Manager) string {
	t.Helper()
	v := m.Begin()
	_, err := m.OpenIntake(v.ID)
	require.NoError(t, err)
	_, err = m.SubmitIntake(v.ID, "Jane Doe", "jane@example.com", "")
	require.NoError(t, err)
	return v.ID
}

func TestBegin(t *testing.T) {
	m := newTestManager(t)

	v := m.Begin()
	assert.NotEmpty(t, v.ID)
	assert.Equal(t, StateWelcome, v.State)
	assert.Equal(t, 0, v.Answered)
	assert.Equal(t, 48, v.TotalQuestions)
}

func TestGetUnknownSession(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestIntakeValidation(t *testing.T) {
	m := newTestManager(t)

	cases := []struct {
		name, email string
	}{
		{"", "jane@example.com"},
		{"Jane Doe", ""},
		{"   ", "jane@example.com"},
		{"Jane Doe", "   "},
		{"", ""},
	}

	for _, tc := range cases {
		v := m.Begin()
		_, err := m.SubmitIntake(v.ID, tc.name, tc.email, "")
		assert.ErrorIs(t, err, ErrValidation, "name=%q email=%q", tc.name, tc.email)

		// Failed validation leaves the session where it was.
		got, gerr := m.Get(v.ID)
		require.NoError(t, gerr)
		assert.Equal(t, StateWelcome, got.State)
	}
}

func TestIntakeStartsAssessment(t *testing.T) {
	m := newTestManager(t)
	id := startedSession(t, m)

	v, err := m.Get(id)
	require.NoError(t, err)
	assert.Equal(t, StateInProgress, v.State)
	assert.Equal(t, "Jane Doe", v.CoacheeName)
	assert.NotEmpty(t, v.AssessmentStart)

	questions, err := m.Questions(id)
	require.NoError(t, err)
	assert.Len(t, questions, 48)
}

func TestQuestionSequenceIsStableForSession(t *testing.T) {
	m := newTestManager(t)
	id := startedSession(t, m)

	first, err := m.Questions(id)
	require.NoError(t, err)
	second, err := m.Questions(id)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestIntakeCannotBeResubmitted(t *testing.T) {
	m := newTestManager(t)
	id := startedSession(t, m)

	_, err := m.SubmitIntake(id, "Other Name", "other@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRecordAnswerValidation(t *testing.T) {
	m := newTestManager(t)
	id := startedSession(t, m)

	_, err := m.RecordAnswer(id, "purpose_vision", "vision", 0)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = m.RecordAnswer(id, "purpose_vision", "vision", 11)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = m.RecordAnswer(id, "purpose_vision", "no_such_statement", 5)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = m.RecordAnswer(id, "no_such_dimension", "vision", 5)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRecordAnswerLastWriteWins(t *testing.T) {
	m := newTestManager(t)
	id := startedSession(t, m)

	v, err := m.RecordAnswer(id, "purpose_vision", "vision", 3)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Answered)

	v, err = m.RecordAnswer(id, "purpose_vision", "vision", 9)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Answered, "re-answering must not grow the count")

	stored, err := m.Complete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 9, stored.Scores["purpose_vision"]["vision"])
}

func TestRecordAnswerRequiresInProgress(t *testing.T) {
	m := newTestManager(t)
	v := m.Begin()

	_, err := m.RecordAnswer(v.ID, "purpose_vision", "vision", 5)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCompleteFullAssessment(t *testing.T) {
	m := newTestManager(t)
	id := startedSession(t, m)

	questions, err := m.Questions(id)
	require.NoError(t, err)
	for _, q := range questions {
		rating := 1
		if q.DimensionKey == "purpose_vision" {
			rating = 10
		}
		_, err := m.RecordAnswer(id, q.DimensionKey, q.StatementKey, rating)
		require.NoError(t, err)
	}

	stored, err := m.Complete(context.Background(), id)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "Jane Doe", stored.CoacheeName)
	assert.Equal(t, 60, stored.DimensionScores["purpose_vision"])
	for _, d := range catalog.AllDimensions() {
		if d.Key != "purpose_vision" {
			assert.Equal(t, 6, stored.DimensionScores[d.Key], "dimension %q", d.Key)
		}
	}

	v, err := m.Get(id)
	require.NoError(t, err)
	assert.Equal(t, StateComplete, v.State)
	assert.Equal(t, stored.ID, v.RecordID)
}

func TestEarlyCompletionIsAllowed(t *testing.T) {
	m := newTestManager(t)
	id := startedSession(t, m)

	_, err := m.RecordAnswer(id, "team_leadership", "collaboration", 7)
	require.NoError(t, err)

	stored, err := m.Complete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 7, stored.DimensionScores["team_leadership"])
	assert.Equal(t, 0, stored.DimensionScores["purpose_vision"])
}

func TestCompleteTwice(t *testing.T) {
	m := newTestManager(t)
	id := startedSession(t, m)

	_, err := m.Complete(context.Background(), id)
	require.NoError(t, err)
	_, err = m.Complete(context.Background(), id)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCompleteBeforeIntake(t *testing.T) {
	m := newTestManager(t)
	v := m.Begin()

	_, err := m.Complete(context.Background(), v.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSaveFailurePreservesSession(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	parent := t.TempDir()
	require.NoError(t, os.Chmod(parent, 0o500))
	t.Cleanup(func() { os.Chmod(parent, 0o755) })

	store := jsonstore.New(filepath.Join(parent, "data"), nil)
	m := NewManager(store, Config{
		NewRand: func() *rand.Rand { return rand.New(rand.NewSource(1)) },
	})
	t.Cleanup(m.Close)

	v := m.Begin()
	_, err := m.SubmitIntake(v.ID, "Jane Doe", "jane@example.com", "")
	require.NoError(t, err)
	_, err = m.RecordAnswer(v.ID, "purpose_vision", "vision", 8)
	require.NoError(t, err)

	_, err = m.Complete(context.Background(), v.ID)
	require.ErrorIs(t, err, jsonstore.ErrStorageUnavailable)

	// The session stays in progress with its answers intact, so the
	// respondent can retry once storage recovers.
	got, err := m.Get(v.ID)
	require.NoError(t, err)
	assert.Equal(t, StateInProgress, got.State)
	assert.Equal(t, 1, got.Answered)

	require.NoError(t, os.Chmod(parent, 0o755))
	stored, err := m.Complete(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, stored.Scores["purpose_vision"]["vision"])
}

// failingStoreManager points a manager at a data dir that cannot be created,
// so every save fails and Complete spends its retry window in flight.
func failingStoreManager(t *testing.T) *Manager {
	t.Helper()
	if os.Getuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	parent := t.TempDir()
	require.NoError(t, os.Chmod(parent, 0o500))
	t.Cleanup(func() { os.Chmod(parent, 0o755) })

	store := jsonstore.New(filepath.Join(parent, "data"), nil)
	m := NewManager(store, Config{
		NewRand: func() *rand.Rand { return rand.New(rand.NewSource(1)) },
	})
	t.Cleanup(m.Close)
	return m
}

func TestCompleteDoesNotBlockOtherSessions(t *testing.T) {
	m := failingStoreManager(t)
	stalled := startedSession(t, m)
	other := startedSession(t, m)

	completeDone := make(chan error, 1)
	go func() {
		_, err := m.Complete(context.Background(), stalled)
		completeDone <- err
	}()

	// Land inside the first retry backoff so the save is still in flight.
	time.Sleep(20 * time.Millisecond)

	_, err := m.RecordAnswer(other, "purpose_vision", "vision", 5)
	require.NoError(t, err)

	select {
	case <-completeDone:
		t.Fatal("save finished before the other session was exercised")
	default:
	}

	assert.ErrorIs(t, <-completeDone, jsonstore.ErrStorageUnavailable)
}

func TestConcurrentCompleteIsRejected(t *testing.T) {
	m := failingStoreManager(t)
	id := startedSession(t, m)

	firstDone := make(chan error, 1)
	go func() {
		_, err := m.Complete(context.Background(), id)
		firstDone <- err
	}()

	time.Sleep(20 * time.Millisecond)

	_, err := m.Complete(context.Background(), id)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	assert.ErrorIs(t, <-firstDone, jsonstore.ErrStorageUnavailable)
}

func TestCompletedRecord(t *testing.T) {
	m := newTestManager(t)
	id := startedSession(t, m)

	_, err := m.CompletedRecord(id)
	assert.ErrorIs(t, err, ErrInvalidTransition, "results are gated on completion")

	_, err = m.RecordAnswer(id, "purpose_vision", "vision", 8)
	require.NoError(t, err)
	stored, err := m.Complete(context.Background(), id)
	require.NoError(t, err)

	got, err := m.CompletedRecord(id)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, "Jane Doe", got.CoacheeName)
	assert.Equal(t, stored.CompletionTime, got.CompletionTime)
	assert.Equal(t, 8, got.DimensionScores["purpose_vision"])

	_, err = m.CompletedRecord("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCompleteTimestampsAreISO(t *testing.T) {
	m := newTestManager(t)
	id := startedSession(t, m)

	stored, err := m.Complete(context.Background(), id)
	require.NoError(t, err)

	_, err = time.Parse(time.RFC3339, stored.AssessmentStart)
	assert.NoError(t, err)
	_, err = time.Parse(time.RFC3339, stored.CompletionTime)
	assert.NoError(t, err)
}
