package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gruntled/assessment-backend/internal/metrics"
	"github.com/gruntled/assessment-backend/internal/scoring"
	"github.com/gruntled/assessment-backend/internal/storage/models"
)

var (
	// ErrStorageUnavailable wraps any failure to reach the durable medium.
	// Callers surface it as a retryable condition.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrNotFound is reported when a delete targets a record that no
	// longer exists.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidRecordID is reported for IDs that are not bare JSON
	// filenames produced by this store.
	ErrInvalidRecordID = errors.New("invalid record id")
)

// Store persists one JSON document per completed assessment in a flat
// directory. Concurrent saves of distinct records do not interfere: every
// record gets a collision-resistant name and is written via temp file plus
// rename, so a reader sees each file fully written or not at all.
type Store struct {
	dir    string
	logger *zap.Logger
}

func New(dir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{dir: dir, logger: logger}
}

// Save writes the record and returns its record ID. The data directory is
// created if absent.
func (s *Store) Save(record models.AssessmentRecord) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create data dir: %v", ErrStorageUnavailable, err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}

	id := recordID(record)

	tmp, err := os.CreateTemp(s.dir, ".assessment-*.tmp")
	if err != nil {
		return "", fmt.Errorf("%w: create temp file: %v", ErrStorageUnavailable, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("%w: write record: %v", ErrStorageUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("%w: close record: %v", ErrStorageUnavailable, err)
	}

	if err := os.Rename(tmpName, filepath.Join(s.dir, id)); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("%w: publish record: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("Assessment saved",
		zap.String("record_id", id),
		zap.String("coachee_email", record.CoacheeEmail),
	)
	metrics.AssessmentsSaved.Inc()

	return id, nil
}

// LoadAll reads every persisted record. Units that fail to parse are logged
// and skipped so one corrupt file cannot hide the rest. No ordering is
// guaranteed; callers sort.
func (s *Store) LoadAll() ([]models.StoredAssessment, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: read data dir: %v", ErrStorageUnavailable, err)
	}

	var records []models.StoredAssessment
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			s.logger.Warn("Skipping unreadable record",
				zap.String("record_id", name),
				zap.Error(err),
			)
			metrics.MalformedRecordsSkipped.Inc()
			continue
		}

		var record models.AssessmentRecord
		if err := json.Unmarshal(data, &record); err != nil {
			s.logger.Warn("Skipping malformed record",
				zap.String("record_id", name),
				zap.Error(err),
			)
			metrics.MalformedRecordsSkipped.Inc()
			continue
		}

		normalize(&record)
		records = append(records, models.StoredAssessment{
			ID:               name,
			AssessmentRecord: record,
		})
	}

	return records, nil
}

// Delete removes one record. Deleting an ID that no longer exists reports
// ErrNotFound; a repeated delete is therefore a reported NotFound, not a
// crash.
func (s *Store) Delete(recordID string) error {
	if !validRecordID(recordID) {
		return fmt.Errorf("%w: %q", ErrInvalidRecordID, recordID)
	}

	err := os.Remove(filepath.Join(s.dir, recordID))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: delete record: %v", ErrStorageUnavailable, err)
	}

	s.logger.Info("Assessment deleted", zap.String("record_id", recordID))
	metrics.AssessmentsDeleted.Inc()
	return nil
}

// normalize backfills fields that older records may lack.
func normalize(record *models.AssessmentRecord) {
	if record.AssessmentStart == "" {
		record.AssessmentStart = models.SentinelStart
	}
	if record.Scores == nil {
		record.Scores = scoring.ScoreMap{}
	}
	if record.DimensionScores == nil {
		record.DimensionScores = scoring.DimensionTotals(record.Scores)
	}
}

// recordID derives a collision-resistant filename from the coachee identity
// and completion time. The uuid fragment separates two respondents
// completing within the same second.
func recordID(record models.AssessmentRecord) string {
	completed := record.CompletionTime
	ts := time.Now().UTC()
	if t, err := time.Parse(time.RFC3339, completed); err == nil {
		ts = t.UTC()
	}
	return fmt.Sprintf("assessment_%s_%s_%s.json",
		sanitize(record.CoacheeEmail),
		ts.Format("20060102_150405"),
		uuid.NewString()[:8],
	)
}

// sanitize keeps record IDs safe as bare filenames.
func sanitize(input string) string {
	var b strings.Builder
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_', r == '@':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "unknown"
	}
	return b.String()
}

// validRecordID rejects anything that could escape the data directory.
func validRecordID(id string) bool {
	if id == "" || !strings.HasSuffix(id, ".json") {
		return false
	}
	if strings.ContainsAny(id, "/\\") || id != filepath.Base(id) {
		return false
	}
	return true
}
