package models

import "github.com/gruntled/assessment-backend/internal/scoring"

// SentinelStart is assigned to records persisted without an
// assessment_start so date sorting stays total.
const SentinelStart = "1970-01-01T00:00:00"

// AssessmentRecord is the persisted unit, one JSON document per completed
// assessment. Timestamps are ISO-8601 strings. DimensionScores may be absent
// on legacy records and is recomputed from Scores on load.
type AssessmentRecord struct {
	CoacheeName     string           `json:"coachee_name"`
	CoacheeEmail    string           `json:"coachee_email"`
	CoacheePhone    string           `json:"coachee_phone"`
	AssessmentStart string           `json:"assessment_start"`
	CompletionTime  string           `json:"completion_time,omitempty"`
	Scores          scoring.ScoreMap `json:"scores"`
	DimensionScores map[string]int   `json:"dimension_scores,omitempty"`
}

// StoredAssessment is a record as returned by the store, tagged with the
// record ID used for lookup and deletion.
type StoredAssessment struct {
	ID string `json:"id"`
	AssessmentRecord
}
