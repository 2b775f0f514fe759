package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SessionsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "assessment_sessions_started_total",
			Help: "Total respondent sessions begun",
		},
	)

	IntakesSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "assessment_intakes_submitted_total",
			Help: "Total coachee intake forms accepted",
		},
	)

	AnswersRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "assessment_answers_recorded_total",
			Help: "Total statement ratings recorded",
		},
	)

	AssessmentsCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_completions_total",
			Help: "Total assessment completions by outcome",
		},
		[]string{"status"},
	)

	AssessmentsSaved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "assessment_records_saved_total",
			Help: "Total assessment records written to storage",
		},
	)

	AssessmentsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "assessment_records_deleted_total",
			Help: "Total assessment records removed by a coach",
		},
	)

	MalformedRecordsSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "assessment_malformed_records_skipped_total",
			Help: "Total stored units skipped because they failed to parse",
		},
	)

	SaveDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "assessment_save_duration_seconds",
			Help:    "Record save duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	ReportsExported = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_reports_exported_total",
			Help: "Total report exports by format",
		},
		[]string{"format"},
	)

	SessionsExpired = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "assessment_sessions_expired_total",
			Help: "Total idle sessions evicted before completion",
		},
	)

	CoachRequestsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_coach_requests_rejected_total",
			Help: "Total coach endpoint rejections",
		},
		[]string{"reason"},
	)
)

func Init() {
	prometheus.MustRegister(SessionsStarted)
	prometheus.MustRegister(IntakesSubmitted)
	prometheus.MustRegister(AnswersRecorded)
	prometheus.MustRegister(AssessmentsCompleted)
	prometheus.MustRegister(AssessmentsSaved)
	prometheus.MustRegister(AssessmentsDeleted)
	prometheus.MustRegister(MalformedRecordsSkipped)
	prometheus.MustRegister(SaveDuration)
	prometheus.MustRegister(ReportsExported)
	prometheus.MustRegister(SessionsExpired)
	prometheus.MustRegister(CoachRequestsRejected)
}

func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
