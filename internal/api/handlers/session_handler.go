package handlers

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/gruntled/assessment-backend/internal/catalog"
	"github.com/gruntled/assessment-backend/internal/metrics"
	"github.com/gruntled/assessment-backend/internal/report"
	"github.com/gruntled/assessment-backend/internal/scoring"
	"github.com/gruntled/assessment-backend/internal/session"
	"github.com/gruntled/assessment-backend/internal/storage/jsonstore"
	"github.com/gruntled/assessment-backend/pkg/logger"
)

// SessionHandler drives the respondent flow: welcome, intake, questionnaire
// and completion. Every operation is a discrete user action against the
// session state machine.
type SessionHandler struct {
	sessions *session.Manager
}

func NewSessionHandler(sessions *session.Manager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

func (h *SessionHandler) Begin(c *fiber.Ctx) error {
	view := h.sessions.Begin()
	return c.Status(fiber.StatusCreated).JSON(view)
}

func (h *SessionHandler) Get(c *fiber.Ctx) error {
	view, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (h *SessionHandler) OpenIntake(c *fiber.Ctx) error {
	view, err := h.sessions.OpenIntake(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"session":         view,
		"required_fields": []string{"name", "email"},
		"optional_fields": []string{"phone"},
	})
}

func (h *SessionHandler) SubmitIntake(c *fiber.Ctx) error {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse intake body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	view, err := h.sessions.SubmitIntake(c.Params("id"), req.Name, req.Email, req.Phone)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

func (h *SessionHandler) Questions(c *fiber.Ctx) error {
	questions, err := h.sessions.Questions(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"questions":    questions,
		"rating_scale": catalog.RatingScale,
	})
}

func (h *SessionHandler) Answer(c *fiber.Ctx) error {
	var req struct {
		DimensionKey string `json:"dimension_key"`
		StatementKey string `json:"statement_key"`
		Rating       int    `json:"rating"`
	}
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse answer body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	view, err := h.sessions.RecordAnswer(c.Params("id"), req.DimensionKey, req.StatementKey, req.Rating)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// Complete persists the assessment and responds with the scored summary for
// the completion page. A save failure leaves the session intact and is
// reported as retryable.
func (h *SessionHandler) Complete(c *fiber.Ctx) error {
	stored, err := h.sessions.Complete(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"record_id":        stored.ID,
		"completion_time":  stored.CompletionTime,
		"dimension_scores": stored.DimensionScores,
		"summaries":        scoring.Summaries(stored.Scores),
	})
}

// Chart renders the respondent's own radar chart once the assessment is
// complete, the same rendering the coach view uses.
func (h *SessionHandler) Chart(c *fiber.Ctx) error {
	stored, err := h.sessions.CompletedRecord(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	var buf bytes.Buffer
	if err := report.RadarChart(&buf, stored); err != nil {
		logger.Error("Failed to render radar chart",
			zap.String("session_id", c.Params("id")),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to render chart",
		})
	}

	metrics.ReportsExported.WithLabelValues("chart").Inc()
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	case errors.Is(err, session.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, session.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, jsonstore.ErrStorageUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":     "Could not save your assessment. Your answers are kept; please try again.",
			"retryable": true,
		})
	default:
		logger.Error("Unhandled session error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
