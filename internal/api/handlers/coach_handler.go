package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/gruntled/assessment-backend/internal/metrics"
	"github.com/gruntled/assessment-backend/internal/report"
	"github.com/gruntled/assessment-backend/internal/scoring"
	"github.com/gruntled/assessment-backend/internal/storage/jsonstore"
	"github.com/gruntled/assessment-backend/internal/storage/models"
	"github.com/gruntled/assessment-backend/pkg/logger"
)

// CoachHandler serves the reviewer flow: listing stored assessments, the
// scored detail view, deletion with a two-step confirm, and report export.
type CoachHandler struct {
	store *jsonstore.Store
}

func NewCoachHandler(store *jsonstore.Store) *CoachHandler {
	return &CoachHandler{store: store}
}

// List returns all stored assessments newest-first. The store makes no
// ordering guarantee, so the sort happens here, on assessment_start.
func (h *CoachHandler) List(c *fiber.Ctx) error {
	records, err := h.store.LoadAll()
	if err != nil {
		logger.Error("Failed to load assessments", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Could not read stored assessments",
		})
	}

	// ISO-8601 strings sort chronologically as text; records missing a
	// start date carry the sentinel epoch and land last.
	sort.Slice(records, func(i, j int) bool {
		return records[i].AssessmentStart > records[j].AssessmentStart
	})

	items := make([]fiber.Map, 0, len(records))
	for _, r := range records {
		items = append(items, fiber.Map{
			"id":               r.ID,
			"coachee_name":     r.CoacheeName,
			"coachee_email":    r.CoacheeEmail,
			"assessment_start": r.AssessmentStart,
			"completion_time":  r.CompletionTime,
			"dimension_scores": r.DimensionScores,
		})
	}

	return c.JSON(fiber.Map{
		"assessments": items,
		"count":       len(items),
	})
}

func (h *CoachHandler) Get(c *fiber.Ctx) error {
	record, err := h.find(c.Params("id"))
	if err != nil {
		return respondCoachError(c, err)
	}

	return c.JSON(fiber.Map{
		"assessment": record,
		"summaries":  scoring.Summaries(record.Scores),
	})
}

// Delete implements the two-step confirm: without confirm=true nothing is
// removed and the response asks for confirmation; cancelling is simply not
// confirming.
func (h *CoachHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if c.Query("confirm") != "true" {
		if _, err := h.find(id); err != nil {
			return respondCoachError(c, err)
		}
		return c.JSON(fiber.Map{
			"record_id":            id,
			"pending_confirmation": true,
			"message":              "Repeat the request with confirm=true to delete this assessment.",
		})
	}

	if err := h.store.Delete(id); err != nil {
		return respondCoachError(c, err)
	}

	return c.JSON(fiber.Map{
		"record_id": id,
		"deleted":   true,
	})
}

func (h *CoachHandler) ExportPDF(c *fiber.Ctx) error {
	record, err := h.find(c.Params("id"))
	if err != nil {
		return respondCoachError(c, err)
	}

	var buf bytes.Buffer
	if err := report.PDF(&buf, record, scoring.Summaries(record.Scores)); err != nil {
		logger.Error("Failed to render PDF report",
			zap.String("record_id", record.ID),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not render report",
		})
	}

	metrics.ReportsExported.WithLabelValues("pdf").Inc()

	name := record.CoacheeName
	if name == "" {
		name = "Unknown"
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", name+"_assessment.pdf"))
	return c.Send(buf.Bytes())
}

func (h *CoachHandler) Chart(c *fiber.Ctx) error {
	record, err := h.find(c.Params("id"))
	if err != nil {
		return respondCoachError(c, err)
	}

	var buf bytes.Buffer
	if err := report.RadarChart(&buf, record); err != nil {
		logger.Error("Failed to render radar chart",
			zap.String("record_id", record.ID),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not render chart",
		})
	}

	metrics.ReportsExported.WithLabelValues("chart").Inc()

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

func (h *CoachHandler) find(id string) (models.StoredAssessment, error) {
	records, err := h.store.LoadAll()
	if err != nil {
		return models.StoredAssessment{}, err
	}
	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}
	return models.StoredAssessment{}, jsonstore.ErrNotFound
}

func respondCoachError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, jsonstore.ErrNotFound), errors.Is(err, jsonstore.ErrInvalidRecordID):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Assessment not found",
		})
	case errors.Is(err, jsonstore.ErrStorageUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":     "Storage unavailable",
			"retryable": true,
		})
	default:
		logger.Error("Unhandled coach error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
