package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gruntled/assessment-backend/internal/session"
	"github.com/gruntled/assessment-backend/internal/storage/jsonstore"
	"github.com/gruntled/assessment-backend/pkg/config"
	appLogger "github.com/gruntled/assessment-backend/pkg/logger"
)

const testToken = "test_coach_token"

func TestMain(m *testing.M) {
	if err := appLogger.Init("error", "console", "stdout"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.ReadTimeout = 5
	cfg.Server.WriteTimeout = 5
	cfg.Server.BodyLimit = 1 << 20
	cfg.Coach.AccessToken = testToken
	cfg.Coach.MaxRequestsPerMinute = 1000

	store := jsonstore.New(t.TempDir(), nil)
	sessions := session.NewManager(store, session.Config{
		NewRand: func() *rand.Rand { return rand.New(rand.NewSource(1)) },
	})
	t.Cleanup(sessions.Close)

	return New(cfg, store, sessions)
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(data) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(data, &decoded))
	}
	return resp, decoded
}

func TestCoachTokenGate(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{
		"/api/v1/coach/assessments",
		"/api/v1/coach/assessments?coach=wrong_token",
		"/api/v1/coach/assessments?coach=",
	} {
		resp, _ := doJSON(t, app, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "path %s", path)
	}

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/coach/assessments?coach="+testToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 0, body["count"])
}

func TestRespondentFlowEndToEnd(t *testing.T) {
	app := newTestApp(t)

	// Begin a session.
	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	sessionID := body["id"].(string)
	require.NotEmpty(t, sessionID)
	assert.Equal(t, "welcome", body["state"])

	// Load the intake form.
	resp, _ = doJSON(t, app, http.MethodGet, "/api/v1/sessions/"+sessionID+"/intake", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Missing email is re-prompted, state unchanged.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/sessions/"+sessionID+"/intake",
		map[string]string{"name": "Jane Doe"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodPost, "/api/v1/sessions/"+sessionID+"/intake",
		map[string]string{"name": "Jane Doe", "email": "jane@example.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "in_progress", body["state"])

	// Fetch the questionnaire.
	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/sessions/"+sessionID+"/questions", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	questions := body["questions"].([]any)
	require.Len(t, questions, 48)

	// Rate purpose_vision statements 10, everything else 1.
	for _, raw := range questions {
		q := raw.(map[string]any)
		rating := 1
		if q["dimension_key"] == "purpose_vision" {
			rating = 10
		}
		resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/sessions/"+sessionID+"/answers",
			map[string]any{
				"dimension_key": q["dimension_key"],
				"statement_key": q["statement_key"],
				"rating":        rating,
			})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	// Complete and check the summary.
	resp, body = doJSON(t, app, http.MethodPost, "/api/v1/sessions/"+sessionID+"/complete", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	recordID := body["record_id"].(string)
	require.NotEmpty(t, recordID)

	totals := body["dimension_scores"].(map[string]any)
	assert.EqualValues(t, 60, totals["purpose_vision"])
	assert.EqualValues(t, 6, totals["team_leadership"])

	for _, raw := range body["summaries"].([]any) {
		s := raw.(map[string]any)
		if s["key"] == "purpose_vision" {
			assert.Equal(t, "high", s["band"])
		} else {
			assert.Equal(t, "low", s["band"], "dimension %v", s["key"])
		}
	}

	// The coach sees the stored record.
	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/coach/assessments?coach="+testToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["count"])
	listed := body["assessments"].([]any)[0].(map[string]any)
	assert.Equal(t, recordID, listed["id"])
	assert.Equal(t, "Jane Doe", listed["coachee_name"])

	resp, body = doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/v1/coach/assessments/%s?coach=%s", recordID, testToken), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["summaries"])
}

func TestAnswerValidation(t *testing.T) {
	app := newTestApp(t)

	_, body := doJSON(t, app, http.MethodPost, "/api/v1/sessions", nil)
	sessionID := body["id"].(string)
	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/sessions/"+sessionID+"/intake",
		map[string]string{"name": "Jane Doe", "email": "jane@example.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cases := []map[string]any{
		{"dimension_key": "purpose_vision", "statement_key": "vision", "rating": 0},
		{"dimension_key": "purpose_vision", "statement_key": "vision", "rating": 11},
		{"dimension_key": "purpose_vision", "statement_key": "bogus", "rating": 5},
		{"dimension_key": "bogus", "statement_key": "vision", "rating": 5},
	}
	for _, payload := range cases {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/sessions/"+sessionID+"/answers", payload)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "payload %v", payload)
	}
}

func TestUnknownSessionIs404(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/sessions/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func completeOneAssessment(t *testing.T, app *fiber.App) (sessionID, recordID string) {
	t.Helper()

	_, body := doJSON(t, app, http.MethodPost, "/api/v1/sessions", nil)
	sessionID = body["id"].(string)
	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/sessions/"+sessionID+"/intake",
		map[string]string{"name": "Jane Doe", "email": "jane@example.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/sessions/"+sessionID+"/answers",
		map[string]any{"dimension_key": "purpose_vision", "statement_key": "vision", "rating": 7})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodPost, "/api/v1/sessions/"+sessionID+"/complete", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return sessionID, body["record_id"].(string)
}

func TestRespondentChart(t *testing.T) {
	app := newTestApp(t)

	// The chart is gated on completion.
	_, body := doJSON(t, app, http.MethodPost, "/api/v1/sessions", nil)
	pendingID := body["id"].(string)
	resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/sessions/"+pendingID+"/chart", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/v1/sessions/does-not-exist/chart", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// A finished respondent sees their radar chart without any coach token.
	sessionID, _ := completeOneAssessment(t, app)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+sessionID+"/chart", nil)
	chartResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, chartResp.StatusCode)
	assert.Contains(t, chartResp.Header.Get("Content-Type"), "text/html")
	data, err := io.ReadAll(chartResp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "echarts")
	assert.Contains(t, string(data), "Jane Doe")
}

func TestCoachDeleteTwoStepConfirm(t *testing.T) {
	app := newTestApp(t)
	_, recordID := completeOneAssessment(t, app)

	// First call marks pending, deletes nothing.
	resp, body := doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/v1/coach/assessments/%s?coach=%s", recordID, testToken), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["pending_confirmation"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/coach/assessments?coach="+testToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["count"], "unconfirmed delete must not remove the record")

	// Confirmed delete removes it.
	resp, body = doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/v1/coach/assessments/%s?coach=%s&confirm=true", recordID, testToken), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["deleted"])

	// A second confirmed delete reports NotFound.
	resp, _ = doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/v1/coach/assessments/%s?coach=%s&confirm=true", recordID, testToken), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCoachReportExports(t *testing.T) {
	app := newTestApp(t)
	_, recordID := completeOneAssessment(t, app)

	req := httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/v1/coach/assessments/%s/report.pdf?coach=%s", recordID, testToken), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	req = httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/v1/coach/assessments/%s/chart?coach=%s", recordID, testToken), nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	data, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "echarts")
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])
}
