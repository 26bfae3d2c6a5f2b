package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myinhand/payroll-calculator/internal/calculation"
	"github.com/myinhand/payroll-calculator/internal/feedback"
)

func newTestRouter() http.Handler {
	engine := calculation.NewCalculationEngine()
	svc := feedback.NewService(feedback.NewMemoryStore())
	return NewRouter(NewPayrollHandler(engine), NewFeedbackHandler(svc), RouterOptions{
		LogLevel: slog.LevelError,
	})
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestCalculateEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/payroll/calculate", map[string]any{
		"annual_ctc":    3600000,
		"basic_percent": 48,
		"regime":        "NEW",
		"pf":            map[string]any{"base": "FULL_BASIC", "type": "PERCENTAGE", "value": 12},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)

	var result struct {
		GrossMonthly string `json:"gross_monthly"`
		NetInHand    string `json:"net_in_hand"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "300000", result.GrossMonthly)
	assert.Equal(t, "218770", result.NetInHand)
}

func TestCalculateEndpointRejectsInvalidInputs(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/payroll/calculate", map[string]any{
		"annual_ctc":    0,
		"basic_percent": 48,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/payroll/calculate", map[string]any{
		"annual_ctc":    1200000,
		"basic_percent": 40,
		"regime":        "MIDDLE",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payroll/calculate", bytes.NewBufferString("{not json"))
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req)
	assert.Equal(t, http.StatusBadRequest, rec2.Code)
}

func TestFeedbackSubmitAndList(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/feedback", map[string]string{
		"user": "", "text": "very useful",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/feedback", map[string]string{
		"user": "priya", "text": "regime toggle is handy",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/feedback", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	var entries []feedback.Entry
	require.NoError(t, json.Unmarshal(env.Data, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "priya", entries[0].User, "most recent first")
	assert.Equal(t, feedback.AnonymousUser, entries[1].User)
}

func TestFeedbackRejectsEmptyText(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/feedback", map[string]string{
		"user": "priya", "text": "   ",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestLikesEndpoints(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/v1/likes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	var likes struct {
		Likes int64 `json:"likes"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &likes))
	assert.Equal(t, int64(0), likes.Likes)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/likes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	env = decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &likes))
	assert.Equal(t, int64(1), likes.Likes)

	// Client that already liked: counter untouched.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/likes", map[string]bool{"already_liked": true})
	require.Equal(t, http.StatusOK, rec.Code)
	env = decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &likes))
	assert.Equal(t, int64(1), likes.Likes)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter()
	rec := doJSON(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
