package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sngm3741/facility-feedback-services/api/internal/feedback/application"
	"github.com/sngm3741/facility-feedback-services/api/internal/feedback/domain"
	"github.com/sngm3741/facility-feedback-services/api/internal/infrastructure/memory"
	adminhttp "github.com/sngm3741/facility-feedback-services/api/internal/interfaces/http/admin"
	"github.com/sngm3741/facility-feedback-services/api/internal/report"
)

func newAdminRouter(t *testing.T) (*chi.Mux, *memory.FeedbackRepository) {
	t.Helper()
	repo := memory.NewFeedbackRepository()
	handler := adminhttp.NewHandler(adminhttp.Config{
		Logger:    log.New(bytes.NewBuffer(nil), "", 0),
		Queries:   application.NewQueryService(repo),
		Commands:  application.NewCommandService(repo),
		Renderer:  report.NewRenderer(time.UTC),
		Username:  "admin",
		Password:  "s3cret",
		JWTSecret: []byte("test-secret"),
		JWTIssuer: "facility-feedback-auth",
	})
	router := chi.NewRouter()
	handler.RegisterPublic(router)
	handler.Register(router)
	return router, repo
}

func seedFeedback(t *testing.T, repo *memory.FeedbackRepository, location string, createdAt time.Time) domain.Feedback {
	t.Helper()
	record := domain.Feedback{
		Shift:     domain.ShiftA,
		Location:  domain.Location(location),
		Comments:  "needs attention",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), &record))
	return record
}

func doJSON(t *testing.T, router http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLogin(t *testing.T) {
	router, _ := newAdminRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/login", map[string]string{
		"username": "admin",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res struct {
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expiresAt"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.NotEmpty(t, res.Token)
	assert.True(t, res.ExpiresAt.After(time.Now()))

	rec = doJSON(t, router, http.MethodPost, "/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFeedbackList_DateRangeAndLocationFilter(t *testing.T) {
	router, repo := newAdminRouter(t)

	older := seedFeedback(t, repo, "team member ladies", time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	inRange := seedFeedback(t, repo, "operation area gents", time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC))
	_ = older

	rec := doJSON(t, router, http.MethodGet, "/feedback?start=2025-03-04&end=2025-03-06", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res struct {
		Items []struct {
			ID       string `json:"id"`
			Location string `json:"location"`
		} `json:"items"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, 1, res.Total)
	assert.Equal(t, inRange.ID, res.Items[0].ID)

	rec = doJSON(t, router, http.MethodGet, "/feedback?location=LADIES", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "team member ladies", res.Items[0].Location)

	rec = doJSON(t, router, http.MethodGet, "/feedback?start=2025-03-04", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFeedbackDetail(t *testing.T) {
	router, repo := newAdminRouter(t)
	record := seedFeedback(t, repo, "executive washroom", time.Now().UTC())

	rec := doJSON(t, router, http.MethodGet, "/feedback/"+record.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		ID       string `json:"id"`
		Comments string `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, record.ID, res.ID)
	assert.Equal(t, "needs attention", res.Comments)

	rec = doJSON(t, router, http.MethodGet, "/feedback/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFeedbackUpdate_PatchesOnlyProvidedFields(t *testing.T) {
	router, repo := newAdminRouter(t)
	record := seedFeedback(t, repo, "executive washroom", time.Now().UTC())

	rec := doJSON(t, router, http.MethodPatch, "/feedback/"+record.ID, map[string]any{
		"comments":       "resolved",
		"floorCondition": "veryClean",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored, err := repo.FindByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, "resolved", stored.Comments)
	assert.Equal(t, domain.RatingVeryClean, stored.FloorCondition)
	assert.Equal(t, record.Shift, stored.Shift)
	assert.Equal(t, record.Location, stored.Location)

	rec = doJSON(t, router, http.MethodPatch, "/feedback/"+record.ID, map[string]any{
		"shift": "C",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPatch, "/feedback/missing", map[string]any{
		"comments": "x",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFeedbackDelete(t *testing.T) {
	router, repo := newAdminRouter(t)
	record := seedFeedback(t, repo, "team member gents", time.Now().UTC())

	rec := doJSON(t, router, http.MethodDelete, "/feedback/"+record.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	_, err := repo.FindByID(context.Background(), record.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	rec = doJSON(t, router, http.MethodDelete, "/feedback/"+record.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFeedbackExport_ReturnsPDF(t *testing.T) {
	router, repo := newAdminRouter(t)
	seedFeedback(t, repo, "operation area ladies", time.Now().UTC())

	rec := doJSON(t, router, http.MethodGet, "/feedback/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "feedback-report-")
	assert.Equal(t, "%PDF", rec.Body.String()[:4])
}
