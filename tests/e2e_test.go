package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vamshikrishnam1/task-performance/internal/dto"
	"github.com/vamshikrishnam1/task-performance/internal/response"

	"github.com/vamshikrishnam1/task-performance/internal/handler"
	"github.com/vamshikrishnam1/task-performance/internal/repository"
	"github.com/vamshikrishnam1/task-performance/internal/router"
	"github.com/vamshikrishnam1/task-performance/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type E2ETestSuite struct {
	server *httptest.Server
}

func setupE2ETest(t *testing.T) *E2ETestSuite {
	t.Helper()

	reportRepo := repository.NewMemoryReportRepository()

	validate := validator.New()

	reportService := service.NewReportService(reportRepo)

	reportHandler := handler.NewReportHandler(reportService, validate)
	healthHandler := handler.NewHealthHandler()

	r := router.SetupRouter(reportHandler, healthHandler)

	server := httptest.NewServer(r)

	return &E2ETestSuite{server: server}
}

func (s *E2ETestSuite) teardown() {
	s.server.Close()
}

func (s *E2ETestSuite) postJSON(t *testing.T, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(s.server.URL+path, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	return resp
}

func TestReportLifecycle(t *testing.T) {
	s := setupE2ETest(t)
	defer s.teardown()

	// Preview metrics for the entered counts, the way the form does before
	// saving.
	previewBody := `{
        "teamData": {
            "deepak": {"assigned": 10, "completed": 8, "critical": 1, "major": 0, "minor": 1},
            "jitin":  {"assigned": 5, "completed": 5, "critical": 0, "major": 0, "minor": 0}
        }
    }`
	resp := s.postJSON(t, "/api/reports/preview", previewBody)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var preview response.PreviewMetricsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&preview))
	resp.Body.Close()

	require.Len(t, preview.Metrics, 2)
	assert.Equal(t, 80.0, preview.Metrics["deepak"].TCR)
	assert.Equal(t, 32.0, preview.Metrics["deepak"].TPR)
	assert.Equal(t, 100.0, preview.Metrics["jitin"].TCR)
	assert.Equal(t, 100.0, preview.Metrics["jitin"].TPR)

	// Submit the finalized report with the previewed percentages.
	createBody := `{
        "weekOwner": "deepak",
        "weekStart": "2025-08-25",
        "weekEnd": "2025-08-31",
        "teamData": {
            "deepak": {"assigned": 10, "completed": 8, "critical": 1, "major": 0, "minor": 1, "tcr": 80, "tpr": 32},
            "jitin":  {"assigned": 5, "completed": 5, "critical": 0, "major": 0, "minor": 0, "tcr": 100, "tpr": 100}
        }
    }`
	resp = s.postJSON(t, "/api/reports", createBody)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created response.ReportResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	require.NotZero(t, created.Report.ID)
	assert.Equal(t, "deepak", created.Report.WeekOwner)
	assert.False(t, created.Report.CreatedAt.IsZero())
	require.Len(t, created.Report.TeamData, 2)

	// List contains the new report.
	listResp, err := http.Get(s.server.URL + "/api/reports")
	require.NoError(t, err)
	var list response.ReportListResponse
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&list))
	listResp.Body.Close()
	require.Len(t, list, 1)
	assert.Equal(t, created.Report.ID, list[0].ID)

	// Fetch by id.
	getResp, err := http.Get(fmt.Sprintf("%s/api/reports/%d", s.server.URL, created.Report.ID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	var fetched response.ReportResponse
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&fetched))
	getResp.Body.Close()
	assert.Equal(t, created.Report.TeamData, fetched.Report.TeamData)

	// Aggregated summary.
	summaryResp, err := http.Get(fmt.Sprintf("%s/api/reports/%d/summary", s.server.URL, created.Report.ID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, summaryResp.StatusCode)
	var summary response.ReportSummaryResponse
	require.NoError(t, json.NewDecoder(summaryResp.Body).Decode(&summary))
	summaryResp.Body.Close()

	assert.Equal(t, 15, summary.Summary.TotalTasks)
	assert.Equal(t, 13, summary.Summary.TotalCompleted)
	assert.Equal(t, 90.0, summary.Summary.AvgTCR)
	assert.Equal(t, 66.0, summary.Summary.AvgTPR)
	assert.Equal(t, 2, summary.Summary.TeamSize)
	assert.Equal(t, "Excellent", summary.Summary.TCRRating)
	assert.Equal(t, "Good", summary.Summary.TPRRating)

	// Delete, then verify it is gone.
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/reports/%d", s.server.URL, created.Report.ID), nil)
	require.NoError(t, err)
	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	delResp.Body.Close()
	require.Equal(t, http.StatusOK, delResp.StatusCode)

	goneResp, err := http.Get(fmt.Sprintf("%s/api/reports/%d", s.server.URL, created.Report.ID))
	require.NoError(t, err)
	goneResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, goneResp.StatusCode)
}

func TestStaleMetricsExcludedOverTheWire(t *testing.T) {
	s := setupE2ETest(t)
	defer s.teardown()

	// jitin's tcr/tpr do not match his raw counts: they were computed before
	// the counts changed. He is dropped from the stored report; deepak's
	// fresh values survive.
	createBody := `{
        "weekOwner": "deepak",
        "weekStart": "2025-08-25",
        "weekEnd": "2025-08-31",
        "teamData": {
            "deepak": {"assigned": 10, "completed": 8, "critical": 1, "major": 0, "minor": 1, "tcr": 80, "tpr": 32},
            "jitin":  {"assigned": 5, "completed": 2, "critical": 0, "major": 0, "minor": 0, "tcr": 100, "tpr": 100}
        }
    }`
	resp := s.postJSON(t, "/api/reports", createBody)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created response.ReportResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	require.Len(t, created.Report.TeamData, 1)
	_, ok := created.Report.TeamData["jitin"]
	assert.False(t, ok)
}

func TestSubmissionGuardOverTheWire(t *testing.T) {
	s := setupE2ETest(t)
	defer s.teardown()

	// Plenty of raw data, zero calculated members.
	createBody := `{
        "weekOwner": "deepak",
        "weekStart": "2025-08-25",
        "weekEnd": "2025-08-31",
        "teamData": {
            "deepak": {"assigned": 10, "completed": 8, "critical": 1, "major": 0, "minor": 1},
            "jitin":  {"assigned": 5, "completed": 2, "critical": 0, "major": 0, "minor": 0},
            "minhaj": {"assigned": 7, "completed": 7, "critical": 0, "major": 1, "minor": 0}
        }
    }`
	resp := s.postJSON(t, "/api/reports", createBody)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, dto.ErrCodeMetricsNotCalculated, errResp.Error.Code)
}

func TestListOrderNewestFirst(t *testing.T) {
	s := setupE2ETest(t)
	defer s.teardown()

	for week := 1; week <= 3; week++ {
		body := fmt.Sprintf(`{
            "weekOwner": "ravi",
            "weekStart": "2025-08-%02d",
            "weekEnd": "2025-08-%02d",
            "teamData": {
                "deepak": {"assigned": 10, "completed": 10, "critical": 0, "major": 0, "minor": 0, "tcr": 100, "tpr": 100}
            }
        }`, week, week+6)
		resp := s.postJSON(t, "/api/reports", body)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	listResp, err := http.Get(s.server.URL + "/api/reports")
	require.NoError(t, err)
	var list response.ReportListResponse
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&list))
	listResp.Body.Close()

	require.Len(t, list, 3)
	assert.Equal(t, 3, list[0].ID)
	assert.Equal(t, 2, list[1].ID)
	assert.Equal(t, 1, list[2].ID)
}

func TestHealth(t *testing.T) {
	s := setupE2ETest(t)
	defer s.teardown()

	req, err := http.NewRequest(http.MethodHead, s.server.URL+"/health", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
