package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vamshikrishnam1/task-performance/internal/dto"
	"github.com/vamshikrishnam1/task-performance/internal/handler"
	"github.com/vamshikrishnam1/task-performance/internal/repository"
	"github.com/vamshikrishnam1/task-performance/internal/router"
	"github.com/vamshikrishnam1/task-performance/internal/service"
)

func newTestServer() *httptest.Server {
	repo := repository.NewMemoryReportRepository()
	svc := service.NewReportService(repo)
	validate := validator.New()

	r := router.SetupRouter(
		handler.NewReportHandler(svc, validate),
		handler.NewHealthHandler(),
	)

	return httptest.NewServer(r)
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var errResp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	return errResp
}

func TestGetReportInvalidID(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/reports/abc")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, dto.ErrCodeInvalidID, decodeError(t, resp).Error.Code)
}

func TestGetReportNotFound(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/reports/7")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, dto.ErrCodeNotFound, decodeError(t, resp).Error.Code)
}

func TestCreateReportMalformedBody(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	resp, err := http.Post(server.URL+"/api/reports", "application/json", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, dto.ErrCodeValidation, decodeError(t, resp).Error.Code)
}

func TestCreateReportMissingFields(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	body := `{"weekOwner":"deepak","teamData":{}}`
	resp, err := http.Post(server.URL+"/api/reports", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, dto.ErrCodeValidation, decodeError(t, resp).Error.Code)
}

func TestCreateReportUnknownMember(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	body := `{
        "weekOwner": "deepak",
        "weekStart": "2025-08-25",
        "weekEnd": "2025-08-31",
        "teamData": {
            "stranger": {"assigned": 5, "completed": 5, "critical": 0, "major": 0, "minor": 0, "tcr": 100, "tpr": 100}
        }
    }`
	resp, err := http.Post(server.URL+"/api/reports", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, dto.ErrCodeUnknownMember, decodeError(t, resp).Error.Code)
}

func TestCreateReportUnknownOwner(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	body := `{
        "weekOwner": "stranger",
        "weekStart": "2025-08-25",
        "weekEnd": "2025-08-31",
        "teamData": {
            "deepak": {"assigned": 5, "completed": 5, "critical": 0, "major": 0, "minor": 0, "tcr": 100, "tpr": 100}
        }
    }`
	resp, err := http.Post(server.URL+"/api/reports", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, dto.ErrCodeUnknownOwner, decodeError(t, resp).Error.Code)
}

func TestCreateReportWithoutCalculatedMetrics(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	// Raw counts only: the calculator never ran for any member.
	body := `{
        "weekOwner": "deepak",
        "weekStart": "2025-08-25",
        "weekEnd": "2025-08-31",
        "teamData": {
            "deepak": {"assigned": 10, "completed": 8, "critical": 0, "major": 0, "minor": 0}
        }
    }`
	resp, err := http.Post(server.URL+"/api/reports", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, dto.ErrCodeMetricsNotCalculated, decodeError(t, resp).Error.Code)
}

func TestDeleteReportStatuses(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/reports/nope", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req, err = http.NewRequest(http.MethodDelete, server.URL+"/api/reports/1", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPreviewMetricsValidation(t *testing.T) {
	server := newTestServer()
	defer server.Close()

	resp, err := http.Post(server.URL+"/api/reports/preview", "application/json", bytes.NewBufferString(`{"teamData":{}}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := `{"teamData":{"deepak":{"assigned":-1,"completed":0,"critical":0,"major":0,"minor":0}}}`
	resp, err = http.Post(server.URL+"/api/reports/preview", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
