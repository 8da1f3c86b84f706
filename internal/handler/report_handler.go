package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/vamshikrishnam1/task-performance/internal/dto"
	"github.com/vamshikrishnam1/task-performance/internal/mapper"
	"github.com/vamshikrishnam1/task-performance/internal/metrics"
	"github.com/vamshikrishnam1/task-performance/internal/my_errors"
	"github.com/vamshikrishnam1/task-performance/internal/request"
	"github.com/vamshikrishnam1/task-performance/internal/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/vamshikrishnam1/task-performance/internal/domain"
)

type ReportService interface {
	SubmitReport(ctx context.Context, header domain.ReportHeader, draft *metrics.Draft) (*domain.WeeklyReport, error)
	GetReports(ctx context.Context) ([]domain.WeeklyReport, error)
	GetReportByID(ctx context.Context, id int) (*domain.WeeklyReport, error)
	DeleteReport(ctx context.Context, id int) error
	SummarizeReport(ctx context.Context, id int) (*domain.ReportSummary, error)
	PreviewMetrics(raw map[domain.Member]metrics.RawCounts) (map[domain.Member]metrics.Computed, error)
}

type ReportHandler struct {
	service   ReportService
	validator *validator.Validate
}

func NewReportHandler(service ReportService, validator *validator.Validate) *ReportHandler {
	return &ReportHandler{
		service:   service,
		validator: validator,
	}
}

// ListReports godoc
// @Summary List weekly reports
// @Description Get all stored weekly reports, newest first
// @Tags Reports
// @Produce json
// @Success 200 {array} dto.WeeklyReportDTO "Reports retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/reports [get]
func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.service.GetReports(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, response.ReportListResponse(mapper.MapDomainReportsToDTO(reports)))
}

// GetReport godoc
// @Summary Get a weekly report
// @Description Get one weekly report by id
// @Tags Reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} response.ReportResponse "Report retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid report id"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/reports/{id} [get]
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	id, ok := reportID(w, r)
	if !ok {
		return
	}

	report, err := h.service.GetReportByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, my_errors.ErrReportNotFound) {
			respondError(w, http.StatusNotFound, dto.ErrCodeNotFound, my_errors.ErrReportNotFound.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
		return
	}

	resp := response.ReportResponse{
		Report: mapper.MapDomainReportToDTO(report),
	}

	respondJSON(w, http.StatusOK, resp)
}

// CreateReport godoc
// @Summary Create a weekly report
// @Description Validate and persist a finalized weekly report. Requires metrics to have been calculated for at least one member.
// @Tags Reports
// @Accept json
// @Produce json
// @Param request body request.CreateReportRequest true "Report creation request"
// @Success 201 {object} response.ReportResponse "Report created successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/reports [post]
func (h *ReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	header, draft, err := mapper.MapCreateReportRequestToDraft(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeUnknownMember, err.Error())
		return
	}

	report, err := h.service.SubmitReport(r.Context(), header, draft)
	if err != nil {
		respondSubmitError(w, err)
		return
	}

	resp := response.ReportResponse{
		Report: mapper.MapDomainReportToDTO(report),
	}

	respondJSON(w, http.StatusCreated, resp)
}

// DeleteReport godoc
// @Summary Delete a weekly report
// @Description Remove one weekly report by id
// @Tags Reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} response.DeleteReportResponse "Report deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid report id"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/reports/{id} [delete]
func (h *ReportHandler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	id, ok := reportID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteReport(r.Context(), id); err != nil {
		if errors.Is(err, my_errors.ErrReportNotFound) {
			respondError(w, http.StatusNotFound, dto.ErrCodeNotFound, my_errors.ErrReportNotFound.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, response.DeleteReportResponse{Message: "Report deleted successfully"})
}

// GetReportSummary godoc
// @Summary Summarize a weekly report
// @Description Get aggregated totals, averages and performance ratings for one report
// @Tags Reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} response.ReportSummaryResponse "Summary computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid report id"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/reports/{id}/summary [get]
func (h *ReportHandler) GetReportSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := reportID(w, r)
	if !ok {
		return
	}

	summary, err := h.service.SummarizeReport(r.Context(), id)
	if err != nil {
		if errors.Is(err, my_errors.ErrReportNotFound) {
			respondError(w, http.StatusNotFound, dto.ErrCodeNotFound, my_errors.ErrReportNotFound.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
		return
	}

	resp := response.ReportSummaryResponse{
		ReportID: id,
		Summary:  mapper.MapDomainSummaryToDTO(summary),
	}

	respondJSON(w, http.StatusOK, resp)
}

// PreviewMetrics godoc
// @Summary Preview TCR/TPR for raw counts
// @Description Compute per-member metrics without persisting anything
// @Tags Reports
// @Accept json
// @Produce json
// @Param request body request.PreviewMetricsRequest true "Raw counts per member"
// @Success 200 {object} response.PreviewMetricsResponse "Metrics computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Router /api/reports/preview [post]
func (h *ReportHandler) PreviewMetrics(w http.ResponseWriter, r *http.Request) {
	var req request.PreviewMetricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	raw, err := mapper.MapPreviewRequestToRawCounts(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeUnknownMember, err.Error())
		return
	}

	computed, err := h.service.PreviewMetrics(raw)
	if err != nil {
		respondSubmitError(w, err)
		return
	}

	resp := response.PreviewMetricsResponse{
		Metrics: mapper.MapComputedMetricsToDTO(computed),
	}

	respondJSON(w, http.StatusOK, resp)
}

// reportID parses the {id} route parameter, responding 400 on anything that
// is not an integer.
func reportID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeInvalidID, "invalid report id")
		return 0, false
	}
	return id, true
}

func respondSubmitError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, my_errors.ErrMetricsNotCalculated):
		respondError(w, http.StatusBadRequest, dto.ErrCodeMetricsNotCalculated, my_errors.ErrMetricsNotCalculated.Error())
	case errors.Is(err, my_errors.ErrUnknownWeekOwner):
		respondError(w, http.StatusBadRequest, dto.ErrCodeUnknownOwner, err.Error())
	case errors.Is(err, my_errors.ErrUnknownMember):
		respondError(w, http.StatusBadRequest, dto.ErrCodeUnknownMember, err.Error())
	case errors.Is(err, my_errors.ErrEmptyField), errors.Is(err, my_errors.ErrNegativeCount):
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
	}
}
