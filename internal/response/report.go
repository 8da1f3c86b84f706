package response

import (
	"github.com/vamshikrishnam1/task-performance/internal/dto"
)

type ReportResponse struct {
	Report dto.WeeklyReportDTO `json:"report"`
}

type ReportListResponse []dto.WeeklyReportDTO

type ReportSummaryResponse struct {
	ReportID int                  `json:"reportId"`
	Summary  dto.ReportSummaryDTO `json:"summary"`
}

type PreviewMetricsResponse struct {
	Metrics map[string]dto.ComputedMetricsDTO `json:"metrics"`
}

type DeleteReportResponse struct {
	Message string `json:"message"`
}
