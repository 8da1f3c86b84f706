package mapper

import (
	"fmt"

	"github.com/vamshikrishnam1/task-performance/internal/domain"
	"github.com/vamshikrishnam1/task-performance/internal/dto"
	"github.com/vamshikrishnam1/task-performance/internal/metrics"
	"github.com/vamshikrishnam1/task-performance/internal/my_errors"
	"github.com/vamshikrishnam1/task-performance/internal/request"
)

// Report mappers
func MapDomainReportToDTO(report *domain.WeeklyReport) dto.WeeklyReportDTO {
	teamData := make(map[string]dto.TeamMemberMetricsDTO, len(report.TeamData))
	for member, data := range report.TeamData {
		teamData[string(member)] = dto.TeamMemberMetricsDTO{
			Assigned:  data.Assigned,
			Completed: data.Completed,
			Critical:  data.Critical,
			Major:     data.Major,
			Minor:     data.Minor,
			TCR:       data.TCR,
			TPR:       data.TPR,
		}
	}
	return dto.WeeklyReportDTO{
		ID:        report.ID,
		WeekOwner: string(report.WeekOwner),
		WeekStart: report.WeekStart,
		WeekEnd:   report.WeekEnd,
		TeamData:  teamData,
		CreatedAt: report.CreatedAt,
	}
}

func MapDomainReportsToDTO(reports []domain.WeeklyReport) []dto.WeeklyReportDTO {
	result := make([]dto.WeeklyReportDTO, len(reports))
	for i, report := range reports {
		result[i] = MapDomainReportToDTO(&report)
	}
	return result
}

// MapCreateReportRequestToDraft rebuilds the submission draft from the wire
// payload. Entries with both percentages present are restored as calculated;
// the draft itself re-verifies them against the raw counts, so values that no
// longer match a fresh computation end up uncalculated.
func MapCreateReportRequestToDraft(req *request.CreateReportRequest) (domain.ReportHeader, *metrics.Draft, error) {
	header := domain.ReportHeader{
		WeekOwner: req.WeekOwner,
		WeekStart: req.WeekStart,
		WeekEnd:   req.WeekEnd,
	}

	draft := metrics.NewDraft()
	for key, entry := range req.TeamData {
		member, ok := domain.ParseMember(key)
		if !ok {
			return domain.ReportHeader{}, nil, fmt.Errorf("%q: %w", key, my_errors.ErrUnknownMember)
		}

		raw := metrics.RawCounts{
			Assigned:  entry.Assigned,
			Completed: entry.Completed,
			Critical:  entry.Critical,
			Major:     entry.Major,
			Minor:     entry.Minor,
		}

		if entry.TCR != nil && entry.TPR != nil {
			draft.Restore(member, raw, metrics.Computed{TCR: *entry.TCR, TPR: *entry.TPR})
		} else {
			draft.SetRaw(member, raw)
		}
	}

	return header, draft, nil
}

// MapPreviewRequestToRawCounts validates member keys and converts the
// payload for the calculator.
func MapPreviewRequestToRawCounts(req *request.PreviewMetricsRequest) (map[domain.Member]metrics.RawCounts, error) {
	raw := make(map[domain.Member]metrics.RawCounts, len(req.TeamData))
	for key, entry := range req.TeamData {
		member, ok := domain.ParseMember(key)
		if !ok {
			return nil, fmt.Errorf("%q: %w", key, my_errors.ErrUnknownMember)
		}
		raw[member] = metrics.RawCounts{
			Assigned:  entry.Assigned,
			Completed: entry.Completed,
			Critical:  entry.Critical,
			Major:     entry.Major,
			Minor:     entry.Minor,
		}
	}
	return raw, nil
}

// Metrics mappers
func MapComputedMetricsToDTO(computed map[domain.Member]metrics.Computed) map[string]dto.ComputedMetricsDTO {
	result := make(map[string]dto.ComputedMetricsDTO, len(computed))
	for member, c := range computed {
		result[string(member)] = dto.ComputedMetricsDTO{TCR: c.TCR, TPR: c.TPR}
	}
	return result
}

func MapDomainSummaryToDTO(summary *domain.ReportSummary) dto.ReportSummaryDTO {
	return dto.ReportSummaryDTO{
		TotalTasks:     summary.TotalTasks,
		TotalCompleted: summary.TotalCompleted,
		AvgTCR:         summary.AvgTCR,
		AvgTPR:         summary.AvgTPR,
		TeamSize:       summary.TeamSize,
		TCRRating:      metrics.Classify(summary.AvgTCR),
		TPRRating:      metrics.Classify(summary.AvgTPR),
	}
}
