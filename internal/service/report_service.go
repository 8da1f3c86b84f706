package service

import (
	"context"
	"fmt"

	"github.com/vamshikrishnam1/task-performance/internal/domain"
	"github.com/vamshikrishnam1/task-performance/internal/metrics"
	"github.com/vamshikrishnam1/task-performance/internal/my_errors"
)

type ReportService struct {
	repo ReportRepository
}

func NewReportService(repo ReportRepository) *ReportService {
	return &ReportService{repo: repo}
}

// SubmitReport validates a draft and persists the finalized report. The
// draft must have at least one member with calculated metrics; members whose
// raw counts changed after the last calculation carry no computed values and
// are left out of the stored report without failing the submission.
func (s *ReportService) SubmitReport(ctx context.Context, header domain.ReportHeader, draft *metrics.Draft) (*domain.WeeklyReport, error) {
	if header.WeekOwner == "" {
		return nil, fmt.Errorf("week_owner: %w", my_errors.ErrEmptyField)
	}
	if header.WeekStart == "" {
		return nil, fmt.Errorf("week_start: %w", my_errors.ErrEmptyField)
	}
	if header.WeekEnd == "" {
		return nil, fmt.Errorf("week_end: %w", my_errors.ErrEmptyField)
	}

	owner, ok := domain.ParseWeekOwner(header.WeekOwner)
	if !ok {
		return nil, fmt.Errorf("%q: %w", header.WeekOwner, my_errors.ErrUnknownWeekOwner)
	}

	if draft == nil || draft.CalculatedCount() == 0 {
		return nil, fmt.Errorf("%w", my_errors.ErrMetricsNotCalculated)
	}

	teamData := draft.Finalized()
	for member, data := range teamData {
		if _, ok := domain.ParseMember(string(member)); !ok {
			return nil, fmt.Errorf("%q: %w", member, my_errors.ErrUnknownMember)
		}
		if data.Assigned < 0 || data.Completed < 0 || data.Critical < 0 || data.Major < 0 || data.Minor < 0 {
			return nil, fmt.Errorf("%s: %w", member, my_errors.ErrNegativeCount)
		}
	}

	input := &domain.WeeklyReportInput{
		WeekOwner: owner,
		WeekStart: header.WeekStart,
		WeekEnd:   header.WeekEnd,
		TeamData:  teamData,
	}

	report, err := s.repo.CreateReport(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	return report, nil
}

func (s *ReportService) GetReports(ctx context.Context) ([]domain.WeeklyReport, error) {
	reports, err := s.repo.GetReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get reports: %w", err)
	}

	return reports, nil
}

func (s *ReportService) GetReportByID(ctx context.Context, id int) (*domain.WeeklyReport, error) {
	report, err := s.repo.GetReportByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (s *ReportService) DeleteReport(ctx context.Context, id int) error {
	deleted, err := s.repo.DeleteReport(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	if !deleted {
		return my_errors.ErrReportNotFound
	}

	return nil
}

// SummarizeReport aggregates a stored report's team data.
func (s *ReportService) SummarizeReport(ctx context.Context, id int) (*domain.ReportSummary, error) {
	report, err := s.repo.GetReportByID(ctx, id)
	if err != nil {
		return nil, err
	}

	summary := metrics.Summarize(report.TeamData)
	return &summary, nil
}

// PreviewMetrics runs the calculator over raw counts without persisting
// anything, so clients can show TCR/TPR before the report is saved.
func (s *ReportService) PreviewMetrics(raw map[domain.Member]metrics.RawCounts) (map[domain.Member]metrics.Computed, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("team_data: %w", my_errors.ErrEmptyField)
	}

	computed := make(map[domain.Member]metrics.Computed, len(raw))
	for member, counts := range raw {
		if _, ok := domain.ParseMember(string(member)); !ok {
			return nil, fmt.Errorf("%q: %w", member, my_errors.ErrUnknownMember)
		}
		if counts.Assigned < 0 || counts.Completed < 0 || counts.Critical < 0 || counts.Major < 0 || counts.Minor < 0 {
			return nil, fmt.Errorf("%s: %w", member, my_errors.ErrNegativeCount)
		}
		computed[member] = metrics.Calculate(counts)
	}

	return computed, nil
}
