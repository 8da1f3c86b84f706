package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vamshikrishnam1/task-performance/internal/domain"
	"github.com/vamshikrishnam1/task-performance/internal/my_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportRepository stores weekly reports in Postgres. Team data is kept as a
// JSONB column; ids come from the table's serial sequence, so they are
// monotonic and never reused even under concurrent creates.
type ReportRepository struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

func (r *ReportRepository) CreateReport(ctx context.Context, input *domain.WeeklyReportInput) (*domain.WeeklyReport, error) {
	teamData, err := json.Marshal(input.TeamData)
	if err != nil {
		return nil, fmt.Errorf("failed to encode team data: %w", err)
	}

	query := `
        INSERT INTO weekly_reports (week_owner, week_start, week_end, team_data)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	report := &domain.WeeklyReport{
		WeekOwner: input.WeekOwner,
		WeekStart: input.WeekStart,
		WeekEnd:   input.WeekEnd,
		TeamData:  input.TeamData,
	}
	err = r.pool.QueryRow(ctx, query, string(input.WeekOwner), input.WeekStart, input.WeekEnd, teamData).
		Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	return report, nil
}

func (r *ReportRepository) GetReports(ctx context.Context) ([]domain.WeeklyReport, error) {
	query := `
        SELECT id, week_owner, week_start, week_end, team_data, created_at
        FROM weekly_reports
        ORDER BY created_at DESC, id DESC
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get reports: %w", err)
	}
	defer rows.Close()

	var reports []domain.WeeklyReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reports: %w", err)
	}

	return reports, nil
}

func (r *ReportRepository) GetReportByID(ctx context.Context, id int) (*domain.WeeklyReport, error) {
	query := `
        SELECT id, week_owner, week_start, week_end, team_data, created_at
        FROM weekly_reports
        WHERE id = $1
    `
	report, err := scanReport(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, my_errors.ErrReportNotFound
		}
		return nil, err
	}

	return report, nil
}

func (r *ReportRepository) DeleteReport(ctx context.Context, id int) (bool, error) {
	query := `DELETE FROM weekly_reports WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete report: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func scanReport(row pgx.Row) (*domain.WeeklyReport, error) {
	var report domain.WeeklyReport
	var owner string
	var teamData []byte

	err := row.Scan(&report.ID, &owner, &report.WeekStart, &report.WeekEnd, &teamData, &report.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, fmt.Errorf("failed to scan report: %w", err)
	}

	report.WeekOwner = domain.WeekOwner(owner)
	if err := json.Unmarshal(teamData, &report.TeamData); err != nil {
		return nil, fmt.Errorf("failed to decode team data: %w", err)
	}

	return &report, nil
}
