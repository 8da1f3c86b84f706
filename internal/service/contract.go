package service

import (
	"context"

	"github.com/vamshikrishnam1/task-performance/internal/domain"
)

type ReportRepository interface {
	CreateReport(ctx context.Context, input *domain.WeeklyReportInput) (*domain.WeeklyReport, error)
	GetReports(ctx context.Context) ([]domain.WeeklyReport, error)
	GetReportByID(ctx context.Context, id int) (*domain.WeeklyReport, error)
	DeleteReport(ctx context.Context, id int) (bool, error)
}
