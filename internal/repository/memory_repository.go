package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vamshikrishnam1/task-performance/internal/domain"
	"github.com/vamshikrishnam1/task-performance/internal/my_errors"
)

// MemoryReportRepository keeps reports in process memory. It backs the
// memory storage driver and the test suites; the id counter is guarded by
// the same mutex as the map, so ids stay strictly increasing and are never
// reused, deletions included.
type MemoryReportRepository struct {
	mu      sync.RWMutex
	reports map[int]domain.WeeklyReport
	nextID  int
}

func NewMemoryReportRepository() *MemoryReportRepository {
	return &MemoryReportRepository{
		reports: make(map[int]domain.WeeklyReport),
		nextID:  1,
	}
}

func (r *MemoryReportRepository) CreateReport(_ context.Context, input *domain.WeeklyReportInput) (*domain.WeeklyReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	report := domain.WeeklyReport{
		ID:        r.nextID,
		WeekOwner: input.WeekOwner,
		WeekStart: input.WeekStart,
		WeekEnd:   input.WeekEnd,
		TeamData:  cloneTeamData(input.TeamData),
		CreatedAt: time.Now(),
	}
	r.nextID++
	r.reports[report.ID] = report

	return &report, nil
}

func (r *MemoryReportRepository) GetReports(_ context.Context) ([]domain.WeeklyReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reports := make([]domain.WeeklyReport, 0, len(r.reports))
	for _, report := range r.reports {
		reports = append(reports, report)
	}

	// Newest first; ids break created-at ties from fast successive creates.
	sort.Slice(reports, func(i, j int) bool {
		if !reports[i].CreatedAt.Equal(reports[j].CreatedAt) {
			return reports[i].CreatedAt.After(reports[j].CreatedAt)
		}
		return reports[i].ID > reports[j].ID
	})

	return reports, nil
}

func (r *MemoryReportRepository) GetReportByID(_ context.Context, id int) (*domain.WeeklyReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, ok := r.reports[id]
	if !ok {
		return nil, my_errors.ErrReportNotFound
	}

	return &report, nil
}

func (r *MemoryReportRepository) DeleteReport(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reports[id]; !ok {
		return false, nil
	}
	delete(r.reports, id)

	return true, nil
}

func cloneTeamData(teamData map[domain.Member]domain.TeamMemberMetrics) map[domain.Member]domain.TeamMemberMetrics {
	cloned := make(map[domain.Member]domain.TeamMemberMetrics, len(teamData))
	for member, data := range teamData {
		cloned[member] = data
	}
	return cloned
}
