package dto

import "time"

type TeamMemberMetricsDTO struct {
	Assigned  int     `json:"assigned"`
	Completed int     `json:"completed"`
	Critical  int     `json:"critical"`
	Major     int     `json:"major"`
	Minor     int     `json:"minor"`
	TCR       float64 `json:"tcr"`
	TPR       float64 `json:"tpr"`
}

type WeeklyReportDTO struct {
	CreatedAt time.Time                       `json:"createdAt"`
	WeekOwner string                          `json:"weekOwner"`
	WeekStart string                          `json:"weekStart"`
	WeekEnd   string                          `json:"weekEnd"`
	TeamData  map[string]TeamMemberMetricsDTO `json:"teamData"`
	ID        int                             `json:"id"`
}

type ComputedMetricsDTO struct {
	TCR float64 `json:"tcr"`
	TPR float64 `json:"tpr"`
}

type ReportSummaryDTO struct {
	TotalTasks     int     `json:"totalTasks"`
	TotalCompleted int     `json:"totalCompleted"`
	AvgTCR         float64 `json:"avgTcr"`
	AvgTPR         float64 `json:"avgTpr"`
	TeamSize       int     `json:"teamSize"`
	TCRRating      string  `json:"tcrRating"`
	TPRRating      string  `json:"tprRating"`
}
