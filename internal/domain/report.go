package domain

import "time"

// TeamMemberMetrics is one member's slice of a weekly report: the five raw
// counts entered by the user plus the two percentages derived from them.
// TCR and TPR are never set independently of a computation over the raw
// fields; see the metrics package.
type TeamMemberMetrics struct {
	Assigned  int     `json:"assigned"`
	Completed int     `json:"completed"`
	Critical  int     `json:"critical"`
	Major     int     `json:"major"`
	Minor     int     `json:"minor"`
	TCR       float64 `json:"tcr"`
	TPR       float64 `json:"tpr"`
}

// WeeklyReport is a finalized, stored report. Reports are immutable after
// creation; the only mutation the system supports is full deletion.
type WeeklyReport struct {
	ID        int                          `json:"id"`
	WeekOwner WeekOwner                    `json:"weekOwner"`
	WeekStart string                       `json:"weekStart"`
	WeekEnd   string                       `json:"weekEnd"`
	TeamData  map[Member]TeamMemberMetrics `json:"teamData"`
	CreatedAt time.Time                    `json:"createdAt"`
}

// WeeklyReportInput is what the assembly service hands to storage. ID and
// CreatedAt are assigned by the repository on create.
type WeeklyReportInput struct {
	WeekOwner WeekOwner
	WeekStart string
	WeekEnd   string
	TeamData  map[Member]TeamMemberMetrics
}

// ReportHeader carries the caller-supplied report fields through submission,
// before owner validation has run.
type ReportHeader struct {
	WeekOwner string
	WeekStart string
	WeekEnd   string
}
