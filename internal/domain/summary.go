package domain

// Performance tiers used for both TCR and TPR display.
const (
	TierExcellent        = "Excellent"
	TierGood             = "Good"
	TierNeedsImprovement = "Needs Improvement"
)

// ReportSummary aggregates one report's team data. Averages are rounded to
// one decimal place and are 0 when the report has no members.
type ReportSummary struct {
	TotalTasks     int     `json:"totalTasks"`
	TotalCompleted int     `json:"totalCompleted"`
	AvgTCR         float64 `json:"avgTcr"`
	AvgTPR         float64 `json:"avgTpr"`
	TeamSize       int     `json:"teamSize"`
}
