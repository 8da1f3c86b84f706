package metrics

import "github.com/vamshikrishnam1/task-performance/internal/domain"

// Summarize folds a report's team data into its headline numbers. An empty
// map yields an all-zero summary.
func Summarize(teamData map[domain.Member]domain.TeamMemberMetrics) domain.ReportSummary {
	summary := domain.ReportSummary{TeamSize: len(teamData)}
	if len(teamData) == 0 {
		return summary
	}

	var sumTCR, sumTPR float64
	for _, m := range teamData {
		summary.TotalTasks += m.Assigned
		summary.TotalCompleted += m.Completed
		sumTCR += m.TCR
		sumTPR += m.TPR
	}

	n := float64(len(teamData))
	summary.AvgTCR = round1(sumTCR / n)
	summary.AvgTPR = round1(sumTPR / n)

	return summary
}

// Classify maps a percentage to its performance tier. Ties at the 80 and 60
// boundaries resolve to the higher tier. Used uniformly for TCR and TPR.
func Classify(value float64) string {
	switch {
	case value >= 80:
		return domain.TierExcellent
	case value >= 60:
		return domain.TierGood
	default:
		return domain.TierNeedsImprovement
	}
}
