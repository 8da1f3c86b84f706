// Package metrics derives performance percentages from raw weekly counts
// and aggregates them across a report.
package metrics

import "math"

// Defect severity weights. A critical defect costs five times a minor one.
const (
	weightCritical = 5
	weightMajor    = 3
	weightMinor    = 1
)

// RawCounts are one member's entered values for a week.
type RawCounts struct {
	Assigned  int
	Completed int
	Critical  int
	Major     int
	Minor     int
}

// Computed holds the two derived percentages, rounded to 2 decimal places.
type Computed struct {
	TCR float64
	TPR float64
}

// Calculate derives the Task Completion Rate and Task Performance Rate from
// one member's raw counts.
//
//   - TCR is completed/assigned as a percentage, 0 when nothing was assigned.
//   - TPR discounts TCR by the severity-weighted defect score relative to the
//     worst case (all defects critical). With no defects TPR equals TCR.
//
// Completed is not capped at assigned, so both rates can exceed 100 when a
// member completes more tasks than were assigned.
func Calculate(raw RawCounts) Computed {
	if raw.Assigned <= 0 {
		return Computed{TCR: 0, TPR: 0}
	}

	tcr := float64(raw.Completed) / float64(raw.Assigned) * 100

	totalBugs := raw.Critical + raw.Major + raw.Minor
	tpr := tcr
	if totalBugs > 0 {
		weighted := raw.Critical*weightCritical + raw.Major*weightMajor + raw.Minor*weightMinor
		maxWeighted := totalBugs * weightCritical
		tpr = tcr * (1 - float64(weighted)/float64(maxWeighted))
	}

	return Computed{TCR: round2(tcr), TPR: round2(tpr)}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
