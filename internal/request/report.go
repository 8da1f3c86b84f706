package request

// TeamMemberEntry carries one member's counts plus, when the client already
// ran a calculation, the resulting percentages. TCR and TPR travel together:
// an entry with neither is an uncalculated member awaiting recomputation.
type TeamMemberEntry struct {
	Assigned  int      `json:"assigned" validate:"min=0"`
	Completed int      `json:"completed" validate:"min=0"`
	Critical  int      `json:"critical" validate:"min=0"`
	Major     int      `json:"major" validate:"min=0"`
	Minor     int      `json:"minor" validate:"min=0"`
	TCR       *float64 `json:"tcr,omitempty" validate:"omitempty,min=0"`
	TPR       *float64 `json:"tpr,omitempty" validate:"omitempty,min=0"`
}

type CreateReportRequest struct {
	WeekOwner string                     `json:"weekOwner" validate:"required,min=1,max=255"`
	WeekStart string                     `json:"weekStart" validate:"required,min=1,max=64"`
	WeekEnd   string                     `json:"weekEnd" validate:"required,min=1,max=64"`
	TeamData  map[string]TeamMemberEntry `json:"teamData" validate:"required,dive"`
}

type RawCountsEntry struct {
	Assigned  int `json:"assigned" validate:"min=0"`
	Completed int `json:"completed" validate:"min=0"`
	Critical  int `json:"critical" validate:"min=0"`
	Major     int `json:"major" validate:"min=0"`
	Minor     int `json:"minor" validate:"min=0"`
}

type PreviewMetricsRequest struct {
	TeamData map[string]RawCountsEntry `json:"teamData" validate:"required,min=1,dive"`
}
