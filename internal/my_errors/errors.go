package my_errors

import "errors"

// Sentinel my_errors for business logic
var (
	// Report my_errors
	ErrReportNotFound = errors.New("report not found")

	// Validation my_errors
	ErrEmptyField           = errors.New("required field is empty")
	ErrUnknownMember        = errors.New("unknown team member")
	ErrUnknownWeekOwner     = errors.New("unknown week owner")
	ErrNegativeCount        = errors.New("counts must not be negative")
	ErrMetricsNotCalculated = errors.New("metrics not calculated")
	ErrInvalidInput         = errors.New("invalid input")
)
