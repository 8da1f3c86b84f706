package dto

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeInvalidID            = "INVALID_ID"
	ErrCodeValidation           = "VALIDATION_ERROR"
	ErrCodeUnknownMember        = "UNKNOWN_MEMBER"
	ErrCodeUnknownOwner         = "UNKNOWN_OWNER"
	ErrCodeMetricsNotCalculated = "METRICS_NOT_CALCULATED"
	ErrCodeInternal             = "INTERNAL_ERROR"
)
