package i18n

// Error message keys
const (
	ErrGeneric            = "error_generic"
	ErrInvalidInput       = "error_invalid_input"
	ErrInvalidSchedule    = "error_invalid_schedule"
	ErrInvalidTimezone    = "error_invalid_timezone"
	ErrInvalidDate        = "error_invalid_date"
	ErrMissingParameter   = "error_missing_parameter"
	ErrInvalidRequestBody = "error_invalid_request_body"
)

// Warning message keys, shared with datelist warning codes.
const (
	WarningDefaultLimit     = "warning_default_limit"
	WarningEndDateTruncated = "warning_end_date_truncated"
)
