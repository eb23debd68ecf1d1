package datelist

import "fmt"

// Warning codes double as i18n message IDs.
const (
	WarningDefaultLimit     = "warning_default_limit"
	WarningEndDateTruncated = "warning_end_date_truncated"
)

// Warning is a non-fatal diagnostic raised while building a date list.
type Warning struct {
	Code string
	Data map[string]any
}

func newDefaultLimitWarning() Warning {
	return Warning{Code: WarningDefaultLimit, Data: map[string]any{"Limit": DefaultLimit}}
}

func newTruncatedWarning() Warning {
	return Warning{Code: WarningEndDateTruncated, Data: map[string]any{"Max": MaxEndBoundedDates}}
}

// Message returns the English text of the warning.
func (w Warning) Message() string {
	switch w.Code {
	case WarningDefaultLimit:
		return fmt.Sprintf("no limit specified, defaulting to %d", DefaultLimit)
	case WarningEndDateTruncated:
		return fmt.Sprintf("at most %d dates are returned for an end date; set a limit to get more", MaxEndBoundedDates)
	default:
		return w.Code
	}
}
