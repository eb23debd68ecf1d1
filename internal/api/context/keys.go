package context

// Context keys for gin context values
const (
	ContextKeyLocale    = "locale"
	ContextKeyLocalizer = "localizer"
	ContextKeyRequestID = "request_id"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"
