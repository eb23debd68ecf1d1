// Package i18n provides internationalization support for the application.
package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Supported locales.
const (
	LocaleEnglish  = "en"
	LocaleJapanese = "ja"
)

var (
	bundle     *i18n.Bundle
	bundleOnce sync.Once
)

// Init loads the embedded message files. Call it once at startup.
func Init() error {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, locale := range []string{LocaleEnglish, LocaleJapanese} {
		path := "locales/" + locale + ".toml"
		if _, err := b.LoadMessageFileFS(localeFS, path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	bundle = b
	return nil
}

// NewLocalizer creates a localizer for the given languages, most preferred first.
func NewLocalizer(langs ...string) *i18n.Localizer {
	bundleOnce.Do(func() {
		if bundle != nil {
			return
		}
		if err := Init(); err != nil {
			panic(err)
		}
	})
	return i18n.NewLocalizer(bundle, langs...)
}

// ParseLocale maps an Accept-Language value or locale name to a supported locale.
func ParseLocale(s string) string {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "ja") {
		return LocaleJapanese
	}
	return LocaleEnglish
}

// T translates a message with the given localizer, falling back to the key.
func T(localizer *i18n.Localizer, msgID string) string {
	return TWithData(localizer, msgID, nil)
}

// TWithData translates a message with template data
func TWithData(localizer *i18n.Localizer, msgID string, data map[string]any) string {
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    msgID,
		TemplateData: data,
	})
	if err != nil {
		return msgID
	}
	return msg
}

// contextKey is the type for keys used to store values in context.Context
type contextKey string

// ContextKeyLocalizer is the key for the Localizer in context.Context
const ContextKeyLocalizer contextKey = "i18n.localizer"

// WithLocalizer stores a Localizer in context.Context
func WithLocalizer(ctx context.Context, localizer *i18n.Localizer) context.Context {
	return context.WithValue(ctx, ContextKeyLocalizer, localizer)
}

// LocalizerFromContext returns the Localizer stored in ctx, or an English one.
func LocalizerFromContext(ctx context.Context) *i18n.Localizer {
	if localizer, ok := ctx.Value(ContextKeyLocalizer).(*i18n.Localizer); ok {
		return localizer
	}
	return NewLocalizer(LocaleEnglish)
}

// Error is a translatable error carrying an HTTP status.
type Error struct {
	// MsgID is the key for the translated message
	MsgID string
	// Data is the data for the translation template (optional)
	Data map[string]any
	// StatusCode is the HTTP status code (default 400)
	StatusCode int
	// Cause is the original error (optional)
	Cause error
}

// Error returns the message ID and cause, for logs.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.MsgID, e.Cause)
	}
	return e.MsgID
}

// Unwrap returns the original error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Translate translates the error message using the given localizer
func (e *Error) Translate(localizer *i18n.Localizer) string {
	return TWithData(localizer, e.MsgID, e.Data)
}

// NewError creates a 400 Error.
func NewError(msgID string, data map[string]any) *Error {
	return &Error{
		MsgID:      msgID,
		Data:       data,
		StatusCode: 400,
	}
}

// WithStatus sets the HTTP status code
func (e *Error) WithStatus(code int) *Error {
	e.StatusCode = code
	return e
}

// WithCause sets the original error
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

// AsError reports whether err wraps an *Error.
func AsError(err error) (*Error, bool) {
	var i18nErr *Error
	if errors.As(err, &i18nErr) {
		return i18nErr, true
	}
	return nil, false
}
