// Package context holds gin middleware and accessors for per-request values.
package context

import (
	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	i18npkg "github.com/xzzpig/cronlist/internal/i18n"
)

// LocaleMiddleware picks a locale from the lang query parameter or the
// Accept-Language header, falling back to defaultLocale, and stores the
// Localizer in both the gin context and the request context.
func LocaleMiddleware(defaultLocale string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Query("lang")
		if lang == "" {
			lang = c.GetHeader("Accept-Language")
		}
		if lang == "" {
			lang = defaultLocale
		}
		locale := i18npkg.ParseLocale(lang)
		localizer := i18npkg.NewLocalizer(locale)

		c.Set(ContextKeyLocale, locale)
		c.Set(ContextKeyLocalizer, localizer)
		c.Request = c.Request.WithContext(i18npkg.WithLocalizer(c.Request.Context(), localizer))

		c.Next()
	}
}

// GetLocalizer retrieves the Localizer from Gin context
func GetLocalizer(c *gin.Context) *i18n.Localizer {
	if localizer, exists := c.Get(ContextKeyLocalizer); exists {
		return localizer.(*i18n.Localizer)
	}
	return i18npkg.LocalizerFromContext(c.Request.Context())
}

// GetLocale returns the locale chosen by LocaleMiddleware, or English.
func GetLocale(c *gin.Context) string {
	if locale := c.GetString(ContextKeyLocale); locale != "" {
		return locale
	}
	return i18npkg.LocaleEnglish
}
