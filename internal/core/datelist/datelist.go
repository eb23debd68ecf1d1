// Package datelist turns a cron expression into a bounded list of upcoming occurrences.
package datelist

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/xzzpig/cronlist/internal/core/errs"
	"github.com/xzzpig/cronlist/internal/core/evaluator"
	"github.com/xzzpig/cronlist/internal/core/logger"
)

const (
	// DefaultLimit is used when neither a limit nor an end date is given.
	DefaultLimit = 5
	// MaxEndBoundedDates caps the number of dates returned under an end date.
	MaxEndBoundedDates = 20
	// DefaultTimezone is the zone schedules are evaluated in when none is given.
	DefaultTimezone = "Asia/Tokyo"
)

// Options is the caller-facing evaluation configuration. Every field is optional.
type Options struct {
	// CurrentDate is the reference instant. Defaults to now.
	CurrentDate *time.Time
	// Timezone is an IANA zone name. Defaults to the builder's zone.
	Timezone string
	// EndDate bounds the occurrences. It is honoured by the cursor even when
	// Limit selects the count-limited policy.
	EndDate *time.Time
	// Limit is the maximum number of dates. Takes priority over EndDate.
	Limit *int
}

// Resolved is a fully populated configuration, produced before any iteration.
type Resolved struct {
	CurrentDate time.Time
	Location    *time.Location
	EndDate     *time.Time
	Policy      Policy
}

// Result holds the dates of one build and any warnings raised along the way.
type Result struct {
	Dates    []time.Time
	Warnings []Warning
	Location *time.Location
	Policy   Policy
}

// Builder builds date lists. The zero value is ready to use.
type Builder struct {
	// DefaultTimezone overrides DefaultTimezone when set.
	DefaultTimezone string
	// Now overrides time.Now when set.
	Now func() time.Time
}

// NewBuilder returns a Builder evaluating schedules in defaultTimezone unless a call says otherwise.
func NewBuilder(defaultTimezone string) *Builder {
	return &Builder{DefaultTimezone: defaultTimezone}
}

var defaultBuilder = &Builder{}

// Build builds a date list with the default builder.
func Build(expr string, opts *Options) (*Result, error) {
	return defaultBuilder.Build(expr, opts)
}

func datelistLog() *zap.Logger {
	return logger.Named("core.datelist")
}

// Resolve fills in defaults and selects the stopping policy.
func (b *Builder) Resolve(opts *Options) (Resolved, []Warning, error) {
	if opts == nil {
		opts = &Options{}
	}

	loc, err := b.Location(opts.Timezone)
	if err != nil {
		return Resolved{}, nil, err
	}

	resolved := Resolved{Location: loc}
	if opts.CurrentDate != nil {
		resolved.CurrentDate = *opts.CurrentDate
	} else {
		resolved.CurrentDate = b.now()
	}
	if opts.EndDate != nil {
		end := *opts.EndDate
		resolved.EndDate = &end
	}

	var warnings []Warning
	switch {
	case opts.Limit != nil && *opts.Limit < 0:
		return Resolved{}, nil, fmt.Errorf("%w: limit must not be negative, got %d", errs.ErrInvalidInput, *opts.Limit)
	case opts.Limit != nil && *opts.Limit > 0:
		resolved.Policy = CountLimited{Limit: *opts.Limit}
	case resolved.EndDate != nil:
		resolved.Policy = EndBounded{EndDate: *resolved.EndDate}
	default:
		resolved.Policy = CountLimited{Limit: DefaultLimit}
		warnings = append(warnings, newDefaultLimitWarning())
	}
	return resolved, warnings, nil
}

// Build evaluates expr under opts. A malformed expression fails with the
// cron parser's error, unwrapped.
func (b *Builder) Build(expr string, opts *Options) (*Result, error) {
	resolved, warnings, err := b.Resolve(opts)
	if err != nil {
		return nil, err
	}

	cursor, err := evaluator.Parse(expr, evaluator.Options{
		CurrentDate: resolved.CurrentDate,
		Location:    resolved.Location,
		EndDate:     resolved.EndDate,
	})
	if err != nil {
		return nil, err
	}

	result := &Result{
		Warnings: warnings,
		Location: resolved.Location,
		Policy:   resolved.Policy,
	}
	switch p := resolved.Policy.(type) {
	case CountLimited:
		result.Dates = CollectByCount(cursor, p.Limit)
	case EndBounded:
		dates, truncated := CollectUntilEnd(cursor)
		result.Dates = dates
		if truncated {
			result.Warnings = append(result.Warnings, newTruncatedWarning())
		}
	default:
		return nil, fmt.Errorf("%w: unsupported policy %T", errs.ErrSystem, p)
	}

	l := datelistLog()
	for _, w := range result.Warnings {
		l.Warn(w.Message(), zap.String("code", w.Code), zap.String("expression", expr))
	}
	l.Debug("Built date list",
		zap.String("expression", expr),
		zap.String("timezone", resolved.Location.String()),
		zap.Int("count", len(result.Dates)),
	)
	return result, nil
}

// Location loads tz, or the builder's default zone when tz is empty.
func (b *Builder) Location(tz string) (*time.Location, error) {
	if tz == "" {
		tz = b.DefaultTimezone
	}
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q: %v", errs.ErrInvalidInput, tz, err)
	}
	return loc, nil
}

func (b *Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}
