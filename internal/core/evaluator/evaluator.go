// Package evaluator adapts robfig/cron schedules into forward-only occurrence cursors.
package evaluator

import (
	"errors"
	"time"

	"github.com/robfig/cron/v3"
)

// ErrExhausted is returned by Cursor.Next once no further occurrence exists.
var ErrExhausted = errors.New("no more occurrences")

// Parser accepts standard 5-field expressions, an optional leading seconds
// field, descriptors such as @daily, and CRON_TZ= prefixes.
var Parser = cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Options configures a cursor.
type Options struct {
	// CurrentDate is the reference instant; occurrences are strictly after it.
	// The zero value means time.Now().
	CurrentDate time.Time
	// Location is the zone the schedule fields are evaluated in. Nil means UTC.
	Location *time.Location
	// EndDate, when set, bounds the cursor: only occurrences strictly before it are produced.
	EndDate *time.Time
}

// Cursor is a stateful iterator over the occurrences of one schedule.
// It only moves forward and must not be shared between goroutines.
type Cursor struct {
	schedule cron.Schedule
	current  time.Time
	end      *time.Time

	pending   time.Time
	peeked    bool
	exhausted bool
}

// Parse parses expr and returns a cursor positioned at opts.CurrentDate.
// Parse errors from the cron parser are returned unchanged.
func Parse(expr string, opts Options) (*Cursor, error) {
	schedule, err := Parser.Parse(expr)
	if err != nil {
		return nil, err
	}
	return NewCursor(schedule, opts), nil
}

// NewCursor wraps an already parsed schedule.
func NewCursor(schedule cron.Schedule, opts Options) *Cursor {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	start := opts.CurrentDate
	if start.IsZero() {
		start = time.Now()
	}
	c := &Cursor{
		schedule: schedule,
		current:  start.In(loc),
	}
	if opts.EndDate != nil {
		end := *opts.EndDate
		c.end = &end
	}
	return c
}

// HasNext reports whether another occurrence exists. It does not advance the cursor.
func (c *Cursor) HasNext() bool {
	if c.exhausted {
		return false
	}
	if c.peeked {
		return true
	}

	// robfig returns the zero time when nothing matches within five years.
	next := c.schedule.Next(c.current)
	if next.IsZero() || !next.After(c.current) {
		c.exhausted = true
		return false
	}
	if c.end != nil && !next.Before(*c.end) {
		c.exhausted = true
		return false
	}

	c.pending = next
	c.peeked = true
	return true
}

// Next advances the cursor and returns the occurrence it moved to.
func (c *Cursor) Next() (time.Time, error) {
	if !c.HasNext() {
		return time.Time{}, ErrExhausted
	}
	c.current = c.pending
	c.peeked = false
	return c.current, nil
}
