package datelist

import "time"

// Policy decides when a build stops pulling occurrences from the cursor.
// It is either CountLimited or EndBounded.
type Policy interface {
	isPolicy()
}

// CountLimited stops after Limit occurrences.
type CountLimited struct {
	Limit int
}

// EndBounded stops at EndDate, subject to MaxEndBoundedDates.
type EndBounded struct {
	EndDate time.Time
}

func (CountLimited) isPolicy() {}
func (EndBounded) isPolicy()   {}
