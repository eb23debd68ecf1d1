package datelist

import "time"

// Cursor is the occurrence iterator the collectors drain.
// *evaluator.Cursor satisfies it.
type Cursor interface {
	HasNext() bool
	Next() (time.Time, error)
}

// CollectByCount takes at most maxCount occurrences from c.
// It stops early once c is exhausted and never pads the result.
func CollectByCount(c Cursor, maxCount int) []time.Time {
	if maxCount <= 0 {
		return []time.Time{}
	}
	dates := make([]time.Time, 0, maxCount)
	for range maxCount {
		if !c.HasNext() {
			break
		}
		next, err := c.Next()
		if err != nil {
			break
		}
		dates = append(dates, next)
	}
	return dates
}

// CollectUntilEnd drains c until it is exhausted or MaxEndBoundedDates
// occurrences have been taken. truncated is true when the cap was hit and
// c still had more to give.
func CollectUntilEnd(c Cursor) (dates []time.Time, truncated bool) {
	dates = make([]time.Time, 0, MaxEndBoundedDates)
	for len(dates) < MaxEndBoundedDates && c.HasNext() {
		next, err := c.Next()
		if err != nil {
			break
		}
		dates = append(dates, next)
	}
	return dates, len(dates) >= MaxEndBoundedDates && c.HasNext()
}
