package utils

import (
	"time"

	"github.com/jinzhu/now"
)

// Date bucket names accepted by list endpoints
const (
	RangeAll   = "all"
	RangeToday = "today"
	RangeWeek  = "week"
	RangeMonth = "month"
)

// BucketRange returns the [start, end) boundaries for a named date bucket
// relative to ref. ok is false for "all" (and anything unrecognized), meaning
// no date filter should be applied.
func BucketRange(bucket string, ref time.Time) (start, end time.Time, ok bool) {
	n := now.With(ref)

	switch bucket {
	case RangeToday:
		return n.BeginningOfDay(), n.EndOfDay(), true
	case RangeWeek:
		return n.BeginningOfWeek(), n.EndOfWeek(), true
	case RangeMonth:
		return n.BeginningOfMonth(), n.EndOfMonth(), true
	default:
		return time.Time{}, time.Time{}, false
	}
}
