package service

import (
	"errors"
	"time"

	"trade_gateway/internal/models"
)

// Recognized range selectors.
const (
	RangeToday = "today"
	RangeWeek  = "week"
	RangeMonth = "month"
)

// ErrInvalidRange is returned before any upstream call when the selector is
// not one of today/week/month.
var ErrInvalidRange = errors.New("Invalid history range")

// ResolveRange converts a coarse selector and "now" into a concrete
// [start, end) window. Starts are midnight of the relevant calendar date
// shifted by the broker reporting-timezone offset; end is always now.
func ResolveRange(selector string, now time.Time, brokerOffset time.Duration) (models.TimeWindow, error) {
	var base time.Time

	switch selector {
	case RangeToday:
		base = now
	case RangeWeek:
		base = now.AddDate(0, 0, -7)
	case RangeMonth:
		// calendar-month subtraction, not 30x24h
		base = now.AddDate(0, -1, 0)
	default:
		return models.TimeWindow{}, ErrInvalidRange
	}

	y, m, d := base.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, base.Location()).Add(brokerOffset)

	return models.TimeWindow{Start: start, End: now}, nil
}
