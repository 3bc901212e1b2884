package sales

import (
	"time"

	"furytails/models"
	"furytails/services/pricing"
)

// Filter presets for the sales views.
const (
	RangeAll    = "all"
	RangeToday  = "today"
	RangeWeek   = "week"  // Monday-start current week
	RangeMonth  = "month" // current calendar month
	RangeYear   = "year"  // current calendar year
	RangeCustom = "custom"
)

// Filter narrows a sales listing by status, settlement and sale date.
type Filter struct {
	Status     string // booking status, empty or "all" keeps every row
	CheckedOut string // "yes" keeps settled rows, "no" keeps the rest
	Range      string // one of the Range presets
	Start      string // "YYYY-MM-DD", custom only
	End        string // "YYYY-MM-DD", custom only
}

func (f Filter) matches(b *models.Booking, now time.Time) bool {
	if f.Status != "" && f.Status != RangeAll && b.Status != f.Status {
		return false
	}
	switch f.CheckedOut {
	case "yes":
		if !b.IsCheckedOut() {
			return false
		}
	case "no":
		if b.IsCheckedOut() {
			return false
		}
	}

	from, to, constrained := f.window(now)
	if !constrained {
		return true
	}
	d, ok := pricing.ParseDate(b.EffectiveDate())
	if !ok {
		return false
	}
	return !d.Before(from) && !d.After(to)
}

func (f Filter) window(now time.Time) (time.Time, time.Time, bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	switch f.Range {
	case RangeToday:
		return today, today, true
	case RangeWeek:
		start, end := weekWindow(now)
		return start, end, true
	case RangeMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1), true
	case RangeYear:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return start, time.Date(now.Year(), 12, 31, 0, 0, 0, 0, time.UTC), true
	case RangeCustom:
		start, okStart := pricing.ParseDate(f.Start)
		end, okEnd := pricing.ParseDate(f.End)
		if !okStart && !okEnd {
			return time.Time{}, time.Time{}, false
		}
		if !okStart {
			start = end
		}
		if !okEnd {
			end = start
		}
		if end.Before(start) {
			start, end = end, start
		}
		return start, end, true
	default:
		return time.Time{}, time.Time{}, false
	}
}
