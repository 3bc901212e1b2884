package booking

import (
	"time"

	"furytails/services/pricing"
)

// Date filter presets accepted by the booking list endpoints.
const (
	FilterAll        = "all"
	FilterToday      = "today"
	FilterTomorrow   = "tomorrow"
	FilterNext7Days  = "next7days"
	FilterNext30Days = "next30days"
	FilterPast7Days  = "past7days"
	FilterPast30Days = "past30days"
	FilterCustom     = "custom"
)

// DateFilter narrows a booking listing to a date window. Custom filters
// carry explicit inclusive bounds; presets resolve relative to now.
type DateFilter struct {
	Preset string
	Start  string // "YYYY-MM-DD", custom only
	End    string // "YYYY-MM-DD", custom only
}

// Window resolves the filter to an inclusive [from, to] civil-date pair.
// The second return is false when the filter does not constrain dates.
func (f DateFilter) Window(now time.Time) (time.Time, time.Time, bool) {
	today := truncateToDay(now)
	switch f.Preset {
	case FilterToday:
		return today, today, true
	case FilterTomorrow:
		t := today.AddDate(0, 0, 1)
		return t, t, true
	case FilterNext7Days:
		return today, today.AddDate(0, 0, 7), true
	case FilterNext30Days:
		return today, today.AddDate(0, 0, 30), true
	case FilterPast7Days:
		return today.AddDate(0, 0, -7), today, true
	case FilterPast30Days:
		return today.AddDate(0, 0, -30), today, true
	case FilterCustom:
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

// Matches reports whether a "YYYY-MM-DD" date falls inside the filter
// window. Unparseable dates only pass an unconstrained filter.
func (f DateFilter) Matches(date string, now time.Time) bool {
	from, to, constrained := f.Window(now)
	if !constrained {
		return true
	}
	d, ok := pricing.ParseDate(date)
	if !ok {
		return false
	}
	return !d.Before(from) && !d.After(to)
}

// truncateToDay maps an instant to its civil date. Dates compare in UTC
// to match the parsed document dates.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
