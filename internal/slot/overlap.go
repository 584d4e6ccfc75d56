package slot

import "sportbook/internal/pricing"

// Interval is a half-open [Start, End) span in minutes since midnight.
// End may exceed a day for slots that roll over past midnight.
type Interval struct {
	Start int
	End   int
}

func IntervalOf(start, end string) (Interval, error) {
	s, e, err := pricing.SpanMinutes(start, end)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e}, nil
}

// Overlaps covers partial overlap and containment either way. Intervals that
// only touch at a boundary do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && a.End > b.Start
}

func overlapsAny(candidate Interval, existing []Interval) bool {
	for _, iv := range existing {
		if Overlaps(candidate, iv) {
			return true
		}
	}
	return false
}
