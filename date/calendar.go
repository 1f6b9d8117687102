package date

import (
	"iter"
	"time"
)

// IsBusinessDay reports whether d is a weekday. Holiday calendars are not modeled.
func (d Date) IsBusinessDay() bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return true
}

// NextBusinessDay returns d if it is a business day, or the first business day after it.
func (d Date) NextBusinessDay() Date {
	for !d.IsBusinessDay() {
		d = d.Add(1)
	}
	return d
}

// BusinessDays returns an iterator over every business day in r, in chronological order.
//
// An empty range yields nothing.
func (r Range) BusinessDays() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for on := r.From.NextBusinessDay(); !on.After(r.To); on = on.Add(1).NextBusinessDay() {
			if !yield(on) {
				return
			}
		}
	}
}

// BusinessDayList returns the business days of r as a slice.
func (r Range) BusinessDayList() []Date {
	var days []Date
	for on := range r.BusinessDays() {
		days = append(days, on)
	}
	return days
}
