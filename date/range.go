package date

import "fmt"

// Range represents a closed range of dates, both boundaries included.
//
// A Range whose From is after its To is empty.
type Range struct {
	From Date `json:"from"`
	To   Date `json:"to"`
}

// NewRange returns the range [from, to].
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Empty reports whether no date is included in the range.
func (r Range) Empty() bool { return r.From.After(r.To) }

// Active reports whether w is set and contains on.
//
// A nil window is never active.
func Active(w *Range, on Date) bool { return w != nil && w.Contains(on) }

// String returns "from..to".
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }

// Identifier compute a unique identifier for the Range, usable as a cache key.
func (r Range) Identifier() string { return fmt.Sprintf("%s_%s", r.From, r.To) }
