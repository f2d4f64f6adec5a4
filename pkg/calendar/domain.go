// Package calendar solves calendar satisfaction problems: scheduling n
// meetings inside an inclusive date range subject to unary and binary
// date constraints. This file defines the DateDomain, an immutable
// bitset over the candidate days of the scheduling window.
package calendar

import (
	"fmt"
	"math/bits"
	"strings"
	"time"
)

// dayLayout is the canonical textual form for candidate dates.
const dayLayout = "2006-01-02"

// midnightUTC truncates a date to midnight UTC so that candidate days
// compare and subtract exactly.
func midnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole-day distance from a to b. Both arguments
// must already be midnight UTC.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

// DateDomain is the set of candidate days still viable for one meeting.
// Days are stored as a bitset over offsets from the window start: bit i
// represents start+i days. Domains are immutable - pruning operations
// return new domains rather than modifying in place, so a snapshot taken
// before propagation stays valid afterwards.
//
// An empty domain represents a provably unsatisfiable variable.
type DateDomain struct {
	start time.Time // midnight UTC of the first day in the window
	n     int       // window length in days (inclusive range)
	words []uint64  // bit i set means start+i days is still viable
}

// NewDateDomain creates a full domain over the inclusive range
// [start, end]. Both bounds are truncated to midnight UTC. The caller
// must ensure start <= end.
func NewDateDomain(start, end time.Time) *DateDomain {
	start = midnightUTC(start)
	end = midnightUTC(end)
	n := daysBetween(start, end) + 1
	words := make([]uint64, (n+63)/64)
	for i := 0; i < n; i++ {
		words[i/64] |= 1 << uint(i%64)
	}
	return &DateDomain{start: start, n: n, words: words}
}

// offsetOf maps a day to its bit index, or -1 if outside the window.
func (d *DateDomain) offsetOf(day time.Time) int {
	off := daysBetween(d.start, midnightUTC(day))
	if off < 0 || off >= d.n {
		return -1
	}
	return off
}

// dateAt returns the day for a bit index.
func (d *DateDomain) dateAt(off int) time.Time {
	return d.start.AddDate(0, 0, off)
}

// Count returns the number of viable days left in the domain.
func (d *DateDomain) Count() int {
	c := 0
	for _, w := range d.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// IsEmpty reports whether no viable day remains.
func (d *DateDomain) IsEmpty() bool {
	for _, w := range d.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Has reports whether the given day is still viable.
func (d *DateDomain) Has(day time.Time) bool {
	off := d.offsetOf(day)
	if off < 0 {
		return false
	}
	return (d.words[off/64]>>uint(off%64))&1 == 1
}

// Remove returns a new domain without the given day. Removing a day that
// is absent (or outside the window) yields an equivalent domain.
func (d *DateDomain) Remove(day time.Time) *DateDomain {
	off := d.offsetOf(day)
	if off < 0 || (d.words[off/64]>>uint(off%64))&1 == 0 {
		return d
	}
	words := make([]uint64, len(d.words))
	copy(words, d.words)
	words[off/64] &^= 1 << uint(off%64)
	return &DateDomain{start: d.start, n: d.n, words: words}
}

// Filter returns a new domain holding only the days for which keep
// returns true. The original domain is untouched.
func (d *DateDomain) Filter(keep func(day time.Time) bool) *DateDomain {
	words := make([]uint64, len(d.words))
	d.iterateOffsets(func(off int) {
		if keep(d.dateAt(off)) {
			words[off/64] |= 1 << uint(off%64)
		}
	})
	return &DateDomain{start: d.start, n: d.n, words: words}
}

// iterateOffsets visits the set bit indices in ascending order.
func (d *DateDomain) iterateOffsets(f func(off int)) {
	for i, w := range d.words {
		for w != 0 {
			low := w & -w
			f(i*64 + bits.TrailingZeros64(w))
			w &^= low
		}
	}
}

// IterateDates calls f for each viable day in ascending calendar order.
// The ascending order is what makes the solver's value ordering
// deterministic, so it must not change.
func (d *DateDomain) IterateDates(f func(day time.Time)) {
	d.iterateOffsets(func(off int) { f(d.dateAt(off)) })
}

// Dates returns the viable days as an ascending slice.
func (d *DateDomain) Dates() []time.Time {
	out := make([]time.Time, 0, d.Count())
	d.IterateDates(func(day time.Time) { out = append(out, day) })
	return out
}

// First returns the earliest viable day, or false if the domain is empty.
func (d *DateDomain) First() (time.Time, bool) {
	for i, w := range d.words {
		if w != 0 {
			return d.dateAt(i*64 + bits.TrailingZeros64(w)), true
		}
	}
	return time.Time{}, false
}

// Equal reports whether both domains cover the same window and hold
// exactly the same days.
func (d *DateDomain) Equal(other *DateDomain) bool {
	if other == nil || d.n != other.n || !d.start.Equal(other.start) {
		return false
	}
	for i := range d.words {
		if d.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// String renders the domain for logs and failure messages, e.g.
// "{2023-01-01..2023-01-05}" for a contiguous run or an explicit list.
func (d *DateDomain) String() string {
	dates := d.Dates()
	if len(dates) == 0 {
		return "{}"
	}
	if len(dates) > 1 && d.contiguous(dates) {
		return fmt.Sprintf("{%s..%s}", dates[0].Format(dayLayout), dates[len(dates)-1].Format(dayLayout))
	}
	var b strings.Builder
	b.WriteString("{")
	for i, day := range dates {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(day.Format(dayLayout))
	}
	b.WriteString("}")
	return b.String()
}

func (d *DateDomain) contiguous(dates []time.Time) bool {
	for i := 1; i < len(dates); i++ {
		if daysBetween(dates[i-1], dates[i]) != 1 {
			return false
		}
	}
	return true
}
