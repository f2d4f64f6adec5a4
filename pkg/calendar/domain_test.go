package calendar

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDomainBasics(t *testing.T) {
	d := NewDateDomain(day(2023, time.January, 1), day(2023, time.January, 5))
	if d.Count() != 5 {
		t.Fatalf("expected 5 days, got %d", d.Count())
	}
	if !d.Has(day(2023, time.January, 3)) {
		t.Fatalf("expected domain to contain Jan 3")
	}
	if d.Has(day(2023, time.January, 6)) {
		t.Fatalf("Jan 6 is outside the window")
	}

	d2 := d.Remove(day(2023, time.January, 3))
	if d2.Has(day(2023, time.January, 3)) {
		t.Fatalf("expected Jan 3 removed")
	}
	if !d.Has(day(2023, time.January, 3)) {
		t.Fatalf("original domain must be untouched")
	}
	if d2.Count() != 4 {
		t.Fatalf("expected 4 days after removal, got %d", d2.Count())
	}
}

func TestDomainSingleDayWindow(t *testing.T) {
	d := NewDateDomain(day(2023, time.March, 7), day(2023, time.March, 7))
	if d.Count() != 1 {
		t.Fatalf("expected 1 day, got %d", d.Count())
	}
	first, ok := d.First()
	if !ok || !first.Equal(day(2023, time.March, 7)) {
		t.Fatalf("unexpected first day %v", first)
	}
	if !d.Remove(day(2023, time.March, 7)).IsEmpty() {
		t.Fatalf("expected empty domain")
	}
}

func TestDomainIteratesAscending(t *testing.T) {
	d := NewDateDomain(day(2023, time.January, 28), day(2023, time.February, 3))
	var got []time.Time
	d.IterateDates(func(dd time.Time) { got = append(got, dd) })
	if len(got) != 7 {
		t.Fatalf("expected 7 days across the month boundary, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if !got[i].After(got[i-1]) {
			t.Fatalf("dates not ascending at %d: %v then %v", i, got[i-1], got[i])
		}
	}
	if !got[3].Equal(day(2023, time.January, 31)) {
		t.Fatalf("expected Jan 31 at position 3, got %v", got[3])
	}
}

func TestDomainFilter(t *testing.T) {
	d := NewDateDomain(day(2023, time.January, 1), day(2023, time.January, 10))
	weekdays := d.Filter(func(dd time.Time) bool {
		wd := dd.Weekday()
		return wd != time.Saturday && wd != time.Sunday
	})
	if weekdays.Count() != 7 {
		t.Fatalf("expected 7 weekdays in Jan 1-10 2023, got %d", weekdays.Count())
	}
	if weekdays.Has(day(2023, time.January, 1)) {
		t.Fatalf("Jan 1 2023 is a Sunday and should be filtered")
	}
	if d.Count() != 10 {
		t.Fatalf("filter must not mutate the receiver")
	}
}

func TestDomainRemoveOutsideWindow(t *testing.T) {
	d := NewDateDomain(day(2023, time.January, 1), day(2023, time.January, 3))
	d2 := d.Remove(day(2024, time.June, 1))
	if !d.Equal(d2) {
		t.Fatalf("removing a day outside the window must be a no-op")
	}
}

func TestDomainString(t *testing.T) {
	d := NewDateDomain(day(2023, time.January, 1), day(2023, time.January, 3))
	if got := d.String(); got != "{2023-01-01..2023-01-03}" {
		t.Fatalf("unexpected contiguous rendering %q", got)
	}
	gap := d.Remove(day(2023, time.January, 2))
	if got := gap.String(); got != "{2023-01-01,2023-01-03}" {
		t.Fatalf("unexpected list rendering %q", got)
	}
	if got := gap.Remove(day(2023, time.January, 1)).Remove(day(2023, time.January, 3)).String(); got != "{}" {
		t.Fatalf("unexpected empty rendering %q", got)
	}
}

func TestDomainNormalizesTimes(t *testing.T) {
	noon := time.Date(2023, time.January, 1, 12, 30, 0, 0, time.UTC)
	d := NewDateDomain(noon, day(2023, time.January, 3))
	if d.Count() != 3 {
		t.Fatalf("expected time of day to be ignored, got %d days", d.Count())
	}
	if !d.Has(time.Date(2023, time.January, 2, 23, 59, 0, 0, time.UTC)) {
		t.Fatalf("Has must compare by calendar day")
	}
}
