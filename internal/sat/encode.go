// Package sat gives an independent satisfiability answer for a
// scheduling problem by encoding it to CNF and handing it to the gini
// SAT solver. The encoding is the standard direct one: a boolean
// variable per (meeting, day) pair, exactly-one clauses per meeting,
// and a conflict clause for every pair of days a binary constraint
// forbids. It exists to cross-check the CSP solver's verdicts, not to
// replace its deterministic first-solution search.
package sat

import (
	"fmt"
	"time"

	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"

	"github.com/gitrdm/calsat/pkg/calendar"
)

// Problem carries the same inputs as calendar.Solve.
type Problem struct {
	Meetings    int
	RangeStart  time.Time
	RangeEnd    time.Time
	Constraints []calendar.Constraint
}

// litMapping translates between (meeting, day) pairs and SAT literals.
// Literal numbering is dense: meeting m on day offset d is variable
// m*days + d + 1.
type litMapping struct {
	start time.Time
	days  int
}

func midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newLitMapping(p Problem) (*litMapping, error) {
	start := midnight(p.RangeStart)
	end := midnight(p.RangeEnd)
	if p.Meetings < 0 {
		return nil, fmt.Errorf("%w: meeting count %d is negative", calendar.ErrInvalidInput, p.Meetings)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: range end precedes start", calendar.ErrInvalidInput)
	}
	for _, c := range p.Constraints {
		switch c := c.(type) {
		case calendar.UnaryConstraint:
			if c.Variable < 0 || c.Variable >= p.Meetings {
				return nil, fmt.Errorf("%w: constraint %s out of range", calendar.ErrInvalidInput, c)
			}
		case calendar.BinaryConstraint:
			if c.Left < 0 || c.Left >= p.Meetings || c.Right < 0 || c.Right >= p.Meetings {
				return nil, fmt.Errorf("%w: constraint %s out of range", calendar.ErrInvalidInput, c)
			}
		default:
			return nil, fmt.Errorf("%w: unknown constraint type %T", calendar.ErrInvalidInput, c)
		}
	}
	days := int(end.Sub(start)/(24*time.Hour)) + 1
	return &litMapping{start: start, days: days}, nil
}

// litOf returns the positive literal for "meeting m is scheduled on day
// offset d".
func (lm *litMapping) litOf(m, d int) z.Lit {
	return z.Var(m*lm.days + d + 1).Pos()
}

// dayAt returns the calendar day for an offset.
func (lm *litMapping) dayAt(d int) time.Time {
	return lm.start.AddDate(0, 0, d)
}

// addClauses teaches the whole problem to the solver: exactly-one per
// meeting, unit clauses for days a unary constraint rules out, and a
// binary conflict clause for every forbidden day pair.
func (lm *litMapping) addClauses(g inter.Adder, p Problem) {
	for m := 0; m < p.Meetings; m++ {
		// At least one day per meeting.
		for d := 0; d < lm.days; d++ {
			g.Add(lm.litOf(m, d))
		}
		g.Add(z.LitNull)
		// At most one day per meeting, pairwise.
		for d := 0; d < lm.days; d++ {
			for e := d + 1; e < lm.days; e++ {
				g.Add(lm.litOf(m, d).Not())
				g.Add(lm.litOf(m, e).Not())
				g.Add(z.LitNull)
			}
		}
	}

	for _, c := range p.Constraints {
		switch c := c.(type) {
		case calendar.UnaryConstraint:
			fixed := midnight(c.Date)
			for d := 0; d < lm.days; d++ {
				if !calendar.Consistent(lm.dayAt(d), fixed, c.Op) {
					g.Add(lm.litOf(c.Variable, d).Not())
					g.Add(z.LitNull)
				}
			}
		case calendar.BinaryConstraint:
			if c.Left == c.Right {
				for d := 0; d < lm.days; d++ {
					if !calendar.Consistent(lm.dayAt(d), lm.dayAt(d), c.Op) {
						g.Add(lm.litOf(c.Left, d).Not())
						g.Add(z.LitNull)
					}
				}
				continue
			}
			for d := 0; d < lm.days; d++ {
				for e := 0; e < lm.days; e++ {
					if !calendar.Consistent(lm.dayAt(d), lm.dayAt(e), c.Op) {
						g.Add(lm.litOf(c.Left, d).Not())
						g.Add(lm.litOf(c.Right, e).Not())
						g.Add(z.LitNull)
					}
				}
			}
		}
	}
}

// schedule reads a satisfying model back out as one date per meeting.
func (lm *litMapping) schedule(g inter.S, p Problem) []time.Time {
	out := make([]time.Time, p.Meetings)
	for m := 0; m < p.Meetings; m++ {
		for d := 0; d < lm.days; d++ {
			if g.Value(lm.litOf(m, d)) {
				out[m] = lm.dayAt(d)
				break
			}
		}
	}
	return out
}
