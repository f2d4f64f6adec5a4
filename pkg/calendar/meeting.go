package calendar

// meeting.go: the meeting variable. A meeting owns its index, its
// shrink-only domain of candidate days, and the subset of constraints
// that reference it. The tentative assignment explored during search
// lives in the search state, not here, so a failed branch can never
// leave partial state behind on a meeting.

import "time"

// Meeting is one schedulable entity awaiting a date. Index and bound
// constraints are fixed at construction; only the domain changes, and
// only by shrinking during the propagation passes.
type Meeting struct {
	index  int
	domain *DateDomain
	unary  []UnaryConstraint
	binary []BinaryConstraint
}

// newMeeting builds meeting index with the full [start, end] window and
// partitions the constraint set down to the ones naming this index,
// mirroring how constraints were filtered onto variables upstream.
func newMeeting(index int, start, end time.Time, constraints []Constraint) *Meeting {
	m := &Meeting{
		index:  index,
		domain: NewDateDomain(start, end),
	}
	for _, c := range constraints {
		switch c := c.(type) {
		case UnaryConstraint:
			if c.Variable == index {
				m.unary = append(m.unary, UnaryConstraint{
					Variable: c.Variable,
					Op:       c.Op,
					Date:     midnightUTC(c.Date),
				})
			}
		case BinaryConstraint:
			if c.Left == index || c.Right == index {
				m.binary = append(m.binary, c)
			}
		}
	}
	return m
}

// Index returns the meeting's position in the problem, 0-based.
func (m *Meeting) Index() int { return m.index }

// Domain returns the meeting's current domain. The returned value is
// immutable; propagation replaces the pointer rather than mutating.
func (m *Meeting) Domain() *DateDomain { return m.domain }
