package calendar

// arc.go: the arc consistency pass (AC-3). Every binary constraint is
// turned into two directed arcs, one per direction with the operator
// inverted for the reverse arc. A worklist of arcs is revised until it
// drains: a revision removes from the dependent's domain every day with
// no supporting day left in the support's domain, and a shrunken domain
// re-enqueues the arcs that leaned on it. Domains are finite and only
// shrink, which bounds the number of revisions and guarantees
// termination.

import (
	"time"

	"go.uber.org/zap"
)

// Arc is a directed dependency between two meetings derived from a
// binary constraint: every day in Dependent's domain must have at least
// one day in Support's domain with "dependent Op support" true. The
// forward arc of "L Op R" is Arc{L, R, Op}; the reverse arc is
// Arc{R, L, Op.Invert()}.
type Arc struct {
	Dependent int
	Support   int
	Op        Operator
}

// arcWorklist is a FIFO queue of arcs with structural-equality
// membership, so an arc already waiting for revision is not queued
// twice.
type arcWorklist struct {
	queue  []Arc
	queued map[Arc]bool
}

func newArcWorklist() *arcWorklist {
	return &arcWorklist{queued: make(map[Arc]bool)}
}

func (w *arcWorklist) push(a Arc) {
	if w.queued[a] {
		return
	}
	w.queued[a] = true
	w.queue = append(w.queue, a)
}

func (w *arcWorklist) pop() (Arc, bool) {
	if len(w.queue) == 0 {
		return Arc{}, false
	}
	a := w.queue[0]
	w.queue = w.queue[1:]
	delete(w.queued, a)
	return a, true
}

// arcsOf returns the directed arcs contributed by one binary
// constraint. Degenerate self-referential constraints contribute none;
// they were already handled as per-day filters in the node pass.
func arcsOf(c BinaryConstraint) []Arc {
	if c.Left == c.Right {
		return nil
	}
	return []Arc{
		{Dependent: c.Left, Support: c.Right, Op: c.Op},
		{Dependent: c.Right, Support: c.Left, Op: c.Op.Invert()},
	}
}

// arcConsistency drains the arc worklist over the meetings' domains.
// It returns false as soon as any domain empties: no complete
// assignment can exist then, and the caller may report
// unsatisfiability without searching. Removed days are never part of
// any constraint-satisfying complete assignment, so the pass only
// prunes, it never changes whether a solution exists.
func (s *Solver) arcConsistency(meetings []*Meeting) bool {
	work := newArcWorklist()
	for _, m := range meetings {
		for _, c := range m.binary {
			// Each constraint appears on both endpoint meetings;
			// seed from the left endpoint only to avoid doubling.
			if c.Left != m.index {
				continue
			}
			for _, a := range arcsOf(c) {
				work.push(a)
			}
		}
	}

	for {
		arc, ok := work.pop()
		if !ok {
			return true
		}
		s.stats.ArcsRevised++

		dep := meetings[arc.Dependent]
		sup := meetings[arc.Support]
		removed := revise(dep, sup, arc.Op)
		if removed == 0 {
			continue
		}
		s.stats.ArcPruned += int64(removed)
		s.logger.Debug("arc revision pruned",
			zap.Int("dependent", arc.Dependent),
			zap.Int("support", arc.Support),
			zap.Stringer("op", arc.Op),
			zap.Int("removed", removed),
			zap.Stringer("domain", dep.domain))
		if dep.domain.IsEmpty() {
			return false
		}

		// Dependent shrank: any arc that counted on it for support
		// must be rechecked. The one exception is the exact reverse
		// of the arc just revised: a day removed here lacked support
		// under that constraint, so it cannot have been the sole
		// support for any surviving day on the other side. An arc
		// between the same pair under a different constraint gets no
		// such guarantee and is re-enqueued like any other.
		for _, c := range dep.binary {
			for _, back := range arcsOf(c) {
				if back.Support != arc.Dependent {
					continue
				}
				if back.Dependent == arc.Support && back.Op == arc.Op.Invert() {
					continue
				}
				work.push(back)
			}
		}
	}
}

// revise removes from dep's domain every day lacking a supporting day
// in sup's domain under "dep Op sup". Returns the number of days
// removed.
func revise(dep, sup *Meeting, op Operator) int {
	before := dep.domain.Count()
	next := dep.domain.Filter(func(day time.Time) bool {
		supported := false
		sup.domain.IterateDates(func(other time.Time) {
			if !supported && Consistent(day, other, op) {
				supported = true
			}
		})
		return supported
	})
	removed := before - next.Count()
	if removed > 0 {
		dep.domain = next
	}
	return removed
}
