package sat

// solve.go: the gini-facing half of the cross-check. Clause
// construction lives in encode.go; this file owns the solver lifecycle
// and result interpretation.

import (
	"time"

	"github.com/go-air/gini"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// Satisfiable reports whether any schedule exists for the problem. It
// answers the same question as calendar.Solve's found flag, by a
// completely different algorithm, which is what makes it useful as an
// oracle.
func Satisfiable(p Problem) (bool, error) {
	_, ok, err := Schedule(p)
	return ok, err
}

// Schedule returns some satisfying schedule, or found=false when none
// exists. Unlike calendar.Solve it promises nothing about which
// solution comes back; SAT search order is not calendar order.
func Schedule(p Problem) ([]time.Time, bool, error) {
	lm, err := newLitMapping(p)
	if err != nil {
		return nil, false, err
	}
	if p.Meetings == 0 {
		return []time.Time{}, true, nil
	}

	g := gini.New()
	lm.addClauses(g, p)

	switch g.Solve() {
	case satisfiable:
		return lm.schedule(g, p), true, nil
	case unsatisfiable:
		return nil, false, nil
	default:
		// Solve without a deadline never returns unknown.
		return nil, false, nil
	}
}
