package calendar

// search.go: depth-first backtracking over the post-propagation
// domains. Variables are assigned strictly in ascending index order and
// candidate days are tried in ascending calendar order, so the first
// solution found is deterministic. Propagation has already frozen the
// domains; search tracks its own assignment vector and undoes each
// failed assignment before trying the next candidate, so no partial
// state survives a dead branch.

import (
	"context"
	"time"
)

// backtrack tries to extend the partial assignment assignment[0:idx] to
// a complete one. It returns found=true with assignment fully written
// when a satisfying schedule exists down this branch, and found=false
// after exhausting every candidate for idx. The only error is context
// cancellation.
func (s *Solver) backtrack(ctx context.Context, meetings []*Meeting, constraints []Constraint, assignment []time.Time, idx int) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	if idx == len(meetings) {
		return true, nil
	}

	candidates := meetings[idx].domain.Dates()
	for _, day := range candidates {
		assignment[idx] = day
		s.stats.Assignments++
		if consistentSoFar(constraints, assignment, idx) {
			found, err := s.backtrack(ctx, meetings, constraints, assignment, idx+1)
			if err != nil {
				return false, err
			}
			if found {
				return true, nil
			}
		}
		assignment[idx] = time.Time{}
		s.stats.Backtracks++
	}
	return false, nil
}

// consistentSoFar checks every constraint whose referenced meetings are
// all assigned, i.e. all indices <= idx since assignment proceeds in
// ascending order. Constraints touching an unassigned meeting are
// vacuously fine for now; they get checked the moment their last
// meeting is assigned.
func consistentSoFar(constraints []Constraint, assignment []time.Time, idx int) bool {
	for _, c := range constraints {
		switch c := c.(type) {
		case UnaryConstraint:
			if c.Variable <= idx && !Consistent(assignment[c.Variable], c.Date, c.Op) {
				return false
			}
		case BinaryConstraint:
			if c.Left <= idx && c.Right <= idx && !Consistent(assignment[c.Left], assignment[c.Right], c.Op) {
				return false
			}
		}
	}
	return true
}
