package calendar

// node.go: the node consistency pass. Each meeting's domain is filtered
// against the meeting's own unary constraints. Meetings never interact
// here, so no propagation is needed and the pass runs exactly once per
// meeting; for the same reason the pass may fan out across a worker
// pool with results identical to the sequential loop.

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gitrdm/calsat/internal/parallel"
)

// nodeConsistency filters every meeting's domain against its unary
// constraints. With WithParallelNodeConsistency set, the per-meeting
// filters run on a pool; each worker writes only its own meeting, so no
// locking is needed.
func (s *Solver) nodeConsistency(ctx context.Context, meetings []*Meeting) error {
	pruned := make([]int64, len(meetings))

	if s.workers == 0 || len(meetings) < 2 {
		for i, m := range meetings {
			pruned[i] = reviseUnary(m)
		}
	} else {
		pool := parallel.NewPool(s.workers)
		defer pool.Shutdown()

		var wg sync.WaitGroup
		for i, m := range meetings {
			i, m := i, m
			wg.Add(1)
			if err := pool.Submit(ctx, func() {
				defer wg.Done()
				pruned[i] = reviseUnary(m)
			}); err != nil {
				wg.Done()
				wg.Wait()
				return err
			}
		}
		wg.Wait()
	}

	for i, m := range meetings {
		s.stats.UnaryPruned += pruned[i]
		if pruned[i] > 0 {
			s.logger.Debug("node consistency pruned",
				zap.Int("meeting", i),
				zap.Int64("removed", pruned[i]),
				zap.Stringer("domain", m.domain))
		}
	}
	return nil
}

// reviseUnary shrinks one meeting's domain to the days satisfying all
// of its unary constraints, plus any degenerate binary constraint that
// names the meeting on both sides (those reduce to a per-day test).
// Returns the number of days removed.
func reviseUnary(m *Meeting) int64 {
	before := m.domain.Count()
	next := m.domain.Filter(func(day time.Time) bool {
		for _, c := range m.unary {
			if !Consistent(day, c.Date, c.Op) {
				return false
			}
		}
		for _, c := range m.binary {
			if c.Left == m.index && c.Right == m.index && !Consistent(day, day, c.Op) {
				return false
			}
		}
		return true
	})
	m.domain = next
	return int64(before - next.Count())
}
