package calendar

// solve.go: the public entry point. Solve validates its inputs, builds
// the meeting variables, runs node consistency then arc consistency
// over the constraint graph, and finally backtracks over the pruned
// domains for the first satisfying assignment.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Solver errors.
var (
	// ErrInvalidInput flags a malformed problem: negative meeting
	// count, inverted date range, or a constraint naming a meeting
	// index outside [0, n). Detected before any domain is built.
	ErrInvalidInput = errors.New("invalid scheduling input")
)

// Solver runs calendar satisfaction problems. The zero-value
// configuration (via NewSolver with no options) is a silent,
// single-threaded solver. A Solver may be reused across problems but
// not concurrently: Stats are per-run state.
type Solver struct {
	logger  *zap.Logger
	workers int // non-zero enables parallel node consistency; negative means pool default
	stats   Stats
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger attaches a structured logger. Propagation progress is
// logged at Debug, solve outcomes at Info.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Solver) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithParallelNodeConsistency fans the node consistency pass out over a
// worker pool. Each meeting's unary filter is independent of every
// other meeting, so the result is identical to the sequential pass.
// workers <= 0 picks one worker per CPU.
func WithParallelNodeConsistency(workers int) Option {
	return func(s *Solver) {
		if workers <= 0 {
			workers = -1 // pool default: NumCPU
		}
		s.workers = workers
	}
}

// NewSolver builds a Solver with the given options.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats returns the counters from the most recent Solve call.
func (s *Solver) Stats() Stats { return s.stats }

// Solve schedules nMeetings meetings on days in the inclusive range
// [rangeStart, rangeEnd] under the given constraints. It returns the
// first satisfying assignment under ascending variable and ascending
// date ordering - index i of the result is meeting i's date - or
// found=false when the problem is provably unsatisfiable. Input dates
// are compared by calendar day; times of day are ignored.
//
// Unsatisfiability is an expected outcome, not an error. Errors are
// reserved for invalid input (ErrInvalidInput) and context
// cancellation. Given identical inputs the result is identical,
// including which solution is returned when several exist.
func (s *Solver) Solve(ctx context.Context, nMeetings int, rangeStart, rangeEnd time.Time, constraints []Constraint) ([]time.Time, bool, error) {
	s.stats = Stats{}

	start := midnightUTC(rangeStart)
	end := midnightUTC(rangeEnd)
	cs, err := validate(nMeetings, start, end, constraints)
	if err != nil {
		return nil, false, err
	}
	if nMeetings == 0 {
		return []time.Time{}, true, nil
	}

	meetings := make([]*Meeting, nMeetings)
	for i := range meetings {
		meetings[i] = newMeeting(i, start, end, cs)
	}

	if err := s.nodeConsistency(ctx, meetings); err != nil {
		return nil, false, err
	}
	if !s.arcConsistency(meetings) {
		// A domain emptied during propagation: no assignment can
		// exist, so skip the search entirely.
		s.logger.Info("unsatisfiable during propagation",
			zap.Int("meetings", nMeetings),
			zap.Int64("pruned", s.stats.UnaryPruned+s.stats.ArcPruned))
		return nil, false, nil
	}

	assignment := make([]time.Time, nMeetings)
	found, err := s.backtrack(ctx, meetings, cs, assignment, 0)
	if err != nil {
		return nil, false, err
	}
	if !found {
		s.logger.Info("unsatisfiable after search",
			zap.Int("meetings", nMeetings),
			zap.Int64("backtracks", s.stats.Backtracks))
		return nil, false, nil
	}
	s.logger.Info("solved",
		zap.Int("meetings", nMeetings),
		zap.Int64("assignments", s.stats.Assignments),
		zap.Int64("backtracks", s.stats.Backtracks))
	return assignment, true, nil
}

// Solve runs the problem on a default solver. See Solver.Solve.
func Solve(ctx context.Context, nMeetings int, rangeStart, rangeEnd time.Time, constraints []Constraint) ([]time.Time, bool, error) {
	return NewSolver().Solve(ctx, nMeetings, rangeStart, rangeEnd, constraints)
}

// validate fails fast on malformed input, before any domain exists. It
// returns the constraint list with unary dates normalized to midnight
// UTC so the rest of the solver can compare instants directly.
func validate(nMeetings int, start, end time.Time, constraints []Constraint) ([]Constraint, error) {
	if nMeetings < 0 {
		return nil, fmt.Errorf("%w: meeting count %d is negative", ErrInvalidInput, nMeetings)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: range end %s precedes start %s",
			ErrInvalidInput, end.Format(dayLayout), start.Format(dayLayout))
	}
	inRange := func(v int) bool { return v >= 0 && v < nMeetings }
	cs := make([]Constraint, 0, len(constraints))
	for _, c := range constraints {
		switch c := c.(type) {
		case UnaryConstraint:
			if !inRange(c.Variable) {
				return nil, fmt.Errorf("%w: constraint %s references meeting %d outside [0,%d)",
					ErrInvalidInput, c, c.Variable, nMeetings)
			}
			cs = append(cs, UnaryConstraint{Variable: c.Variable, Op: c.Op, Date: midnightUTC(c.Date)})
		case BinaryConstraint:
			if !inRange(c.Left) || !inRange(c.Right) {
				return nil, fmt.Errorf("%w: constraint %s references a meeting outside [0,%d)",
					ErrInvalidInput, c, nMeetings)
			}
			cs = append(cs, c)
		default:
			return nil, fmt.Errorf("%w: unknown constraint type %T", ErrInvalidInput, c)
		}
	}
	return cs, nil
}
