package calendar

// stats.go: per-run counters, reset at the top of every Solve call.

// Stats describes the work done by the most recent Solve call. Useful
// for asserting that propagation actually pruned and for sizing search
// effort in logs.
type Stats struct {
	// UnaryPruned counts days removed by the node consistency pass.
	UnaryPruned int64
	// ArcPruned counts days removed by the arc consistency pass.
	ArcPruned int64
	// ArcsRevised counts arc revisions popped off the worklist.
	ArcsRevised int64
	// Assignments counts tentative date assignments tried by search.
	Assignments int64
	// Backtracks counts abandoned assignments (undo steps).
	Backtracks int64
}
