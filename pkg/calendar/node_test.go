package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeConsistencyFiltersUnary(t *testing.T) {
	cs := []Constraint{
		UnaryConstraint{Variable: 0, Op: OpGt, Date: day(2023, time.January, 2)},
		UnaryConstraint{Variable: 0, Op: OpNeq, Date: day(2023, time.January, 4)},
	}
	meetings := buildMeetings(t, 2, day(2023, time.January, 1), day(2023, time.January, 5), cs)

	s := NewSolver()
	require.NoError(t, s.nodeConsistency(context.Background(), meetings))

	assert.Equal(t,
		[]time.Time{day(2023, time.January, 3), day(2023, time.January, 5)},
		meetings[0].domain.Dates())
	assert.Equal(t, 5, meetings[1].domain.Count(), "meetings without unary constraints keep full domains")
	assert.Equal(t, int64(3), s.Stats().UnaryPruned)
}

func TestNodeConsistencyIsOrderIndependent(t *testing.T) {
	forward := []Constraint{
		UnaryConstraint{Variable: 0, Op: OpGe, Date: day(2023, time.January, 2)},
		UnaryConstraint{Variable: 0, Op: OpLe, Date: day(2023, time.January, 4)},
	}
	backward := []Constraint{forward[1], forward[0]}

	a := buildMeetings(t, 1, day(2023, time.January, 1), day(2023, time.January, 5), forward)
	b := buildMeetings(t, 1, day(2023, time.January, 1), day(2023, time.January, 5), backward)

	s := NewSolver()
	require.NoError(t, s.nodeConsistency(context.Background(), a))
	require.NoError(t, s.nodeConsistency(context.Background(), b))
	assert.True(t, a[0].domain.Equal(b[0].domain))
}

func TestNodeConsistencySelfReferentialBinary(t *testing.T) {
	// M0 != M0 can never hold; the node pass reduces it to an empty
	// domain rather than leaving it for the arc pass to misread.
	cs := []Constraint{BinaryConstraint{Left: 0, Right: 0, Op: OpNeq}}
	meetings := buildMeetings(t, 1, day(2023, time.January, 1), day(2023, time.January, 3), cs)

	s := NewSolver()
	require.NoError(t, s.nodeConsistency(context.Background(), meetings))
	assert.True(t, meetings[0].domain.IsEmpty())

	// M0 == M0 always holds and must prune nothing.
	cs = []Constraint{BinaryConstraint{Left: 0, Right: 0, Op: OpEq}}
	meetings = buildMeetings(t, 1, day(2023, time.January, 1), day(2023, time.January, 3), cs)
	require.NoError(t, s.nodeConsistency(context.Background(), meetings))
	assert.Equal(t, 3, meetings[0].domain.Count())
}

func TestNodeConsistencyParallelEqualsSequential(t *testing.T) {
	cs := []Constraint{
		UnaryConstraint{Variable: 0, Op: OpGt, Date: day(2023, time.February, 3)},
		UnaryConstraint{Variable: 1, Op: OpLt, Date: day(2023, time.February, 8)},
		UnaryConstraint{Variable: 2, Op: OpNeq, Date: day(2023, time.February, 5)},
		UnaryConstraint{Variable: 3, Op: OpEq, Date: day(2023, time.February, 6)},
	}
	seqMeetings := buildMeetings(t, 4, day(2023, time.February, 1), day(2023, time.February, 10), cs)
	parMeetings := buildMeetings(t, 4, day(2023, time.February, 1), day(2023, time.February, 10), cs)

	seq := NewSolver()
	par := NewSolver(WithParallelNodeConsistency(3))
	require.NoError(t, seq.nodeConsistency(context.Background(), seqMeetings))
	require.NoError(t, par.nodeConsistency(context.Background(), parMeetings))

	for i := range seqMeetings {
		assert.True(t, seqMeetings[i].domain.Equal(parMeetings[i].domain), "meeting %d domains diverge", i)
	}
	assert.Equal(t, seq.Stats().UnaryPruned, par.Stats().UnaryPruned)
}
