package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsistent(t *testing.T) {
	a := day(2023, time.May, 1)
	b := day(2023, time.May, 2)

	cases := []struct {
		name        string
		left, right time.Time
		op          Operator
		want        bool
	}{
		{"eq same", a, a, OpEq, true},
		{"eq different", a, b, OpEq, false},
		{"neq different", a, b, OpNeq, true},
		{"neq same", a, a, OpNeq, false},
		{"lt before", a, b, OpLt, true},
		{"lt same", a, a, OpLt, false},
		{"lt after", b, a, OpLt, false},
		{"le before", a, b, OpLe, true},
		{"le same", a, a, OpLe, true},
		{"le after", b, a, OpLe, false},
		{"gt after", b, a, OpGt, true},
		{"gt same", a, a, OpGt, false},
		{"ge after", b, a, OpGe, true},
		{"ge same", a, a, OpGe, true},
		{"ge before", a, b, OpGe, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Consistent(tc.left, tc.right, tc.op))
		})
	}
}

func TestOperatorInvertIsConverse(t *testing.T) {
	a := day(2023, time.May, 1)
	b := day(2023, time.May, 2)
	ops := []Operator{OpEq, OpNeq, OpLt, OpLe, OpGt, OpGe}
	dates := []time.Time{a, b}

	for _, op := range ops {
		assert.Equal(t, op, op.Invert().Invert(), "inversion must be an involution for %s", op)
		for _, l := range dates {
			for _, r := range dates {
				assert.Equal(t,
					Consistent(l, r, op),
					Consistent(r, l, op.Invert()),
					"%s %s %s vs converse", l.Format(dayLayout), op, r.Format(dayLayout))
			}
		}
	}
}

func TestParseOperator(t *testing.T) {
	for _, s := range []string{"==", "!=", "<", "<=", ">", ">="} {
		op, err := ParseOperator(s)
		require.NoError(t, err)
		assert.Equal(t, s, op.String())
	}

	_, err := ParseOperator("<>")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConstraintStrings(t *testing.T) {
	u := UnaryConstraint{Variable: 0, Op: OpEq, Date: day(2023, time.January, 2)}
	assert.Equal(t, "M0 == 2023-01-02", u.String())
	assert.Equal(t, 1, u.Arity())

	b := BinaryConstraint{Left: 0, Right: 1, Op: OpLt}
	assert.Equal(t, "M0 < M1", b.String())
	assert.Equal(t, 2, b.Arity())
}
