package calendar

// constraint.go: date comparison operators and the unary/binary
// constraint types bound to meeting variables.

import (
	"fmt"
	"time"
)

// Operator is a date comparison applied as "left OP right".
type Operator int

const (
	OpEq  Operator = iota // left == right
	OpNeq                 // left != right
	OpLt                  // left <  right
	OpLe                  // left <= right
	OpGt                  // left >  right
	OpGe                  // left >= right
)

var operatorNames = map[Operator]string{
	OpEq:  "==",
	OpNeq: "!=",
	OpLt:  "<",
	OpLe:  "<=",
	OpGt:  ">",
	OpGe:  ">=",
}

func (op Operator) String() string {
	if s, ok := operatorNames[op]; ok {
		return s
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// ParseOperator maps the textual form ("==", "!=", "<", "<=", ">", ">=")
// back to an Operator.
func ParseOperator(s string) (Operator, error) {
	for op, name := range operatorNames {
		if name == s {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown operator %q", ErrInvalidInput, s)
}

// Invert returns the operator of the converse relation: if "left OP
// right" holds then "right OP.Invert() left" holds and vice versa.
// Equality and inequality are their own converses. This is what gives
// the reverse arc of a binary constraint its operator.
func (op Operator) Invert() Operator {
	switch op {
	case OpLt:
		return OpGt
	case OpLe:
		return OpGe
	case OpGt:
		return OpLt
	case OpGe:
		return OpLe
	default:
		return op
	}
}

// Consistent reports whether "left OP right" holds for two dates. It is
// a total, pure predicate: defined for any pair of dates and any
// operator. The solver normalizes all dates to midnight UTC before
// calling it, so instant comparison equals day comparison here.
func Consistent(left, right time.Time, op Operator) bool {
	switch op {
	case OpEq:
		return left.Equal(right)
	case OpNeq:
		return !left.Equal(right)
	case OpLt:
		return left.Before(right)
	case OpLe:
		return left.Before(right) || left.Equal(right)
	case OpGt:
		return left.After(right)
	case OpGe:
		return left.After(right) || left.Equal(right)
	default:
		return false
	}
}

// Constraint is the sealed union of UnaryConstraint and
// BinaryConstraint. Code consuming constraints resolves the concrete
// form with a type switch; there are no other implementations.
type Constraint interface {
	// Arity returns 1 for unary constraints and 2 for binary ones.
	Arity() int
	fmt.Stringer
	sealedConstraint()
}

// UnaryConstraint restricts a single meeting against a fixed date:
// "meeting Variable's date OP Date".
type UnaryConstraint struct {
	Variable int
	Op       Operator
	Date     time.Time
}

func (c UnaryConstraint) Arity() int { return 1 }

func (c UnaryConstraint) String() string {
	return fmt.Sprintf("M%d %s %s", c.Variable, c.Op, midnightUTC(c.Date).Format(dayLayout))
}

func (c UnaryConstraint) sealedConstraint() {}

// BinaryConstraint relates two meetings: "Left's date OP Right's date".
// The check is directional, but the constraint binds both variables and
// is enforced whichever of the two is assigned first.
type BinaryConstraint struct {
	Left  int
	Right int
	Op    Operator
}

func (c BinaryConstraint) Arity() int { return 2 }

func (c BinaryConstraint) String() string {
	return fmt.Sprintf("M%d %s M%d", c.Left, c.Op, c.Right)
}

func (c BinaryConstraint) sealedConstraint() {}
