// Package problem defines the YAML problem-file format consumed by the
// calsat CLI and loads it into solver inputs.
package problem

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gitrdm/calsat/pkg/calendar"
)

// dayLayout is the date format used throughout problem files.
const dayLayout = "2006-01-02"

// File is the on-disk shape of a scheduling problem.
//
// Example:
//
//	meetings: 2
//	range:
//	  start: 2023-01-01
//	  end: 2023-01-05
//	constraints:
//	  - meeting: 0
//	    op: "=="
//	    date: 2023-01-02
//	  - left: 0
//	    op: "<"
//	    right: 1
type File struct {
	// Meetings is the number of meetings to schedule, indexed 0..n-1.
	Meetings int `yaml:"meetings"`

	// Range bounds every meeting's candidate dates, inclusive.
	Range DateRange `yaml:"range"`

	// Constraints lists unary and binary date constraints. A record
	// with a "meeting" key is unary; one with "left" and "right"
	// keys is binary.
	Constraints []ConstraintRecord `yaml:"constraints,omitempty"`
}

// DateRange is an inclusive start/end pair of calendar days.
type DateRange struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// ConstraintRecord is one constraint in either arity. Pointer fields
// distinguish "absent" from "meeting 0".
type ConstraintRecord struct {
	// Meeting selects the variable of a unary constraint.
	Meeting *int `yaml:"meeting,omitempty"`
	// Date is the fixed comparison date of a unary constraint.
	Date string `yaml:"date,omitempty"`

	// Left and Right select the variables of a binary constraint.
	Left  *int `yaml:"left,omitempty"`
	Right *int `yaml:"right,omitempty"`

	// Op is one of ==, !=, <, <=, >, >=.
	Op string `yaml:"op"`
}

// Problem is the decoded, validated form ready for the solvers.
type Problem struct {
	Meetings    int
	RangeStart  time.Time
	RangeEnd    time.Time
	Constraints []calendar.Constraint
}

// Load reads and decodes a problem file. Decoding is strict: unknown
// keys are rejected so a typo'd constraint cannot silently vanish.
func Load(path string) (*Problem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading problem file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes problem-file bytes. Split from Load for tests and for
// callers with non-file sources.
func Parse(raw []byte) (*Problem, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding problem file: %w", err)
	}

	start, err := parseDay(f.Range.Start, "range.start")
	if err != nil {
		return nil, err
	}
	end, err := parseDay(f.Range.End, "range.end")
	if err != nil {
		return nil, err
	}

	p := &Problem{
		Meetings:   f.Meetings,
		RangeStart: start,
		RangeEnd:   end,
	}
	for i, r := range f.Constraints {
		c, err := r.toConstraint()
		if err != nil {
			return nil, fmt.Errorf("constraint %d: %w", i, err)
		}
		p.Constraints = append(p.Constraints, c)
	}
	return p, nil
}

func (r ConstraintRecord) toConstraint() (calendar.Constraint, error) {
	op, err := calendar.ParseOperator(r.Op)
	if err != nil {
		return nil, err
	}
	switch {
	case r.Meeting != nil:
		if r.Left != nil || r.Right != nil {
			return nil, fmt.Errorf("record mixes unary and binary keys")
		}
		if r.Date == "" {
			return nil, fmt.Errorf("unary constraint needs a date")
		}
		date, err := parseDay(r.Date, "date")
		if err != nil {
			return nil, err
		}
		return calendar.UnaryConstraint{Variable: *r.Meeting, Op: op, Date: date}, nil
	case r.Left != nil && r.Right != nil:
		if r.Date != "" {
			return nil, fmt.Errorf("binary constraint cannot carry a date")
		}
		return calendar.BinaryConstraint{Left: *r.Left, Right: *r.Right, Op: op}, nil
	default:
		return nil, fmt.Errorf("record needs either a meeting or a left/right pair")
	}
}

func parseDay(s, field string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%s is required", field)
	}
	t, err := time.ParseInLocation(dayLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", field, err)
	}
	return t, nil
}
