package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/calsat/internal/problem"
	"github.com/gitrdm/calsat/internal/sat"
	"github.com/gitrdm/calsat/pkg/calendar"
)

// NewCheckCommand creates the check command: run both the CSP solver
// and the SAT cross-check on the same problem and report whether the
// two verdicts agree. Disagreement exits non-zero; it means one of the
// solvers is wrong.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <problem.yaml>",
		Short: "Cross-check the solver against the SAT backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := problem.Load(args[0])
			if err != nil {
				return err
			}

			logger, err := rootOpts.logger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			solver := calendar.NewSolver(calendar.WithLogger(logger))
			_, cspFound, err := solver.Solve(cmd.Context(), p.Meetings, p.RangeStart, p.RangeEnd, p.Constraints)
			if err != nil {
				return err
			}

			satFound, err := sat.Satisfiable(sat.Problem{
				Meetings:    p.Meetings,
				RangeStart:  p.RangeStart,
				RangeEnd:    p.RangeEnd,
				Constraints: p.Constraints,
			})
			if err != nil {
				return err
			}

			if cspFound != satFound {
				return fmt.Errorf("verdicts disagree: csp=%v sat=%v", cspFound, satFound)
			}
			verdict := "unsatisfiable"
			if cspFound {
				verdict = "satisfiable"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "csp and sat agree: %s\n", verdict)
			return nil
		},
	}
	return cmd
}
