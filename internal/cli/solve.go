package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/calsat/internal/problem"
	"github.com/gitrdm/calsat/pkg/calendar"
)

const dayLayout = "2006-01-02"

// NewSolveCommand creates the solve command: load a problem file, run
// the CSP solver, print the schedule or the no-solution verdict.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <problem.yaml>",
		Short: "Solve a scheduling problem file",
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

			solverOpts := []calendar.Option{calendar.WithLogger(logger)}
			if rootOpts.Parallel {
				solverOpts = append(solverOpts, calendar.WithParallelNodeConsistency(0))
			}
			solver := calendar.NewSolver(solverOpts...)

			schedule, found, err := solver.Solve(cmd.Context(), p.Meetings, p.RangeStart, p.RangeEnd, p.Constraints)
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintln(cmd.OutOrStdout(), "No schedule satisfies the constraints.")
				return nil
			}
			for i, day := range schedule {
				fmt.Fprintf(cmd.OutOrStdout(), "meeting %d: %s\n", i, day.Format(dayLayout))
			}
			return nil
		},
	}
	return cmd
}
