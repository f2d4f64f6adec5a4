// Package cli wires the calsat commands: solve a problem file, or
// cross-check the solver's verdict against the SAT backend.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose  bool
	Parallel bool
}

// NewRootCommand creates the root command for the calsat CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "calsat",
		Short: "calsat - calendar satisfaction solver",
		Long: "Schedules meetings inside a date range under unary and binary date\n" +
			"constraints, or proves that no schedule exists.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log solver progress")
	cmd.PersistentFlags().BoolVar(&opts.Parallel, "parallel", false, "run node consistency on a worker pool")

	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// logger builds the zap logger implied by the global flags.
func (o *RootOptions) logger() (*zap.Logger, error) {
	if !o.Verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
