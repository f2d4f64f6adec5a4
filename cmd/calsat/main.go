// Command calsat schedules meetings from a YAML problem file, or
// proves the problem unsatisfiable. See internal/cli for the commands.
package main

import (
	"os"

	"github.com/gitrdm/calsat/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
