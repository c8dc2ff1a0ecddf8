// Command worker runs the maintenance scheduler on its own, for deployments
// that keep it out of the qrmenu binary.
package main

import (
	"os"

	"github.com/tablescan/qrmenu/internal/interfaces/cli/worker"
)

func main() {
	cmd := worker.NewCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
