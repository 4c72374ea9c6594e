// Command queuetool bundles the development-support programs that
// ship alongside the queue library: a static file server and the
// constant-time leakage checker for the queue primitives.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "queuetool",
	Short: "Support tools for the queue library.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
