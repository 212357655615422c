package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command all subcommands hang off.
var rootCmd = &cobra.Command{
	Use:   "iqmathctl",
	Short: "Manage the iqmath server",
	Long: `iqmathctl manages the iqmath marketing site backend.

It runs the API server, manages the database schema, and administers
admin-panel user accounts.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
