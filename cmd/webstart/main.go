package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Every validation or operational failure terminates with this status.
const exitFailure = 9

var configPath string

var rootCmd = &cobra.Command{
	Use:   "webstart",
	Short: "Scaffold new projects from remote templates",
	Long: `webstart lists the project templates published by the configured owner,
clones the one you pick and rewrites its placeholder tokens for your project.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.webstart/config.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitFailure)
	}
}
