package main

import (
	"fmt"
	"os"

	"github.com/pawpal/pawpal/cmd/pawpal/commands"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "pawpal",
		Short: "Pet care day planner",
		Long:  "CLI for planning a day of pet care tasks from a scenario file",
	}

	rootCmd.AddCommand(commands.NewPlanCmd())
	rootCmd.AddCommand(commands.NewConflictsCmd())
	rootCmd.AddCommand(commands.NewDemoCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
