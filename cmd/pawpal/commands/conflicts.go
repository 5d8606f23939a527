package commands

import (
	"github.com/pawpal/pawpal/internal/scheduler"
	"github.com/spf13/cobra"
)

// NewConflictsCmd creates the conflicts command
func NewConflictsCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Check a scenario file for time-of-day conflicts",
		Long:  "Load a task pool from a YAML scenario file and report overbooked or overcrowded time periods",
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, pet, tasks, err := loadScenario(file)
			if err != nil {
				return err
			}

			sched := scheduler.New(owner, pet, tasks)
			printWarnings(sched.DetectConflicts(tasks))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the scenario YAML file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
