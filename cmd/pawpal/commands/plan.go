package commands

import (
	"fmt"
	"time"

	"github.com/pawpal/pawpal/internal/scheduler"
	"github.com/spf13/cobra"
)

// NewPlanCmd creates the plan command
func NewPlanCmd() *cobra.Command {
	var (
		file             string
		dateStr          string
		includeCompleted bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a day plan from a scenario file",
		Long:  "Load an owner, pet and task pool from a YAML scenario file and generate an optimized day plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, pet, tasks, err := loadScenario(file)
			if err != nil {
				return err
			}

			date := time.Now().UTC().Truncate(24 * time.Hour)
			if dateStr != "" {
				date, err = time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("invalid --date %q: %w", dateStr, err)
				}
			}

			sched := scheduler.New(owner, pet, tasks)
			schedule, warnings := sched.GeneratePlan(date, includeCompleted)
			printSchedule(schedule, warnings)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the scenario YAML file")
	cmd.Flags().StringVar(&dateStr, "date", "", "Plan date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().BoolVar(&includeCompleted, "include-completed", false, "Include completed tasks in the plan")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
