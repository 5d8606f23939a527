package commands

import (
	"fmt"
	"time"

	"github.com/pawpal/pawpal/internal/models"
	"github.com/pawpal/pawpal/internal/scheduler"
	"github.com/spf13/cobra"
)

// NewDemoCmd creates the demo command, which walks through canned scenarios
// showing prioritization, time fitting and conflict detection.
func NewDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run canned planning scenarios",
		Long:  "Generate plans for three built-in scenarios: an overloaded morning, conflicts across periods, and a well-balanced day",
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := models.NewOwner("Alex", 6)
			if err != nil {
				return err
			}
			pet, err := models.NewPet("Buddy", "Dog", 5, []string{"hip dysplasia"})
			if err != nil {
				return err
			}

			scenarios := []struct {
				title string
				tasks []demoTask
			}{
				{
					title: "Scenario 1: overloaded morning",
					tasks: []demoTask{
						{"Morning walk", models.CategoryWalk, 60, 5, models.TimeMorning},
						{"Feed breakfast", models.CategoryFeeding, 15, 5, models.TimeMorning},
						{"Medication", models.CategoryMedication, 10, 5, models.TimeMorning},
						{"Training session", models.CategoryEnrichment, 90, 4, models.TimeMorning},
						{"Grooming", models.CategoryGrooming, 45, 3, models.TimeMorning},
					},
				},
				{
					title: "Scenario 2: conflicts across periods",
					tasks: []demoTask{
						{"Morning walk", models.CategoryWalk, 45, 5, models.TimeMorning},
						{"Breakfast", models.CategoryFeeding, 10, 5, models.TimeMorning},
						{"Meds", models.CategoryMedication, 5, 5, models.TimeMorning},
						{"Play time", models.CategoryEnrichment, 60, 4, models.TimeMorning},
						{"Brush fur", models.CategoryGrooming, 20, 3, models.TimeMorning},
						{"Afternoon walk", models.CategoryWalk, 120, 5, models.TimeAfternoon},
						{"Training", models.CategoryEnrichment, 90, 4, models.TimeAfternoon},
						{"Vet appointment", models.CategoryMedication, 60, 5, models.TimeAfternoon},
						{"Dinner", models.CategoryFeeding, 15, 5, models.TimeEvening},
						{"Evening walk", models.CategoryWalk, 30, 4, models.TimeEvening},
					},
				},
				{
					title: "Scenario 3: well-balanced day",
					tasks: []demoTask{
						{"Morning walk", models.CategoryWalk, 30, 5, models.TimeMorning},
						{"Breakfast", models.CategoryFeeding, 10, 5, models.TimeMorning},
						{"Afternoon walk", models.CategoryWalk, 30, 4, models.TimeAfternoon},
						{"Play time", models.CategoryEnrichment, 20, 3, models.TimeAfternoon},
						{"Dinner", models.CategoryFeeding, 10, 5, models.TimeEvening},
						{"Evening walk", models.CategoryWalk, 30, 4, models.TimeEvening},
					},
				},
			}

			date := time.Now().UTC().Truncate(24 * time.Hour)
			for _, sc := range scenarios {
				fmt.Printf("==== %s ====\n\n", sc.title)

				tasks, err := buildDemoTasks(sc.tasks)
				if err != nil {
					return err
				}

				sched := scheduler.New(owner, pet, tasks)
				schedule, warnings := sched.GeneratePlan(date, false)
				printSchedule(schedule, warnings)
				fmt.Println()
			}
			return nil
		},
	}
}

type demoTask struct {
	name     string
	category models.TaskCategory
	minutes  float64
	priority int
	period   models.TimeOfDay
}

func buildDemoTasks(defs []demoTask) ([]*models.Task, error) {
	tasks := make([]*models.Task, 0, len(defs))
	for _, d := range defs {
		task, err := models.NewTask(d.name, d.category, d.minutes, d.priority,
			models.WithPreferredTime(d.period),
			models.WithFrequency(models.FrequencyDaily),
		)
		if err != nil {
			return nil, fmt.Errorf("demo task %q: %w", d.name, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
