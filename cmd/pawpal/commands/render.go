package commands

import (
	"fmt"

	"github.com/pawpal/pawpal/internal/scheduler"
)

// printSchedule renders a generated plan, its reasoning and any warnings
func printSchedule(schedule *scheduler.DailySchedule, warnings []string) {
	fmt.Printf("Daily schedule for %s (%s) on %s\n",
		schedule.Pet.Name, schedule.Pet.Species, schedule.Date.Format("2006-01-02"))
	fmt.Printf("Owner: %s (%.1f hours available)\n\n",
		schedule.Owner.Name, schedule.Owner.AvailableHoursPerDay)

	entries := schedule.Entries()
	if len(entries) == 0 {
		fmt.Println("  (no tasks scheduled)")
	}
	for i, e := range entries {
		fmt.Printf("  %d. [%s] %s — %.0f min, priority %d (%s)\n",
			i+1, e.Period, e.Task.Name, e.Task.DurationMinutes, e.Task.Priority, e.Task.Category)
	}

	fmt.Printf("\nTotal: %.2f of %.1f available hours",
		schedule.TotalHours(), schedule.Owner.AvailableHoursPerDay)
	if schedule.IsFeasible() {
		fmt.Println(" — feasible")
	} else {
		fmt.Println(" — exceeds available time!")
	}

	fmt.Println("\nReasoning:")
	fmt.Println(indent(schedule.Explanation()))

	printWarnings(warnings)
}

// printWarnings renders conflict warnings, or a no-conflicts note
func printWarnings(warnings []string) {
	if len(warnings) == 0 {
		fmt.Println("\nNo conflicts detected.")
		return
	}
	fmt.Printf("\nConflict warnings (%d):\n", len(warnings))
	for _, w := range warnings {
		fmt.Printf("  - %s\n", w)
	}
}

func indent(text string) string {
	out := "  "
	for _, r := range text {
		out += string(r)
		if r == '\n' {
			out += "  "
		}
	}
	return out
}
