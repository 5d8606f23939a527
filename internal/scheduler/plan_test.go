package scheduler

import (
	"strings"
	"testing"

	"github.com/pawpal/pawpal/internal/models"
)

func TestPrioritizeTasks_PriorityThenDuration(t *testing.T) {
	t.Parallel()

	groom := testTask(t, "Groom", models.CategoryGrooming, 180, 2)
	feed := testTask(t, "Feed", models.CategoryFeeding, 30, 5)
	walk := testTask(t, "Walk", models.CategoryWalk, 60, 4)
	quickMeds := testTask(t, "Meds", models.CategoryMedication, 5, 4)

	sched := New(testOwner(t, 4), testPet(t), []*models.Task{groom, feed, walk, quickMeds})

	got := sched.PrioritizeTasks(nil)
	want := []*models.Task{feed, quickMeds, walk, groom}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Position %d: got %q, want %q", i, got[i].Name, want[i].Name)
		}
	}
}

func TestPrioritizeTasks_DefaultsToIncomplete(t *testing.T) {
	t.Parallel()

	done := testTask(t, "Done", models.CategoryWalk, 30, 5)
	done.MarkComplete()
	pending := testTask(t, "Pending", models.CategoryFeeding, 10, 3)

	sched := New(testOwner(t, 4), testPet(t), []*models.Task{done, pending})

	got := sched.PrioritizeTasks(nil)
	if len(got) != 1 || got[0] != pending {
		t.Errorf("Expected only the incomplete task, got %d tasks", len(got))
	}

	// An explicit list is sorted as given, completed or not
	explicit := sched.PrioritizeTasks([]*models.Task{done, pending})
	if len(explicit) != 2 {
		t.Errorf("Explicit list should not be filtered, got %d tasks", len(explicit))
	}
}

func TestPrioritizeTasks_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	low := testTask(t, "Low", models.CategoryWalk, 30, 1)
	high := testTask(t, "High", models.CategoryFeeding, 10, 5)
	input := []*models.Task{low, high}

	sched := New(testOwner(t, 4), testPet(t), input)
	sched.PrioritizeTasks(input)

	if input[0] != low || input[1] != high {
		t.Error("PrioritizeTasks should not reorder its input slice")
	}
}

func TestFitToTimeConstraint_GreedySelection(t *testing.T) {
	t.Parallel()

	feed := testTask(t, "Feed", models.CategoryFeeding, 30, 5)    // 0.5h
	walk := testTask(t, "Walk", models.CategoryWalk, 60, 4)       // 1h
	groom := testTask(t, "Groom", models.CategoryGrooming, 180, 2) // 3h

	sched := New(testOwner(t, 4), testPet(t), []*models.Task{feed, walk, groom})

	sorted := sched.PrioritizeTasks(nil)
	selected := sched.FitToTimeConstraint(sorted)

	// 4h budget: feed fits (3.5h left), walk fits (2.5h left), groom (3h) does not
	if len(selected) != 2 || selected[0] != feed || selected[1] != walk {
		names := make([]string, len(selected))
		for i, task := range selected {
			names[i] = task.Name
		}
		t.Fatalf("Expected [Feed, Walk], got %v", names)
	}

	var total float64
	for _, task := range selected {
		total += task.DurationMinutes
	}
	if total != 90 {
		t.Errorf("Expected 90 selected minutes, got %v", total)
	}
}

func TestFitToTimeConstraint_SkipDoesNotStopScanning(t *testing.T) {
	t.Parallel()

	big := testTask(t, "Big", models.CategoryGrooming, 200, 5)
	tooBig := testTask(t, "Too big", models.CategoryEnrichment, 100, 4)
	small := testTask(t, "Small", models.CategoryFeeding, 30, 3)

	sched := New(testOwner(t, 4), testPet(t), []*models.Task{big, tooBig, small})

	selected := sched.FitToTimeConstraint(sched.PrioritizeTasks(nil))

	// 240min budget: big (200) fits, tooBig (100 > 40) skipped, small (30) still fits
	if len(selected) != 2 || selected[0] != big || selected[1] != small {
		t.Fatalf("Expected the skip to continue scanning: got %d tasks", len(selected))
	}
}

func TestFitToTimeConstraint_ZeroBudget(t *testing.T) {
	t.Parallel()

	walk := testTask(t, "Walk", models.CategoryWalk, 30, 4)
	sched := New(testOwner(t, 0), testPet(t), []*models.Task{walk})

	selected := sched.FitToTimeConstraint(sched.PrioritizeTasks(nil))
	if len(selected) != 0 {
		t.Errorf("Expected no tasks with zero budget, got %d", len(selected))
	}

	schedule, _ := sched.GeneratePlan(testDate(), false)
	if schedule.TotalMinutes() != 0 {
		t.Errorf("Expected empty plan, got %v minutes", schedule.TotalMinutes())
	}
	if !schedule.IsFeasible() {
		t.Error("An empty plan is vacuously feasible")
	}
}

func TestFitToTimeConstraint_NeverExceedsBudget(t *testing.T) {
	t.Parallel()

	tasks := []*models.Task{
		testTask(t, "A", models.CategoryWalk, 90, 5),
		testTask(t, "B", models.CategoryFeeding, 90, 4),
		testTask(t, "C", models.CategoryGrooming, 90, 3),
		testTask(t, "D", models.CategoryEnrichment, 45, 2),
	}
	sched := New(testOwner(t, 3), testPet(t), tasks)

	selected := sched.FitToTimeConstraint(sched.PrioritizeTasks(nil))
	var total float64
	for _, task := range selected {
		total += task.DurationMinutes
	}
	if total > 180 {
		t.Errorf("Selected %v minutes, exceeding the 180 minute budget", total)
	}
}

func TestFitToTimeConstraint_MonotonicInBudget(t *testing.T) {
	t.Parallel()

	tasks := []*models.Task{
		testTask(t, "A", models.CategoryWalk, 120, 5),
		testTask(t, "B", models.CategoryFeeding, 60, 4),
		testTask(t, "C", models.CategoryGrooming, 90, 3),
		testTask(t, "D", models.CategoryEnrichment, 30, 2),
	}

	small := New(testOwner(t, 3), testPet(t), tasks)
	large := New(testOwner(t, 5), testPet(t), tasks)

	sorted := small.PrioritizeTasks(tasks)
	selectedSmall := small.FitToTimeConstraint(sorted)
	selectedLarge := large.FitToTimeConstraint(sorted)

	inLarge := make(map[*models.Task]bool, len(selectedLarge))
	for _, task := range selectedLarge {
		inLarge[task] = true
	}
	for _, task := range selectedSmall {
		if !inLarge[task] {
			t.Errorf("Task %q was dropped when the budget grew", task.Name)
		}
	}
}

func TestOptimizeSchedule_PeriodOrder(t *testing.T) {
	t.Parallel()

	evening := testTask(t, "Dinner", models.CategoryFeeding, 15, 5, models.WithPreferredTime(models.TimeEvening))
	morning := testTask(t, "Breakfast", models.CategoryFeeding, 15, 5, models.WithPreferredTime(models.TimeMorning))
	anytime := testTask(t, "Clean crate", models.CategoryCleaning, 20, 2)
	afternoon := testTask(t, "Play", models.CategoryEnrichment, 30, 3, models.WithPreferredTime(models.TimeAfternoon))

	sched := New(testOwner(t, 6), testPet(t), nil)

	got := sched.OptimizeSchedule([]*models.Task{evening, morning, anytime, afternoon})
	want := []*models.Task{morning, afternoon, evening, anytime}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Position %d: got %q, want %q", i, got[i].Name, want[i].Name)
		}
	}
}

func TestOptimizeSchedule_SortsWithinPeriod(t *testing.T) {
	t.Parallel()

	slowLow := testTask(t, "Training", models.CategoryEnrichment, 90, 4, models.WithPreferredTime(models.TimeMorning))
	fastHigh := testTask(t, "Meds", models.CategoryMedication, 5, 5, models.WithPreferredTime(models.TimeMorning))
	fastMid := testTask(t, "Feed", models.CategoryFeeding, 10, 5, models.WithPreferredTime(models.TimeMorning))

	sched := New(testOwner(t, 6), testPet(t), nil)

	got := sched.OptimizeSchedule([]*models.Task{slowLow, fastHigh, fastMid})
	want := []*models.Task{fastHigh, fastMid, slowLow}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Position %d: got %q, want %q", i, got[i].Name, want[i].Name)
		}
	}
}

func TestDetectConflicts_OverflowAndClustering(t *testing.T) {
	t.Parallel()

	// Five one-hour morning tasks: 5h > 4h window and 5 > 3 tasks
	tasks := make([]*models.Task, 0, 5)
	names := []string{"A", "B", "C", "D", "E"}
	for _, name := range names {
		tasks = append(tasks, testTask(t, name, models.CategoryWalk, 60, 3,
			models.WithPreferredTime(models.TimeMorning)))
	}

	sched := New(testOwner(t, 8), testPet(t), tasks)
	warnings := sched.DetectConflicts(tasks)

	if len(warnings) != 2 {
		t.Fatalf("Expected 2 warnings (overflow + clustering), got %d: %v", len(warnings), warnings)
	}
	for _, w := range warnings {
		if !strings.Contains(w, "morning") {
			t.Errorf("Warning should name the period: %q", w)
		}
	}
	if !strings.Contains(warnings[0], "overbooked") {
		t.Errorf("First warning should report the overflow: %q", warnings[0])
	}
	if !strings.Contains(warnings[1], "5 tasks") {
		t.Errorf("Second warning should report the count: %q", warnings[1])
	}
	for _, name := range names {
		if !strings.Contains(warnings[1], name) {
			t.Errorf("Clustering warning should list task %q: %q", name, warnings[1])
		}
	}
}

func TestDetectConflicts_QuietBelowThresholds(t *testing.T) {
	t.Parallel()

	// Three tasks totalling exactly 4 hours: at both limits, neither rule fires
	tasks := []*models.Task{
		testTask(t, "A", models.CategoryWalk, 90, 5, models.WithPreferredTime(models.TimeMorning)),
		testTask(t, "B", models.CategoryFeeding, 60, 5, models.WithPreferredTime(models.TimeMorning)),
		testTask(t, "C", models.CategoryGrooming, 90, 4, models.WithPreferredTime(models.TimeMorning)),
	}

	sched := New(testOwner(t, 8), testPet(t), tasks)
	if warnings := sched.DetectConflicts(tasks); len(warnings) != 0 {
		t.Errorf("Expected no warnings at the limits, got %v", warnings)
	}
}

func TestDetectConflicts_IgnoresCompletedTasks(t *testing.T) {
	t.Parallel()

	tasks := make([]*models.Task, 0, 5)
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		task := testTask(t, name, models.CategoryWalk, 60, 3, models.WithPreferredTime(models.TimeMorning))
		task.MarkComplete()
		tasks = append(tasks, task)
	}

	sched := New(testOwner(t, 8), testPet(t), tasks)
	if warnings := sched.DetectConflicts(tasks); len(warnings) != 0 {
		t.Errorf("Completed tasks should not count toward conflicts, got %v", warnings)
	}
}

func TestDetectConflicts_MultiplePeriods(t *testing.T) {
	t.Parallel()

	tasks := []*models.Task{
		testTask(t, "Long morning walk", models.CategoryWalk, 300, 5, models.WithPreferredTime(models.TimeMorning)),
		testTask(t, "Long evening walk", models.CategoryWalk, 270, 4, models.WithPreferredTime(models.TimeEvening)),
	}

	sched := New(testOwner(t, 12), testPet(t), tasks)
	warnings := sched.DetectConflicts(tasks)

	if len(warnings) != 2 {
		t.Fatalf("Expected one overflow warning per period, got %d: %v", len(warnings), warnings)
	}
	// Fixed period order: morning before evening
	if !strings.Contains(warnings[0], "morning") || !strings.Contains(warnings[1], "evening") {
		t.Errorf("Warnings should follow period order, got %v", warnings)
	}
}

func TestGeneratePlan_EndToEnd(t *testing.T) {
	t.Parallel()

	feed := testTask(t, "Feed", models.CategoryFeeding, 30, 5, models.WithPreferredTime(models.TimeMorning))
	walk := testTask(t, "Walk", models.CategoryWalk, 60, 4, models.WithPreferredTime(models.TimeMorning))
	groom := testTask(t, "Groom", models.CategoryGrooming, 180, 2, models.WithPreferredTime(models.TimeAfternoon))
	done := testTask(t, "Done already", models.CategoryCleaning, 15, 3)
	done.MarkComplete()

	sched := New(testOwner(t, 4), testPet(t), []*models.Task{groom, feed, walk, done})

	schedule, warnings := sched.GeneratePlan(testDate(), false)

	entries := schedule.Entries()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 scheduled tasks, got %d", len(entries))
	}
	if entries[0].Task != feed || entries[1].Task != walk {
		t.Errorf("Expected [Feed, Walk] in the plan, got [%q, %q]", entries[0].Task.Name, entries[1].Task.Name)
	}
	if entries[0].Period != models.TimeMorning {
		t.Errorf("Expected morning placement, got %q", entries[0].Period)
	}

	if got := schedule.TotalHours(); got != 1.5 {
		t.Errorf("Expected 1.5 total hours, got %v", got)
	}
	if !schedule.IsFeasible() {
		t.Error("Plan within budget should be feasible")
	}
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}

	explanation := schedule.Explanation()
	if explanation == "" {
		t.Fatal("Expected a non-empty explanation")
	}
	if !strings.Contains(explanation, "Prioritized") || !strings.Contains(explanation, "Fit") {
		t.Errorf("Explanation should cover the pipeline stages: %q", explanation)
	}
}

func TestGeneratePlan_IncludeCompleted(t *testing.T) {
	t.Parallel()

	done := testTask(t, "Done walk", models.CategoryWalk, 30, 4)
	done.MarkComplete()

	sched := New(testOwner(t, 4), testPet(t), []*models.Task{done})

	schedule, _ := sched.GeneratePlan(testDate(), true)
	if len(schedule.Entries()) != 1 {
		t.Errorf("Expected the completed task to be planned, got %d entries", len(schedule.Entries()))
	}

	schedule, _ = sched.GeneratePlan(testDate(), false)
	if len(schedule.Entries()) != 0 {
		t.Errorf("Expected completed task to be excluded, got %d entries", len(schedule.Entries()))
	}
}

func TestGeneratePlan_ResetsExplanationLog(t *testing.T) {
	t.Parallel()

	walk := testTask(t, "Walk", models.CategoryWalk, 30, 4)
	sched := New(testOwner(t, 4), testPet(t), []*models.Task{walk})

	first, _ := sched.GeneratePlan(testDate(), false)
	second, _ := sched.GeneratePlan(testDate(), false)

	if first.Explanation() != second.Explanation() {
		t.Error("Identical runs should produce identical explanations")
	}
	if strings.Count(second.Explanation(), "Selected") != 1 {
		t.Error("The log must be reset between runs, not accumulated")
	}
}

func TestGeneratePlan_WarningsForOverloadedPeriod(t *testing.T) {
	t.Parallel()

	tasks := make([]*models.Task, 0, 5)
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		tasks = append(tasks, testTask(t, name, models.CategoryWalk, 60, 3,
			models.WithPreferredTime(models.TimeMorning)))
	}

	sched := New(testOwner(t, 8), testPet(t), tasks)
	schedule, warnings := sched.GeneratePlan(testDate(), false)

	if len(warnings) != 2 {
		t.Fatalf("Expected overflow and clustering warnings, got %d", len(warnings))
	}
	// Advisory only: the plan is still produced
	if len(schedule.Entries()) == 0 {
		t.Error("Warnings must not block planning")
	}
	for _, w := range warnings {
		if !strings.Contains(schedule.Explanation(), w) {
			t.Errorf("Warning %q should appear in the explanation", w)
		}
	}
}
