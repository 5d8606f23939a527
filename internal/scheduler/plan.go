package scheduler

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pawpal/pawpal/internal/models"
	"go.uber.org/zap"
)

const (
	// periodWindowMinutes is how much work fits comfortably in one
	// time-of-day bucket before it counts as overbooked.
	periodWindowMinutes = 240.0
	// periodClusterLimit is the most tasks one bucket holds before a
	// clustering warning fires.
	periodClusterLimit = 3
)

// PrioritizeTasks returns the given tasks sorted for scheduling: highest
// priority first, shorter duration breaking ties, original order otherwise.
// Passing nil sorts the incomplete subset of the pool. The input is not
// mutated.
func (s *Scheduler) PrioritizeTasks(tasks []*models.Task) []*models.Task {
	if tasks == nil {
		tasks = s.TasksByStatus(StatusIncomplete)
	}
	sorted := append([]*models.Task(nil), tasks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return models.TaskLess(sorted[i], sorted[j])
	})
	return sorted
}

// FitToTimeConstraint greedily selects tasks from an already priority-sorted
// list until the owner's daily budget runs out. A task that does not fit is
// skipped, not an error, and scanning continues so shorter tasks further down
// can still claim the remaining budget. Deliberately priority-first rather
// than knapsack-optimal: an urgent task always wins a slot even when a
// lower-priority combination would pack more in.
func (s *Scheduler) FitToTimeConstraint(sorted []*models.Task) []*models.Task {
	remaining := s.owner.AvailableMinutes()
	selected := make([]*models.Task, 0, len(sorted))
	for _, t := range sorted {
		if t.DurationMinutes <= remaining {
			selected = append(selected, t)
			remaining -= t.DurationMinutes
		} else {
			s.log.Debug("task_skipped_over_budget",
				zap.String("task", t.Name),
				zap.Float64("duration_minutes", t.DurationMinutes),
				zap.Float64("remaining_minutes", remaining),
			)
		}
	}
	return selected
}

// OptimizeSchedule lays the selected tasks out by time of day: morning, then
// afternoon, then evening, then unscheduled, each bucket sorted by the
// scheduling order. Periods are never interleaved.
func (s *Scheduler) OptimizeSchedule(selected []*models.Task) []*models.Task {
	groups := make(map[models.TimeOfDay][]*models.Task, len(models.PeriodOrder))
	for _, t := range selected {
		groups[t.PreferredTime] = append(groups[t.PreferredTime], t)
	}

	optimized := make([]*models.Task, 0, len(selected))
	for _, period := range models.PeriodOrder {
		group := groups[period]
		sort.SliceStable(group, func(i, j int) bool {
			return models.TaskLess(group[i], group[j])
		})
		optimized = append(optimized, group...)
	}
	return optimized
}

// DetectConflicts inspects the incomplete tasks among those given and returns
// advisory warnings, one per triggered rule: a period whose summed duration
// exceeds the 4-hour window, and a period holding more than three tasks. Both
// rules can fire for the same period. Warnings never block planning.
func (s *Scheduler) DetectConflicts(tasks []*models.Task) []string {
	groups := make(map[models.TimeOfDay][]*models.Task, len(models.PeriodOrder))
	for _, t := range tasks {
		if t.IsCompleted() {
			continue
		}
		groups[t.PreferredTime] = append(groups[t.PreferredTime], t)
	}

	var warnings []string
	for _, period := range models.PeriodOrder {
		group := groups[period]
		if len(group) == 0 {
			continue
		}

		var total float64
		names := make([]string, 0, len(group))
		for _, t := range group {
			total += t.DurationMinutes
			names = append(names, t.Name)
		}

		if total > periodWindowMinutes {
			overflow := (total - periodWindowMinutes) / 60.0
			warnings = append(warnings, fmt.Sprintf(
				"%s is overbooked: %.1f hours of tasks exceed the %.0f-hour window by %.1f hours",
				period, total/60.0, periodWindowMinutes/60.0, overflow))
		}
		if len(group) > periodClusterLimit {
			warnings = append(warnings, fmt.Sprintf(
				"%s has %d tasks clustered together: %s",
				period, len(group), strings.Join(names, ", ")))
		}
	}
	return warnings
}

// GeneratePlan runs the full planning pipeline for the given date: select
// incomplete tasks (or the whole pool when includeCompleted is set),
// prioritize, fit to the owner's available time, lay out by period, then
// check for conflicts. It returns the resulting schedule, with its
// explanation set to the run's reasoning log, and the conflict warnings.
// Planning always succeeds; an overloaded plan yields warnings, not errors.
func (s *Scheduler) GeneratePlan(date time.Time, includeCompleted bool) (*DailySchedule, []string) {
	s.explanations = s.explanations[:0]

	filter := StatusIncomplete
	if includeCompleted {
		filter = StatusAll
	}
	candidates := s.TasksByStatus(filter)
	s.explain("Selected %d of %d tasks from the pool (%s).", len(candidates), len(s.tasks), filter)

	prioritized := s.PrioritizeTasks(candidates)
	s.explain("Prioritized tasks by priority (highest first), breaking ties by duration (shortest first).")

	selected := s.FitToTimeConstraint(prioritized)
	skipped := len(prioritized) - len(selected)
	s.explain("Fit %d of %d tasks into %.1f available hours (%d skipped for lack of time).",
		len(selected), len(prioritized), s.owner.AvailableHoursPerDay, skipped)

	optimized := s.OptimizeSchedule(selected)
	s.explain("Ordered tasks by preferred time of day: morning, afternoon, evening, unscheduled.")

	warnings := s.DetectConflicts(optimized)
	if len(warnings) == 0 {
		s.explain("No scheduling conflicts detected.")
	}
	for _, w := range warnings {
		s.explain("Warning: %s", w)
	}

	schedule := NewDailySchedule(date, s.owner, s.pet)
	for _, t := range optimized {
		schedule.AddTask(t, t.PreferredTime)
	}
	schedule.explanation = s.ExplainReasoning()

	s.log.Info("plan_generated",
		zap.Time("date", date),
		zap.Int("pool_size", len(s.tasks)),
		zap.Int("scheduled", len(optimized)),
		zap.Float64("total_hours", schedule.TotalHours()),
		zap.Bool("feasible", schedule.IsFeasible()),
		zap.Int("warnings", len(warnings)),
	)

	return schedule, warnings
}

// ExplainReasoning returns the reasoning log of the most recent planning run,
// one line per pipeline stage.
func (s *Scheduler) ExplainReasoning() string {
	return strings.Join(s.explanations, "\n")
}

func (s *Scheduler) explain(format string, args ...any) {
	s.explanations = append(s.explanations, fmt.Sprintf(format, args...))
}
