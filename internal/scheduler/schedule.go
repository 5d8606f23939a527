package scheduler

import (
	"time"

	"github.com/pawpal/pawpal/internal/models"
)

// Entry is one placement in a day plan: a task under its time-of-day bucket.
type Entry struct {
	Period models.TimeOfDay `json:"period"`
	Task   *models.Task     `json:"task"`
}

// DailySchedule is the plan for a single day: an ordered list of placements
// for one owner/pet pair, plus the reasoning that produced it. The total
// duration is kept in sync by AddTask/RemoveTask; it is always the sum of the
// contained tasks' durations.
type DailySchedule struct {
	Date  time.Time
	Owner *models.Owner
	Pet   *models.Pet

	entries      []Entry
	totalMinutes float64
	explanation  string
}

// NewDailySchedule creates an empty schedule for the given date, owner and pet
func NewDailySchedule(date time.Time, owner *models.Owner, pet *models.Pet) *DailySchedule {
	return &DailySchedule{Date: date, Owner: owner, Pet: pet}
}

// AddTask appends the task under the given period. The same task instance
// cannot be placed twice; a duplicate is rejected and false returned.
// Definitionally equal but distinct instances are allowed.
func (s *DailySchedule) AddTask(task *models.Task, period models.TimeOfDay) bool {
	if task == nil {
		return false
	}
	for _, e := range s.entries {
		if e.Task == task {
			return false
		}
	}
	s.entries = append(s.entries, Entry{Period: period, Task: task})
	s.totalMinutes += task.DurationMinutes
	return true
}

// RemoveTask removes the first entry holding this task instance, returning
// false if the instance is not scheduled.
func (s *DailySchedule) RemoveTask(task *models.Task) bool {
	for i, e := range s.entries {
		if e.Task == task {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.totalMinutes -= task.DurationMinutes
			return true
		}
	}
	return false
}

// Entries returns the scheduled placements in plan order
func (s *DailySchedule) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// TotalMinutes returns the summed duration of all scheduled tasks in minutes
func (s *DailySchedule) TotalMinutes() float64 {
	return s.totalMinutes
}

// TotalHours returns the summed duration of all scheduled tasks in hours
func (s *DailySchedule) TotalHours() float64 {
	return s.totalMinutes / 60.0
}

// IsFeasible reports whether the schedule fits the owner's daily time budget.
// An empty schedule is vacuously feasible.
func (s *DailySchedule) IsFeasible() bool {
	if s.Owner == nil {
		return false
	}
	return s.totalMinutes <= s.Owner.AvailableMinutes()
}

// Explanation returns the reasoning text set by the scheduler run that
// produced this plan.
func (s *DailySchedule) Explanation() string {
	return s.explanation
}
