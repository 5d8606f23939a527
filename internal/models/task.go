package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskCategory classifies what kind of care a task provides
type TaskCategory string

const (
	CategoryWalk       TaskCategory = "walk"
	CategoryFeeding    TaskCategory = "feeding"
	CategoryMedication TaskCategory = "medication"
	CategoryGrooming   TaskCategory = "grooming"
	CategoryEnrichment TaskCategory = "enrichment"
	CategoryCleaning   TaskCategory = "cleaning"
	CategoryOther      TaskCategory = "other"
)

// TimeOfDay is the coarse scheduling bucket a task prefers.
// Tasks with no preference fall into TimeUnscheduled.
type TimeOfDay string

const (
	TimeMorning     TimeOfDay = "morning"
	TimeAfternoon   TimeOfDay = "afternoon"
	TimeEvening     TimeOfDay = "evening"
	TimeUnscheduled TimeOfDay = "unscheduled"
)

// PeriodOrder is the fixed order periods are laid out in a day plan.
var PeriodOrder = []TimeOfDay{TimeMorning, TimeAfternoon, TimeEvening, TimeUnscheduled}

// TaskFrequency controls whether completing a task spawns a follow-up instance
type TaskFrequency string

const (
	FrequencyOnce    TaskFrequency = "once"
	FrequencyDaily   TaskFrequency = "daily"
	FrequencyWeekly  TaskFrequency = "weekly"
	FrequencyMonthly TaskFrequency = "monthly"
)

// RecurrenceDays returns the fixed day offset added to the due date when a
// recurring task is completed. Monthly is a flat 30 days, not calendar-month
// arithmetic. Returns 0 for once (no recurrence).
func (f TaskFrequency) RecurrenceDays() int {
	switch f {
	case FrequencyDaily:
		return 1
	case FrequencyWeekly:
		return 7
	case FrequencyMonthly:
		return 30
	default:
		return 0
	}
}

const (
	// PriorityMin is the lowest allowed task priority
	PriorityMin = 1
	// PriorityMax is the highest (most urgent) allowed task priority
	PriorityMax = 5
)

// Task is a single pet care item. Definitional fields (name, category,
// duration, priority, preferred time, frequency) identify what the task is;
// ID, Completed and DueDate belong to the individual instance.
type Task struct {
	ID              uuid.UUID     `json:"id"`
	Name            string        `json:"name"`
	Category        TaskCategory  `json:"category"`
	DurationMinutes float64       `json:"duration_minutes"`
	Priority        int           `json:"priority"`
	PreferredTime   TimeOfDay     `json:"preferred_time"`
	Notes           string        `json:"notes,omitempty"`
	Frequency       TaskFrequency `json:"frequency"`
	Completed       bool          `json:"completed"`
	DueDate         time.Time     `json:"due_date"`
}

// TaskOption customizes optional task fields at construction
type TaskOption func(*Task)

// WithPreferredTime sets the preferred time-of-day bucket
func WithPreferredTime(period TimeOfDay) TaskOption {
	return func(t *Task) { t.PreferredTime = period }
}

// WithNotes attaches free-form notes
func WithNotes(notes string) TaskOption {
	return func(t *Task) { t.Notes = notes }
}

// WithFrequency sets how often the task recurs
func WithFrequency(freq TaskFrequency) TaskOption {
	return func(t *Task) { t.Frequency = freq }
}

// WithDueDate sets the date the task is due
func WithDueDate(due time.Time) TaskOption {
	return func(t *Task) { t.DueDate = due }
}

// NewTask creates a validated task. Priority must be within
// [PriorityMin, PriorityMax] and duration must be non-negative; enum fields
// set through options are validated as well. Invalid input is rejected with
// a *ValidationError, never clamped.
func NewTask(name string, category TaskCategory, durationMinutes float64, priority int, opts ...TaskOption) (*Task, error) {
	t := &Task{
		ID:              uuid.New(),
		Name:            name,
		Category:        category,
		DurationMinutes: durationMinutes,
		Priority:        priority,
		PreferredTime:   TimeUnscheduled,
		Frequency:       FrequencyOnce,
		DueDate:         time.Now().UTC().Truncate(24 * time.Hour),
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if !category.Valid() {
		return nil, &ValidationError{Field: "category", Message: "unknown category " + string(category)}
	}
	if t.DurationMinutes < 0 {
		return nil, &ValidationError{Field: "duration_minutes", Message: "must be non-negative"}
	}
	if t.Priority < PriorityMin || t.Priority > PriorityMax {
		return nil, &ValidationError{Field: "priority", Message: "must be between 1 and 5"}
	}
	if !t.PreferredTime.Valid() {
		return nil, &ValidationError{Field: "preferred_time", Message: "unknown time of day " + string(t.PreferredTime)}
	}
	if !t.Frequency.Valid() {
		return nil, &ValidationError{Field: "frequency", Message: "unknown frequency " + string(t.Frequency)}
	}

	return t, nil
}

// Valid reports whether the category is a known enum value
func (c TaskCategory) Valid() bool {
	switch c {
	case CategoryWalk, CategoryFeeding, CategoryMedication, CategoryGrooming,
		CategoryEnrichment, CategoryCleaning, CategoryOther:
		return true
	default:
		return false
	}
}

// Valid reports whether the time of day is a known enum value
func (p TimeOfDay) Valid() bool {
	switch p {
	case TimeMorning, TimeAfternoon, TimeEvening, TimeUnscheduled:
		return true
	default:
		return false
	}
}

// Valid reports whether the frequency is a known enum value
func (f TaskFrequency) Valid() bool {
	switch f {
	case FrequencyOnce, FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

// DurationHours converts the task duration from minutes to hours
func (t *Task) DurationHours() float64 {
	return t.DurationMinutes / 60.0
}

// SetPriority updates the priority, rejecting out-of-range values
func (t *Task) SetPriority(priority int) error {
	if priority < PriorityMin || priority > PriorityMax {
		return &ValidationError{Field: "priority", Message: "must be between 1 and 5"}
	}
	t.Priority = priority
	return nil
}

// MarkComplete flags the task as done. Idempotent.
func (t *Task) MarkComplete() {
	t.Completed = true
}

// MarkIncomplete clears the completion flag. Idempotent.
func (t *Task) MarkIncomplete() {
	t.Completed = false
}

// IsCompleted reports whether the task has been completed
func (t *Task) IsCompleted() bool {
	return t.Completed
}

// EqualDefinition reports whether two tasks describe the same piece of work.
// Completion state, due date and ID are instance state, not definition, so a
// regenerated recurring task is definitionally equal to its predecessor.
func (t *Task) EqualDefinition(other *Task) bool {
	if other == nil {
		return false
	}
	return t.Name == other.Name &&
		t.Category == other.Category &&
		t.DurationMinutes == other.DurationMinutes &&
		t.Priority == other.Priority &&
		t.PreferredTime == other.PreferredTime &&
		t.Frequency == other.Frequency
}

// TaskLess is the scheduling order: higher priority first, shorter duration
// breaking ties. Anything beyond that compares equal, so a stable sort
// preserves the original relative order. Pass to sort.SliceStable.
func TaskLess(a, b *Task) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	return a.DurationMinutes < b.DurationMinutes
}

// NextOccurrence builds the follow-up instance for a recurring task: a fresh
// incomplete task with the same definitional fields and the due date pushed
// out by the frequency's fixed offset. Returns nil for once-frequency tasks.
func (t *Task) NextOccurrence() *Task {
	days := t.Frequency.RecurrenceDays()
	if days == 0 {
		return nil
	}
	return &Task{
		ID:              uuid.New(),
		Name:            t.Name,
		Category:        t.Category,
		DurationMinutes: t.DurationMinutes,
		Priority:        t.Priority,
		PreferredTime:   t.PreferredTime,
		Notes:           t.Notes,
		Frequency:       t.Frequency,
		Completed:       false,
		DueDate:         t.DueDate.AddDate(0, 0, days),
	}
}
