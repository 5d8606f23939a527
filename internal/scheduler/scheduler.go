package scheduler

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pawpal/pawpal/internal/models"
	"go.uber.org/zap"
)

// ErrTaskNotFound is returned when an operation targets a task instance that
// is not in the scheduler's pool.
var ErrTaskNotFound = errors.New("task not found in pool")

// StatusFilter selects tasks by completion state
type StatusFilter string

const (
	StatusIncomplete StatusFilter = "incomplete"
	StatusCompleted  StatusFilter = "completed"
	StatusAll        StatusFilter = "all"
)

// Scheduler plans one owner/pet pair's day from a pool of candidate tasks.
// The pool is the long-lived state; everything else is scratch for a single
// planning run. Not safe for concurrent use — callers with concurrent access
// must serialize around pool-mutating operations.
type Scheduler struct {
	owner *models.Owner
	pet   *models.Pet
	tasks []*models.Task

	explanations []string
	log          *zap.Logger
}

// Option customizes a scheduler
type Option func(*Scheduler)

// WithLogger attaches a zap logger for pipeline stage events
func WithLogger(log *zap.Logger) Option {
	return func(s *Scheduler) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a scheduler over the given task pool. The pool slice is copied;
// the task instances are shared with the caller.
func New(owner *models.Owner, pet *models.Pet, tasks []*models.Task, opts ...Option) *Scheduler {
	s := &Scheduler{
		owner: owner,
		pet:   pet,
		tasks: append([]*models.Task(nil), tasks...),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Owner returns the owner the scheduler plans for
func (s *Scheduler) Owner() *models.Owner { return s.owner }

// Pet returns the pet the scheduler plans for
func (s *Scheduler) Pet() *models.Pet { return s.pet }

// Tasks returns a snapshot of the task pool in pool order
func (s *Scheduler) Tasks() []*models.Task {
	out := make([]*models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// AddTask appends a task to the pool
func (s *Scheduler) AddTask(task *models.Task) {
	if task == nil {
		return
	}
	s.tasks = append(s.tasks, task)
}

// FindTask returns the pooled task with the given ID, or ErrTaskNotFound
func (s *Scheduler) FindTask(id uuid.UUID) (*models.Task, error) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("task %s: %w", id, ErrTaskNotFound)
}

// TasksByStatus returns the tasks matching the completion filter, in pool order
func (s *Scheduler) TasksByStatus(filter StatusFilter) []*models.Task {
	out := make([]*models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		switch filter {
		case StatusIncomplete:
			if !t.IsCompleted() {
				out = append(out, t)
			}
		case StatusCompleted:
			if t.IsCompleted() {
				out = append(out, t)
			}
		default:
			out = append(out, t)
		}
	}
	return out
}

// TasksByCategory returns the tasks in the given category, in pool order
func (s *Scheduler) TasksByCategory(category models.TaskCategory) []*models.Task {
	out := make([]*models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// TasksByFrequency returns the tasks with the given frequency, in pool order
func (s *Scheduler) TasksByFrequency(freq models.TaskFrequency) []*models.Task {
	out := make([]*models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.Frequency == freq {
			out = append(out, t)
		}
	}
	return out
}

// CompleteTask marks the given pooled task complete. If the task recurs, a
// fresh instance with the same definition and a pushed-out due date is
// appended to the pool and returned; the completed original stays in the pool
// for history. Returns nil for once-frequency tasks. The task must be the
// pooled instance itself, not a definitionally equal copy.
func (s *Scheduler) CompleteTask(task *models.Task) (*models.Task, error) {
	found := false
	for _, t := range s.tasks {
		if t == task {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("complete task %q: %w", task.Name, ErrTaskNotFound)
	}

	task.MarkComplete()

	next := task.NextOccurrence()
	if next == nil {
		s.log.Debug("task_completed",
			zap.String("task", task.Name),
			zap.String("frequency", string(task.Frequency)),
		)
		return nil, nil
	}

	s.tasks = append(s.tasks, next)
	s.log.Info("recurring_task_regenerated",
		zap.String("task", task.Name),
		zap.String("frequency", string(task.Frequency)),
		zap.Time("next_due", next.DueDate),
	)
	return next, nil
}
