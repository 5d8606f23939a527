package handlers

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pawpal/pawpal/internal/models"
)

// Session is the in-memory planning session behind the API: one owner/pet
// pair and their task pool. The scheduler core is single-writer, so every
// handler touching the session takes the one mutex; planning and pool
// mutations never interleave.
type Session struct {
	mu    sync.Mutex
	owner *models.Owner
	pet   *models.Pet
	tasks []*models.Task
}

// NewSession creates an empty planning session
func NewSession() *Session {
	return &Session{}
}

// lock acquires the session mutex and returns the unlock function
func (s *Session) lock() func() {
	s.mu.Lock()
	return s.mu.Unlock
}

// findTask returns the pooled task with the given ID, or nil. Callers must
// hold the session lock.
func (s *Session) findTask(id uuid.UUID) *models.Task {
	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// removeTask drops the task instance from the pool, reporting whether it was
// present. Pool membership is managed here, not in the scheduler core.
// Callers must hold the session lock.
func (s *Session) removeTask(task *models.Task) bool {
	for i, t := range s.tasks {
		if t == task {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}
