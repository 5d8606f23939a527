package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pawpal/pawpal/internal/models"
	"github.com/pawpal/pawpal/internal/scheduler"
	"github.com/pawpal/pawpal/internal/validation"
	"go.uber.org/zap"
)

// dueDateLayout is the wire format for task due dates
const dueDateLayout = "2006-01-02"

// TaskHandler handles task pool requests
type TaskHandler struct {
	session *Session
	logger  *zap.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(session *Session, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{session: session, logger: logger}
}

// RegisterRoutes registers task routes on the given router.
// The router should already have the /tasks prefix.
func (h *TaskHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("", h.ListTasks).Methods("GET")
	r.HandleFunc("", h.CreateTask).Methods("POST")
	r.HandleFunc("/{id}", h.GetTask).Methods("GET")
	r.HandleFunc("/{id}", h.DeleteTask).Methods("DELETE")
	r.HandleFunc("/{id}/complete", h.CompleteTask).Methods("POST")
	r.HandleFunc("/{id}/reopen", h.ReopenTask).Methods("POST")
}

// CreateTaskRequest represents a create task request
type CreateTaskRequest struct {
	Name            string  `json:"name" validate:"required,min=1,max=500"`
	Category        string  `json:"category" validate:"required,task_category"`
	DurationMinutes float64 `json:"duration_minutes" validate:"gte=0"`
	Priority        int     `json:"priority" validate:"required,min=1,max=5"`
	PreferredTime   string  `json:"preferred_time" validate:"omitempty,time_of_day"`
	Notes           string  `json:"notes" validate:"max=2000"`
	Frequency       string  `json:"frequency" validate:"omitempty,task_frequency"`
	DueDate         string  `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

// CompleteTaskResponse reports the completed task and, for recurring tasks,
// the regenerated follow-up instance.
type CompleteTaskResponse struct {
	Completed *models.Task `json:"completed"`
	Next      *models.Task `json:"next,omitempty"`
}

// ListTasks lists pool tasks, optionally filtered by status, category or frequency
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = "all"
	}
	if err := validation.ValidateStatusFilter(status); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	category := r.URL.Query().Get("category")
	if category != "" {
		if err := validation.ValidateTaskCategory(category); err != nil {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", err.Error())
			return
		}
	}
	frequency := r.URL.Query().Get("frequency")
	if frequency != "" {
		if err := validation.ValidateTaskFrequency(frequency); err != nil {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", err.Error())
			return
		}
	}

	defer h.session.lock()()
	sched := scheduler.New(h.session.owner, h.session.pet, h.session.tasks)

	tasks := sched.TasksByStatus(scheduler.StatusFilter(status))
	if category != "" {
		tasks = intersect(tasks, sched.TasksByCategory(models.TaskCategory(category)))
	}
	if frequency != "" {
		tasks = intersect(tasks, sched.TasksByFrequency(models.TaskFrequency(frequency)))
	}

	respondJSON(w, http.StatusOK, tasks)
}

// CreateTask adds a task to the pool
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	opts := []models.TaskOption{}
	if req.PreferredTime != "" {
		opts = append(opts, models.WithPreferredTime(models.TimeOfDay(req.PreferredTime)))
	}
	if req.Notes != "" {
		opts = append(opts, models.WithNotes(validation.SanitizeText(req.Notes)))
	}
	if req.Frequency != "" {
		opts = append(opts, models.WithFrequency(models.TaskFrequency(req.Frequency)))
	}
	if req.DueDate != "" {
		due, err := time.Parse(dueDateLayout, req.DueDate)
		if err != nil {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid due_date")
			return
		}
		opts = append(opts, models.WithDueDate(due))
	}

	task, err := models.NewTask(validation.SanitizeText(req.Name), models.TaskCategory(req.Category),
		req.DurationMinutes, req.Priority, opts...)
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}

	defer h.session.lock()()
	h.session.tasks = append(h.session.tasks, task)

	h.logger.Info("task_created",
		zap.String("task_id", task.ID.String()),
		zap.String("name", task.Name),
		zap.String("category", string(task.Category)),
		zap.Int("priority", task.Priority),
	)
	respondJSON(w, http.StatusCreated, task)
}

// GetTask returns a single pool task by ID
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	defer h.session.lock()()
	task := h.session.findTask(id)
	if task == nil {
		respondJSONError(w, http.StatusNotFound, "Not Found", "Task not found")
		return
	}
	respondJSON(w, http.StatusOK, task)
}

// DeleteTask removes a task from the pool. Removal is the API's job: the
// scheduling core never deletes tasks.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	defer h.session.lock()()
	task := h.session.findTask(id)
	if task == nil || !h.session.removeTask(task) {
		respondJSONError(w, http.StatusNotFound, "Not Found", "Task not found")
		return
	}

	h.logger.Info("task_deleted", zap.String("task_id", id.String()))
	respondJSON(w, http.StatusOK, task)
}

// CompleteTask marks a task complete, appending the regenerated instance to
// the pool when the task recurs.
func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	defer h.session.lock()()
	task := h.session.findTask(id)
	if task == nil {
		respondJSONError(w, http.StatusNotFound, "Not Found", "Task not found")
		return
	}

	sched := scheduler.New(h.session.owner, h.session.pet, h.session.tasks, scheduler.WithLogger(h.logger))
	next, err := sched.CompleteTask(task)
	if err != nil {
		if errors.Is(err, scheduler.ErrTaskNotFound) {
			respondJSONError(w, http.StatusNotFound, "Not Found", "Task not found")
			return
		}
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to complete task")
		return
	}
	// Pick up the regenerated instance appended by the scheduler
	h.session.tasks = sched.Tasks()

	respondJSON(w, http.StatusOK, CompleteTaskResponse{Completed: task, Next: next})
}

// ReopenTask clears a task's completion flag
func (h *TaskHandler) ReopenTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	defer h.session.lock()()
	task := h.session.findTask(id)
	if task == nil {
		respondJSONError(w, http.StatusNotFound, "Not Found", "Task not found")
		return
	}

	task.MarkIncomplete()
	respondJSON(w, http.StatusOK, task)
}

// parseTaskID extracts and parses the {id} path variable, writing the error
// response itself on failure.
func parseTaskID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := uuid.Parse(idStr)
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid task ID")
		return uuid.Nil, false
	}
	return id, true
}

// intersect keeps the tasks of a that are also in b, preserving a's order
func intersect(a, b []*models.Task) []*models.Task {
	inB := make(map[*models.Task]bool, len(b))
	for _, t := range b {
		inB[t] = true
	}
	out := make([]*models.Task, 0, len(a))
	for _, t := range a {
		if inB[t] {
			out = append(out, t)
		}
	}
	return out
}
