package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pawpal/pawpal/internal/scheduler"
	"go.uber.org/zap"
)

// PlanHandler generates day plans and conflict reports
type PlanHandler struct {
	session *Session
	logger  *zap.Logger
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(session *Session, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{session: session, logger: logger}
}

// RegisterRoutes registers planning routes on the given router
func (h *PlanHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/plan", h.GeneratePlan).Methods("POST")
	r.HandleFunc("/conflicts", h.GetConflicts).Methods("GET")
}

// PlanRequest represents a plan generation request
type PlanRequest struct {
	Date             string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	IncludeCompleted bool   `json:"include_completed"`
}

// PlanResponse is the generated day plan
type PlanResponse struct {
	Date           string            `json:"date"`
	Owner          string            `json:"owner"`
	Pet            string            `json:"pet"`
	Entries        []scheduler.Entry `json:"entries"`
	TotalHours     float64           `json:"total_hours"`
	AvailableHours float64           `json:"available_hours"`
	Feasible       bool              `json:"feasible"`
	Explanation    string            `json:"explanation"`
	Warnings       []string          `json:"warnings"`
}

// GeneratePlan runs the planning pipeline over the session pool
func (h *PlanHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if r.ContentLength > 0 {
		if !decodeAndValidate(w, r, &req) {
			return
		}
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Date != "" {
		parsed, err := time.Parse(dueDateLayout, req.Date)
		if err != nil {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid date")
			return
		}
		date = parsed
	}

	defer h.session.lock()()
	if h.session.owner == nil || h.session.pet == nil {
		respondJSONError(w, http.StatusConflict, "Conflict", "Owner and pet must be configured before planning")
		return
	}

	sched := scheduler.New(h.session.owner, h.session.pet, h.session.tasks, scheduler.WithLogger(h.logger))
	schedule, warnings := sched.GeneratePlan(date, req.IncludeCompleted)
	if warnings == nil {
		warnings = []string{}
	}

	respondJSON(w, http.StatusOK, PlanResponse{
		Date:           schedule.Date.Format(dueDateLayout),
		Owner:          h.session.owner.Name,
		Pet:            h.session.pet.Name,
		Entries:        schedule.Entries(),
		TotalHours:     schedule.TotalHours(),
		AvailableHours: h.session.owner.AvailableHoursPerDay,
		Feasible:       schedule.IsFeasible(),
		Explanation:    schedule.Explanation(),
		Warnings:       warnings,
	})
}

// ConflictsResponse lists advisory conflict warnings over the current pool
type ConflictsResponse struct {
	Warnings []string `json:"warnings"`
}

// GetConflicts reports time-of-day conflicts across the incomplete pool tasks
func (h *PlanHandler) GetConflicts(w http.ResponseWriter, r *http.Request) {
	defer h.session.lock()()

	sched := scheduler.New(h.session.owner, h.session.pet, h.session.tasks)
	warnings := sched.DetectConflicts(sched.Tasks())
	if warnings == nil {
		warnings = []string{}
	}

	respondJSON(w, http.StatusOK, ConflictsResponse{Warnings: warnings})
}
