package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/pawpal/pawpal/internal/models"
	"github.com/pawpal/pawpal/internal/validation"
	"go.uber.org/zap"
)

// SetupHandler manages the session's owner and pet
type SetupHandler struct {
	session *Session
	logger  *zap.Logger
}

// NewSetupHandler creates a new setup handler
func NewSetupHandler(session *Session, logger *zap.Logger) *SetupHandler {
	return &SetupHandler{session: session, logger: logger}
}

// RegisterRoutes registers owner and pet routes on the given router
func (h *SetupHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/owner", h.PutOwner).Methods("PUT")
	r.HandleFunc("/owner", h.GetOwner).Methods("GET")
	r.HandleFunc("/pet", h.PutPet).Methods("PUT")
	r.HandleFunc("/pet", h.GetPet).Methods("GET")
}

// OwnerRequest represents an owner create/update request
type OwnerRequest struct {
	Name           string            `json:"name" validate:"required,min=1,max=200"`
	AvailableHours float64           `json:"available_hours" validate:"gte=0,lte=24"`
	Preferences    map[string]string `json:"preferences,omitempty"`
}

// PetRequest represents a pet create/update request
type PetRequest struct {
	Name         string   `json:"name" validate:"required,min=1,max=200"`
	Species      string   `json:"species" validate:"required,min=1,max=100"`
	Age          int      `json:"age" validate:"gte=0,lte=200"`
	SpecialNeeds []string `json:"special_needs,omitempty"`
}

// PutOwner sets or replaces the session owner
func (h *SetupHandler) PutOwner(w http.ResponseWriter, r *http.Request) {
	var req OwnerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	owner, err := models.NewOwner(validation.SanitizeText(req.Name), req.AvailableHours)
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	if req.Preferences != nil {
		owner.UpdatePreferences(req.Preferences)
	}

	defer h.session.lock()()
	h.session.owner = owner

	h.logger.Info("owner_updated",
		zap.String("owner", owner.Name),
		zap.Float64("available_hours", owner.AvailableHoursPerDay),
	)
	respondJSON(w, http.StatusOK, owner)
}

// GetOwner returns the session owner
func (h *SetupHandler) GetOwner(w http.ResponseWriter, r *http.Request) {
	defer h.session.lock()()
	if h.session.owner == nil {
		respondJSONError(w, http.StatusNotFound, "Not Found", "No owner configured")
		return
	}
	respondJSON(w, http.StatusOK, h.session.owner)
}

// PutPet sets or replaces the session pet
func (h *SetupHandler) PutPet(w http.ResponseWriter, r *http.Request) {
	var req PetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	pet, err := models.NewPet(validation.SanitizeText(req.Name), validation.SanitizeText(req.Species), req.Age, req.SpecialNeeds)
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}

	defer h.session.lock()()
	h.session.pet = pet

	h.logger.Info("pet_updated",
		zap.String("pet", pet.Name),
		zap.String("species", pet.Species),
	)
	respondJSON(w, http.StatusOK, pet)
}

// GetPet returns the session pet
func (h *SetupHandler) GetPet(w http.ResponseWriter, r *http.Request) {
	defer h.session.lock()()
	if h.session.pet == nil {
		respondJSONError(w, http.StatusNotFound, "Not Found", "No pet configured")
		return
	}
	respondJSON(w, http.StatusOK, h.session.pet)
}

// decodeAndValidate decodes the JSON body into req and runs struct
// validation, writing the error response itself on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		if maxBytesErr, ok := err.(*http.MaxBytesError); ok {
			respondJSONError(w, http.StatusRequestEntityTooLarge, "Request Entity Too Large",
				fmt.Sprintf("Request body exceeds maximum size of %d bytes", maxBytesErr.Limit))
			return false
		}
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid request body")
		return false
	}

	if err := validation.Validate.Struct(req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
			respondJSONError(w, http.StatusBadRequest, "Bad Request",
				fmt.Sprintf("Validation failed: %s", validationErrors[0].Error()))
			return false
		}
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Validation failed")
		return false
	}
	return true
}
