package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"wodtracker/internal/common"
	"wodtracker/internal/logging"
	"wodtracker/internal/server/workouts"
)

// WorkoutService is the surface the workout handlers need.
type WorkoutService interface {
	Create(ctx context.Context, userID, name, description string) (*workouts.Workout, error)
	List(ctx context.Context, userID string) ([]*workouts.Workout, error)
	Get(ctx context.Context, userID, id string) (*workouts.Workout, error)
}

type WorkoutHandler struct {
	service WorkoutService
	logger  logging.Logger
}

func NewWorkoutHandler(service WorkoutService, logger logging.Logger) *WorkoutHandler {
	return &WorkoutHandler{
		service: service,
		logger:  logger.With("module", "workout_handler"),
	}
}

type workoutBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type workoutResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func toWorkoutResponse(w *workouts.Workout) workoutResponse {
	return workoutResponse{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		CreatedAt:   w.CreatedAt,
	}
}

// List handles GET /workouts.
func (h *WorkoutHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	result, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.logger.Error(r.Context(), "listing workouts failed", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	out := make([]workoutResponse, 0, len(result))
	for _, item := range result {
		out = append(out, toWorkoutResponse(item))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /workouts.
func (h *WorkoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var body workoutBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, msgWorkoutNameRequired)
		return
	}

	workout, err := h.service.Create(r.Context(), userID, body.Name, body.Description)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeMessage(w, http.StatusBadRequest, msgWorkoutNameRequired)
			return
		}
		h.logger.Error(r.Context(), "creating workout failed", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toWorkoutResponse(workout))
}

// Get handles GET /workouts/{id}.
func (h *WorkoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	workout, err := h.service.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeMessage(w, http.StatusNotFound, msgWorkoutNotFound)
			return
		}
		h.logger.Error(r.Context(), "fetching workout failed", "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	writeJSON(w, http.StatusOK, toWorkoutResponse(workout))
}
