package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"wodtracker/internal/common"
	"wodtracker/internal/logging"
	"wodtracker/internal/server/users"
)

// UserService is the narrow account surface the auth handlers need.
// *users.Service satisfies it; tests can provide a fake.
type UserService interface {
	Register(ctx context.Context, username, password string) (*users.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthCollector records auth outcomes. A nil-safe no-op is not provided;
// pass a metrics.Collector.
type AuthCollector interface {
	RecordLoginSuccess()
	RecordLoginFailure()
	RecordRegistration()
}

type AuthHandler struct {
	service UserService
	metrics AuthCollector
	logger  logging.Logger
}

func NewAuthHandler(service UserService, collector AuthCollector, logger logging.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		metrics: collector,
		logger:  logger.With("module", "auth_handler"),
	}
}

// credentialsBody accepts both field spellings the clients use: the forms
// submit "email", older clients send "username".
type credentialsBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (b *credentialsBody) login() string {
	if b.Username != "" {
		return b.Username
	}
	return b.Email
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body credentialsBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, msgFieldsRequired)
		return
	}

	user, err := h.service.Register(r.Context(), body.login(), body.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeMessage(w, http.StatusBadRequest, msgFieldsRequired)
		case errors.Is(err, common.ErrorAlreadyExists):
			writeMessage(w, http.StatusConflict, msgUsernameTaken)
		default:
			h.logger.Error(r.Context(), "registration failed", "error", err.Error())
			writeMessage(w, http.StatusInternalServerError, msgServerError)
		}
		return
	}

	h.metrics.RecordRegistration()
	h.logger.Info(r.Context(), "user registered", "username", user.Username)

	writeJSON(w, http.StatusCreated, map[string]string{
		"id":       user.ID,
		"username": user.Username,
	})
}

// Login handles POST /api/auth/login. Unknown users and wrong passwords get
// an identical response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body credentialsBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, msgFieldsRequired)
		return
	}

	token, err := h.service.Login(r.Context(), body.login(), body.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeMessage(w, http.StatusBadRequest, msgFieldsRequired)
		case errors.Is(err, common.ErrorUnauthorized):
			h.metrics.RecordLoginFailure()
			writeMessage(w, http.StatusUnauthorized, msgInvalidCredentials)
		default:
			h.logger.Error(r.Context(), "login failed", "error", err.Error())
			writeMessage(w, http.StatusInternalServerError, msgServerError)
		}
		return
	}

	h.metrics.RecordLoginSuccess()

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
