package httpapi

import (
	"encoding/json"
	"net/http"
)

// Client-facing response messages. Internal causes are logged server-side
// and never included here.
const (
	msgFieldsRequired      = "Username and password are required."
	msgUsernameTaken       = "Username already taken."
	msgInvalidCredentials  = "Invalid credentials."
	msgServerError         = "Server error."
	msgUnauthorized        = "Unauthorized."
	msgTooManyRequests     = "Too many requests."
	msgWorkoutNameRequired = "Workout name is required."
	msgWorkoutNotFound     = "Workout not found."
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMessage emits the uniform error body `{"message": ...}`.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
