package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wodtracker/internal/client/repositories/credentials"
	"wodtracker/internal/common"
	"wodtracker/internal/logging"
)

type memCreds struct {
	data map[string][]byte
}

func newMemCreds() *memCreds {
	return &memCreds{data: make(map[string][]byte)}
}

func (m *memCreds) Get(ctx context.Context, key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memCreds) Set(ctx context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

func (m *memCreds) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memCreds) Clear(ctx context.Context) error {
	m.data = make(map[string][]byte)
	return nil
}

var _ credentials.Repository = (*memCreds)(nil)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *memCreds) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	creds := newMemCreds()
	return NewClient(srv.URL, creds, logging.NewJSON(io.Discard)), creds
}

func TestLogin_ReturnsToken(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "alice@example.com", body.Email)
		require.Equal(t, "secret1", body.Password)
		require.Empty(t, r.Header.Get("Authorization"), "login must not send a bearer token")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"token": "a.b.c"})
	})
	c, _ := newTestClient(t, handler)

	token, err := c.Login(context.Background(), "alice@example.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, "a.b.c", token)
}

func TestLogin_ServerMessageBecomesError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials."})
	})
	c, _ := newTestClient(t, handler)

	_, err := c.Login(context.Background(), "alice@example.com", "wrong")
	require.EqualError(t, err, "Invalid credentials.")
}

func TestLogin_Unauthorized_KeepsServerMessage(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials."})
	})
	c, _ := newTestClient(t, handler)

	_, err := c.Login(context.Background(), "alice@example.com", "wrong")
	require.EqualError(t, err, "Invalid credentials.")
	require.NotErrorIs(t, err, common.ErrorUnauthorized,
		"a failed login is not an expired session")
}

func TestRegister_Created(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
	})
	c, _ := newTestClient(t, handler)

	require.NoError(t, c.Register(context.Background(), "alice@example.com", "secret1"))
}

func TestRegister_Conflict(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "Username already taken."})
	})
	c, _ := newTestClient(t, handler)

	err := c.Register(context.Background(), "alice@example.com", "secret1")
	require.EqualError(t, err, "Username already taken.")
}

func TestListWorkouts_SendsPersistedBearerToken(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]Workout{
			{ID: "w1", Name: "Fran", CreatedAt: time.Now().UTC()},
		})
	})
	c, creds := newTestClient(t, handler)
	require.NoError(t, creds.Set(context.Background(), credentials.KeyToken, []byte("x.y.z")))

	workouts, err := c.ListWorkouts(context.Background())
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	require.Equal(t, "Fran", workouts[0].Name)
	require.Equal(t, "Bearer x.y.z", gotAuth)
}

func TestListWorkouts_NoToken_SendsUnauthenticated(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]Workout{})
	})
	c, _ := newTestClient(t, handler)

	_, err := c.ListWorkouts(context.Background())
	require.NoError(t, err)
	require.Empty(t, gotAuth)
}

func TestUnauthorized_MapsToSentinel(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized."})
	})
	c, _ := newTestClient(t, handler)

	_, err := c.ListWorkouts(context.Background())
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = c.CreateWorkout(context.Background(), "Fran", "")
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = c.GetWorkout(context.Background(), "w1")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestCreateWorkout(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/workouts", r.URL.Path)

		var body struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Workout{ID: "w1", Name: body.Name, Description: body.Description})
	})
	c, _ := newTestClient(t, handler)

	workout, err := c.CreateWorkout(context.Background(), "Fran", "21-15-9 thrusters and pull-ups")
	require.NoError(t, err)
	require.Equal(t, "w1", workout.ID)
	require.Equal(t, "Fran", workout.Name)
}

func TestGetWorkout_NotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Workout not found."})
	})
	c, _ := newTestClient(t, handler)

	_, err := c.GetWorkout(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
