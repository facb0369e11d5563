package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"wodtracker/internal/client/repositories/credentials"
	"wodtracker/internal/common"
	"wodtracker/internal/logging"
)

// Client talks to the tracker server over HTTP. Authenticated requests read
// the bearer token from persisted credentials, so a token adopted by one
// component is immediately visible to every request that follows.
type Client struct {
	baseURL string
	http    *http.Client
	creds   credentials.Repository
	logger  logging.Logger
}

func NewClient(baseURL string, creds credentials.Repository, logger logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		creds:   creds,
		logger:  logger,
	}
}

type messageBody struct {
	Message string `json:"message"`
}

type credentialsBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Workout mirrors the server's workout resource.
type Workout struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// apiError extracts the server's message for a non-2xx response. The body
// message is surfaced as-is so the user sees what the server said.
func apiError(resp *http.Response) error {
	var body messageBody
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return fmt.Errorf("%s", body.Message)
	}
	return fmt.Errorf("server returned status %d", resp.StatusCode)
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, authed bool) (*http.Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		if err := c.attachToken(ctx, req); err != nil {
			return nil, err
		}
	}
	return c.do(req, authed)
}

func (c *Client) getJSON(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if err := c.attachToken(ctx, req); err != nil {
		return nil, err
	}
	return c.do(req, true)
}

// attachToken adds the persisted bearer token when one exists. An absent
// token sends the request unauthenticated and lets the server answer 401.
func (c *Client) attachToken(ctx context.Context, req *http.Request) error {
	token, err := c.creds.Get(ctx, credentials.KeyToken)
	if err != nil {
		return fmt.Errorf("reading stored token: %w", err)
	}
	if len(token) > 0 {
		req.Header.Set(common.AuthHeaderName, common.BearerPrefix+string(token))
	}
	return nil
}

// do runs the request. For authed requests a 401 means the stored token is
// no longer accepted, so it is mapped to the shared unauthorized sentinel
// and callers can detect an expired session in one place. The public auth
// endpoints answer 401 with their own message (a failed login), which must
// reach the user verbatim, so their responses pass through untouched.
func (c *Client) do(req *http.Request, authed bool) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if authed && resp.StatusCode == http.StatusUnauthorized {
		defer resp.Body.Close()
		io.Copy(io.Discard, resp.Body)
		c.logger.Info(req.Context(), "request rejected as unauthorized", "path", req.URL.Path)
		return nil, common.ErrorUnauthorized
	}
	return resp, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := c.postJSON(ctx, "/api/auth/login", credentialsBody{Email: email, Password: password}, false)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apiError(resp)
	}
	var body loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding login response: %w", err)
	}
	return body.Token, nil
}

// Register creates an account. It does not log the user in.
func (c *Client) Register(ctx context.Context, email, password string) error {
	resp, err := c.postJSON(ctx, "/api/auth/register", credentialsBody{Email: email, Password: password}, false)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return apiError(resp)
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) ListWorkouts(ctx context.Context) ([]Workout, error) {
	resp, err := c.getJSON(ctx, "/workouts")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}
	var workouts []Workout
	if err := json.NewDecoder(resp.Body).Decode(&workouts); err != nil {
		return nil, fmt.Errorf("decoding workouts: %w", err)
	}
	return workouts, nil
}

func (c *Client) CreateWorkout(ctx context.Context, name, description string) (*Workout, error) {
	payload := struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}{Name: name, Description: description}

	resp, err := c.postJSON(ctx, "/workouts", payload, true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp)
	}
	var w Workout
	if err := json.NewDecoder(resp.Body).Decode(&w); err != nil {
		return nil, fmt.Errorf("decoding workout: %w", err)
	}
	return &w, nil
}

func (c *Client) GetWorkout(ctx context.Context, id string) (*Workout, error) {
	resp, err := c.getJSON(ctx, "/workouts/"+id)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, common.ErrorNotFound
	default:
		return nil, apiError(resp)
	}
	var w Workout
	if err := json.NewDecoder(resp.Body).Decode(&w); err != nil {
		return nil, fmt.Errorf("decoding workout: %w", err)
	}
	return &w, nil
}
