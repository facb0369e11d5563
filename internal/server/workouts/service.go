// Package workouts holds server-side workout management for authenticated
// users. Every operation is scoped to the owning user id taken from the
// verified access token, never from the request body.
package workouts

import (
	"context"
	"errors"
	"strings"

	"wodtracker/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a workout for userID. Name is required; description may be
// empty.
func (s *Service) Create(ctx context.Context, userID, name, description string) (*Workout, error) {

	if strings.TrimSpace(name) == "" {
		return nil, common.ErrorValidation
	}

	workout := &Workout{
		UserID:      userID,
		Name:        strings.TrimSpace(name),
		Description: description,
	}

	workout, err := s.repo.Create(ctx, workout)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return workout, nil
}

// List returns the user's workouts, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]*Workout, error) {
	result, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return result, nil
}

// Get returns a single workout owned by userID or common.ErrorNotFound.
func (s *Service) Get(ctx context.Context, userID, id string) (*Workout, error) {
	w, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return w, nil
}
