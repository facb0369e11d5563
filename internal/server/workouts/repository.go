package workouts

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, workout *Workout) (*Workout, error)
	ListByUser(ctx context.Context, userID string) ([]*Workout, error)
	GetByID(ctx context.Context, userID string, id string) (*Workout, error)
}
