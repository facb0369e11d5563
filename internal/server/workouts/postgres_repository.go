package workouts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"wodtracker/internal/common"
	"wodtracker/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, workout *Workout) (*Workout, error) {

	query :=
		`INSERT INTO workouts (id, user_id, name, description)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	workout.ID = uuid.NewString()

	err := r.db.QueryRowContext(ctx, query,
		workout.ID, workout.UserID, workout.Name, workout.Description).Scan(&workout.ID, &workout.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return workout, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*Workout, error) {
	query :=
		`SELECT id, user_id, name, description, created_at FROM workouts
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := make([]*Workout, 0)
	for rows.Next() {
		w := &Workout{}
		if err := rows.Scan(&w.ID, &w.UserID, &w.Name, &w.Description, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning workout row: %w", err)
		}
		result = append(result, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workout rows: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID string, id string) (*Workout, error) {
	query :=
		`SELECT id, user_id, name, description, created_at FROM workouts
		 WHERE user_id = $1 AND id = $2
		 `

	w := &Workout{}
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(&w.ID, &w.UserID, &w.Name, &w.Description, &w.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return w, nil
}
