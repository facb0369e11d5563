// Package storage wires the server's PostgreSQL connection, runs schema
// migrations, and hands out repositories to the service layer.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"wodtracker/internal/server/migrations"
	"wodtracker/internal/server/users"
	"wodtracker/internal/server/workouts"
)

type PostgresManager struct {
	db       *sql.DB
	users    users.Repository
	workouts workouts.Repository
}

func (m *PostgresManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresManager) Users() users.Repository {
	return m.users
}

func (m *PostgresManager) Workouts() workouts.Repository {
	return m.workouts
}

func (m *PostgresManager) Close() error {
	return m.db.Close()
}

func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, m.db, ".")
}

func NewPostgresManager(dsn string) (*PostgresManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	userRepo, err := users.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("user repo creation error: %w", err)
	}

	workoutRepo, err := workouts.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("workout repo creation error: %w", err)
	}

	m := &PostgresManager{
		db:       db,
		users:    userRepo,
		workouts: workoutRepo,
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
