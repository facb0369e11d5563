package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"wodtracker/internal/common"
)

// handleAPIError reports a failed workout call to the user. An unauthorized
// response means the stored token is no longer accepted, so the session is
// dropped in one place instead of every command handling 401 on its own.
func (a *App) handleAPIError(ctx context.Context, err error) {
	if errors.Is(err, common.ErrorUnauthorized) {
		printlnFn("Session expired, please log in again.")
		if lerr := a.session.Logout(ctx); lerr != nil {
			a.logger.Warn(ctx, "clearing expired session failed", "error", lerr.Error())
		}
		return
	}
	printlnFn(err.Error())
}

func (a *App) ListWorkouts(ctx context.Context) error {
	workouts, err := a.api.ListWorkouts(ctx)
	if err != nil {
		a.handleAPIError(ctx, err)
		return err
	}

	if len(workouts) == 0 {
		printlnFn("No workouts yet. Use 'add' to create one.")
		return nil
	}
	for _, w := range workouts {
		printlnFn(fmt.Sprintf("%s  %s  (%s)", w.ID, w.Name, w.CreatedAt.Format("2006-01-02")))
	}
	return nil
}

func (a *App) AddWorkout(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Workout name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}

	w, err := a.api.CreateWorkout(ctx, name, description)
	if err != nil {
		a.handleAPIError(ctx, err)
		return err
	}

	printlnFn("Created workout", w.ID)
	return nil
}

func (a *App) ShowWorkout(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Workout id", os.Stdout)
	if err != nil {
		return err
	}

	w, err := a.api.GetWorkout(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("Workout not found.")
			return err
		}
		a.handleAPIError(ctx, err)
		return err
	}

	printlnFn(fmt.Sprintf("%s\n%s\nCreated: %s", w.Name, w.Description, w.CreatedAt.Format("2006-01-02 15:04")))
	return nil
}
