package workouts

import "time"

// Workout is a user-owned training record.
type Workout struct {
	ID          string
	UserID      string
	Name        string
	Description string
	CreatedAt   time.Time
}
