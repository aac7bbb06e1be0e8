package model

import "time"

// WalkStatus is the lifecycle state of a walk. Every walk starts Scheduled;
// Completed and Canceled are the terminal states.
type WalkStatus string

const (
	WalkScheduled WalkStatus = "Scheduled"
	WalkCompleted WalkStatus = "Completed"
	WalkCanceled  WalkStatus = "Canceled"
)

// Walk represents a walk in the database. DogName and WalkerName are only
// populated by joined reads; they are empty when the referenced row is gone.
type Walk struct {
	ID         int64
	StartTime  time.Time
	Duration   time.Duration
	Status     WalkStatus
	DogID      int64
	WalkerID   int64
	DogName    string
	WalkerName string
}

// ScheduleWalkRequest represents a walk scheduling request.
type ScheduleWalkRequest struct {
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int64     `json:"duration_minutes"`
	DogID           int64     `json:"dog_id"`
	WalkerID        int64     `json:"walker_id"`
}

// WalkResponse is the display projection of a walk, carrying denormalized
// dog and walker names from the joined read.
type WalkResponse struct {
	ID              int64      `json:"id"`
	StartTime       time.Time  `json:"start_time"`
	DurationMinutes int64      `json:"duration_minutes"`
	Status          WalkStatus `json:"status"`
	DogName         string     `json:"dog_name"`
	WalkerName      string     `json:"walker_name"`
}
