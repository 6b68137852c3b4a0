package entity

import "time"

const (
	TaskStatusPending = "Pending"
	TaskStatusWorking = "Working"
	TaskStatusDone    = "Done"
)

type Task struct {
	ID          uint64
	Title       string
	Description string
	Date        time.Time
	Status      string
	IsImportant bool
	UserID      uint64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
