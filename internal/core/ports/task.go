package ports

import (
	"context"
	"time"

	"taskflow/internal/core/domain"
)

type TaskRepository interface {
	// ListByDate returns the user's tasks stored directly on date, ordered
	// by start time.
	ListByDate(ctx context.Context, userID string, date time.Time) ([]domain.Task, error)
	// ListRepeatingThrough returns the user's repeat-enabled tasks whose
	// start date is on or before date.
	ListRepeatingThrough(ctx context.Context, userID string, date time.Time) ([]domain.Task, error)
	GetByID(ctx context.Context, userID, taskID string) (domain.Task, error)
	Create(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, userID, taskID string, input domain.CreateTaskInput) (domain.Task, error)
	SetCompleted(ctx context.Context, userID, taskID string, completed bool) (domain.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
}

type TaskService interface {
	TasksForDate(ctx context.Context, userID string, date time.Time) ([]domain.Task, error)
	CreateTask(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, userID, taskID string, input domain.CreateTaskInput) (domain.Task, error)
	ToggleCompletion(ctx context.Context, userID, taskID string, completed bool) (domain.Task, error)
	DeleteTask(ctx context.Context, userID, taskID string) error
}
