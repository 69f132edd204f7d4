package domain

import "time"

type RepeatType string

const (
	RepeatDaily   RepeatType = "daily"
	RepeatWeekly  RepeatType = "weekly"
	RepeatMonthly RepeatType = "monthly"
	RepeatCustom  RepeatType = "custom"
)

// Task is a single timeline entry. StartDate carries the calendar day only
// (UTC midnight); StartTime is the wall-clock "HH:MM" slot on that day.
type Task struct {
	ID              string
	UserID          string
	Title           string
	DurationMinutes int
	StartDate       time.Time
	StartTime       string
	Completed       bool
	Category        string
	CategoryColor   string
	Notes           *string
	HasRepeat       bool
	RepeatType      *RepeatType
	RepeatInterval  int
	RepeatEndDate   *time.Time

	// IsRepeatInstance marks a generated occurrence of a repeating task.
	// Instances are never persisted; the flag only exists on projections.
	IsRepeatInstance bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateTaskInput struct {
	Title           string
	DurationMinutes int
	StartDate       time.Time
	StartTime       string
	Category        string
	CategoryColor   string
	Notes           *string
	HasRepeat       bool
	RepeatType      *RepeatType
	RepeatInterval  int
	RepeatEndDate   *time.Time
}

type Category struct {
	ID        string
	UserID    string
	Name      string
	Color     string
	CreatedAt time.Time
}
