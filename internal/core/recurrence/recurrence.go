// Package recurrence decides which calendar days a repeating task occurs on
// and materializes display-only instances for those days. Everything here is
// day-granularity: times of day never influence a match.
package recurrence

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"taskflow/internal/core/domain"
)

const (
	dateLayout = "2006-01-02"

	// instanceMarker joins a source task id and an occurrence date into a
	// synthesized instance id. Task ids are uuids, so the marker cannot
	// appear inside a stored id.
	instanceMarker = "-repeat-"
)

// ErrInvalidDate signals a repeating task whose stored dates are unusable.
// Malformed rows are rejected rather than silently skipped so the caller's
// error path surfaces them.
var ErrInvalidDate = errors.New("invalid recurrence date")

// InstanceID synthesizes the id of the occurrence of task taskID on date.
func InstanceID(taskID string, date time.Time) string {
	return taskID + instanceMarker + date.Format(dateLayout)
}

// IsInstanceID reports whether id names a generated occurrence rather than
// a stored row.
func IsInstanceID(id string) bool {
	return strings.Contains(id, instanceMarker)
}

// SourceTaskID recovers the stored task id an instance id was derived from.
// For a plain stored id it returns the id unchanged.
func SourceTaskID(id string) string {
	if idx := strings.Index(id, instanceMarker); idx >= 0 {
		return id[:idx]
	}
	return id
}

// ParseInstanceID splits an instance id into its source task id and
// occurrence date.
func ParseInstanceID(id string) (string, time.Time, error) {
	idx := strings.Index(id, instanceMarker)
	if idx < 0 {
		return "", time.Time{}, fmt.Errorf("%s: not an instance id: %w", id, ErrInvalidDate)
	}
	date, err := time.Parse(dateLayout, id[idx+len(instanceMarker):])
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", id, ErrInvalidDate)
	}
	return id[:idx], date, nil
}

// OccursOn reports whether task produces an occurrence on target. The
// task's own start date never matches: that day is covered by the stored
// row itself. The repeat end date, when set, is an inclusive bound.
func OccursOn(task domain.Task, target time.Time) (bool, error) {
	if task.StartDate.IsZero() {
		return false, fmt.Errorf("task %s: %w", task.ID, ErrInvalidDate)
	}

	if task.RepeatEndDate != nil && dateOnly(target).After(dateOnly(*task.RepeatEndDate)) {
		return false, nil
	}

	daysDiff := daysBetween(task.StartDate, target)
	if daysDiff <= 0 {
		return false, nil
	}

	if task.RepeatType == nil {
		return false, nil
	}

	switch *task.RepeatType {
	case domain.RepeatDaily:
		return true, nil
	case domain.RepeatWeekly:
		return daysDiff%7 == 0, nil
	case domain.RepeatMonthly:
		// Exact day-of-month match in a different month or year. A start
		// day that does not exist in a shorter month simply never matches.
		return task.StartDate.Day() == target.Day() &&
			(task.StartDate.Month() != target.Month() || task.StartDate.Year() != target.Year()), nil
	case domain.RepeatCustom:
		interval := task.RepeatInterval
		if interval < 1 {
			interval = 1
		}
		return daysDiff%interval == 0, nil
	default:
		return false, nil
	}
}

// Materialize builds the display-only occurrence of task on date. The
// instance carries the occurrence date, a synthesized id, and starts out
// not completed regardless of the source row; completion of instances is
// view state, never persisted.
func Materialize(task domain.Task, date time.Time) domain.Task {
	instance := task
	instance.ID = InstanceID(task.ID, date)
	instance.StartDate = dateOnly(date)
	instance.Completed = false
	instance.IsRepeatInstance = true
	return instance
}

// Expand generates the occurrences of the given repeating tasks on target.
// Tasks whose start date equals target are skipped: the direct fetch
// already returns their stored rows.
func Expand(tasks []domain.Task, target time.Time) ([]domain.Task, error) {
	instances := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if sameDay(task.StartDate, target) {
			continue
		}
		match, err := OccursOn(task, target)
		if err != nil {
			return nil, err
		}
		if match {
			instances = append(instances, Materialize(task, target))
		}
	}
	return instances, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return dateOnly(a).Equal(dateOnly(b))
}

func daysBetween(start, target time.Time) int {
	return int(dateOnly(target).Sub(dateOnly(start)).Hours() / 24)
}
