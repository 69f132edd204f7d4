package mapper

import (
	"time"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/core/domain"
)

const dateLayout = "2006-01-02"

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:               task.ID,
		Title:            task.Title,
		Duration:         task.DurationMinutes,
		StartDate:        task.StartDate.Format(dateLayout),
		StartTime:        task.StartTime,
		Completed:        task.Completed,
		Category:         task.Category,
		CategoryColor:    task.CategoryColor,
		HasRepeat:        task.HasRepeat,
		RepeatInterval:   task.RepeatInterval,
		IsRepeatInstance: task.IsRepeatInstance,
	}

	if task.Notes != nil {
		value := *task.Notes
		item.Notes = &value
	}

	if task.RepeatType != nil {
		value := string(*task.RepeatType)
		item.RepeatType = &value
	}

	if task.RepeatEndDate != nil {
		value := task.RepeatEndDate.Format(dateLayout)
		item.RepeatEndDate = &value
	}

	// Generated instances have no stored timestamps worth echoing.
	if !task.IsRepeatInstance {
		if !task.CreatedAt.IsZero() {
			item.CreatedAt = task.CreatedAt.Format(time.RFC3339)
		}
		if !task.UpdatedAt.IsZero() {
			item.UpdatedAt = task.UpdatedAt.Format(time.RFC3339)
		}
	}

	return item
}

func ToTaskDayView(date time.Time, tasks []domain.Task) dto.TaskDayView {
	return dto.TaskDayView{
		Date:  date.Format(dateLayout),
		Tasks: ToTaskItems(tasks),
	}
}
