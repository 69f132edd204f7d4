package validation

import (
	"errors"
	"strings"
	"time"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

const (
	dateLayout = "2006-01-02"

	defaultCategory      = "Work"
	defaultCategoryColor = "#3b82f6"
)

// BuildTaskInput normalizes a save-task payload into a domain input,
// applying the repeat-field rules: the interval only survives for custom
// repeats (1 otherwise), and the repeat type and end date are dropped
// entirely when repetition is off. The end date is dropped when absent even
// if repetition is on.
func BuildTaskInput(req dto.SaveTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	if req.Duration == nil || *req.Duration <= 0 {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	if _, err := time.Parse("15:04", req.StartTime); err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.CreateTaskInput{
		Title:           title,
		DurationMinutes: *req.Duration,
		StartDate:       startDate,
		StartTime:       req.StartTime,
		Category:        req.Category,
		CategoryColor:   req.CategoryColor,
		Notes:           req.Notes,
		HasRepeat:       req.HasRepeat,
		RepeatInterval:  1,
	}

	if input.Category == "" {
		input.Category = defaultCategory
	}
	if input.CategoryColor == "" {
		input.CategoryColor = defaultCategoryColor
	}

	if req.Notes != nil && strings.TrimSpace(*req.Notes) == "" {
		input.Notes = nil
	}

	if !req.HasRepeat {
		return input, nil
	}

	if req.RepeatType == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	repeatType := domain.RepeatType(*req.RepeatType)
	input.RepeatType = &repeatType

	if repeatType == domain.RepeatCustom {
		if req.RepeatInterval == nil || *req.RepeatInterval < 1 {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.RepeatInterval = *req.RepeatInterval
	}

	if req.RepeatEndDate != nil {
		endDate, err := time.Parse(dateLayout, *req.RepeatEndDate)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		if endDate.Before(startDate) {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.RepeatEndDate = &endDate
	}

	return input, nil
}
