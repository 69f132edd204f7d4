package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

const dateLayout = "2006-01-02"

const taskColumns = `
  id, user_id, title, duration, start_date, start_time, completed,
  category, category_color, notes,
  has_repeat, repeat_type, repeat_interval, repeat_end_date,
  created_at, updated_at`

const listTasksByDateQuery = `
SELECT` + taskColumns + `
FROM tasks
WHERE user_id = ? AND start_date = ?
ORDER BY start_time, id;
`

const listRepeatingTasksQuery = `
SELECT` + taskColumns + `
FROM tasks
WHERE user_id = ? AND has_repeat = 1 AND start_date <= ?
ORDER BY start_time, id;
`

const getTaskByIDQuery = `
SELECT` + taskColumns + `
FROM tasks
WHERE user_id = ? AND id = ?;
`

const insertTaskQuery = `
INSERT INTO tasks (
  id, user_id, title, duration, start_date, start_time, completed,
  category, category_color, notes,
  has_repeat, repeat_type, repeat_interval, repeat_end_date
) VALUES (?, ?, ?, ?, ?, ?, 0, ?, ?, ?, ?, ?, ?, ?);
`

const updateTaskQuery = `
UPDATE tasks SET
  title = ?, duration = ?, start_date = ?, start_time = ?,
  category = ?, category_color = ?, notes = ?,
  has_repeat = ?, repeat_type = ?, repeat_interval = ?, repeat_end_date = ?
WHERE user_id = ? AND id = ?;
`

const setTaskCompletedQuery = `
UPDATE tasks SET completed = ? WHERE user_id = ? AND id = ?;
`

const deleteTaskQuery = `
DELETE FROM tasks WHERE user_id = ? AND id = ?;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID              string         `db:"id"`
	UserID          string         `db:"user_id"`
	Title           string         `db:"title"`
	Duration        int            `db:"duration"`
	StartDate       time.Time      `db:"start_date"`
	StartTime       string         `db:"start_time"`
	Completed       bool           `db:"completed"`
	Category        string         `db:"category"`
	CategoryColor   string         `db:"category_color"`
	Notes           sql.NullString `db:"notes"`
	HasRepeat       bool           `db:"has_repeat"`
	RepeatType      sql.NullString `db:"repeat_type"`
	RepeatInterval  int            `db:"repeat_interval"`
	RepeatEndDate   sql.NullTime   `db:"repeat_end_date"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListByDate(ctx context.Context, userID string, date time.Time) ([]domain.Task, error) {
	return r.list(ctx, listTasksByDateQuery, userID, date.Format(dateLayout))
}

func (r *TaskRepository) ListRepeatingThrough(ctx context.Context, userID string, date time.Time) ([]domain.Task, error) {
	return r.list(ctx, listRepeatingTasksQuery, userID, date.Format(dateLayout))
}

func (r *TaskRepository) list(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, userID, taskID string) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskByIDQuery, userID, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) Create(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error) {
	taskID := uuid.NewString()

	_, err := r.db.ExecContext(ctx, insertTaskQuery,
		taskID,
		userID,
		input.Title,
		input.DurationMinutes,
		input.StartDate.Format(dateLayout),
		input.StartTime,
		input.Category,
		input.CategoryColor,
		input.Notes,
		input.HasRepeat,
		repeatTypeValue(input.RepeatType),
		input.RepeatInterval,
		dateValue(input.RepeatEndDate),
	)
	if err != nil {
		return domain.Task{}, err
	}

	return r.GetByID(ctx, userID, taskID)
}

func (r *TaskRepository) Update(ctx context.Context, userID, taskID string, input domain.CreateTaskInput) (domain.Task, error) {
	_, err := r.db.ExecContext(ctx, updateTaskQuery,
		input.Title,
		input.DurationMinutes,
		input.StartDate.Format(dateLayout),
		input.StartTime,
		input.Category,
		input.CategoryColor,
		input.Notes,
		input.HasRepeat,
		repeatTypeValue(input.RepeatType),
		input.RepeatInterval,
		dateValue(input.RepeatEndDate),
		userID,
		taskID,
	)
	if err != nil {
		return domain.Task{}, err
	}

	return r.GetByID(ctx, userID, taskID)
}

func (r *TaskRepository) SetCompleted(ctx context.Context, userID, taskID string, completed bool) (domain.Task, error) {
	if _, err := r.db.ExecContext(ctx, setTaskCompletedQuery, completed, userID, taskID); err != nil {
		return domain.Task{}, err
	}
	return r.GetByID(ctx, userID, taskID)
}

func (r *TaskRepository) Delete(ctx context.Context, userID, taskID string) error {
	result, err := r.db.ExecContext(ctx, deleteTaskQuery, userID, taskID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:              row.ID,
		UserID:          row.UserID,
		Title:           row.Title,
		DurationMinutes: row.Duration,
		StartDate:       row.StartDate,
		StartTime:       normalizeClock(row.StartTime),
		Completed:       row.Completed,
		Category:        row.Category,
		CategoryColor:   row.CategoryColor,
		HasRepeat:       row.HasRepeat,
		RepeatInterval:  row.RepeatInterval,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}

	if row.Notes.Valid {
		value := row.Notes.String
		task.Notes = &value
	}

	if row.RepeatType.Valid {
		value := domain.RepeatType(row.RepeatType.String)
		task.RepeatType = &value
	}

	if row.RepeatEndDate.Valid {
		value := row.RepeatEndDate.Time
		task.RepeatEndDate = &value
	}

	return task
}

func repeatTypeValue(value *domain.RepeatType) *string {
	if value == nil {
		return nil
	}
	s := string(*value)
	return &s
}

func dateValue(value *time.Time) *string {
	if value == nil {
		return nil
	}
	s := value.Format(dateLayout)
	return &s
}

// normalizeClock trims MySQL TIME values ("07:30:00") to the "07:30" form
// the rest of the system uses.
func normalizeClock(value string) string {
	if strings.Count(value, ":") == 2 {
		return value[:strings.LastIndex(value, ":")]
	}
	return value
}
