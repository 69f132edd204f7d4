package service

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
	"taskflow/internal/core/recurrence"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

// TasksForDate assembles the day view: tasks stored directly on date plus
// generated occurrences of repeating tasks, sorted by start time with the
// id as tiebreak so the order is deterministic. The two store queries are
// independent and run concurrently.
func (s *TaskService) TasksForDate(ctx context.Context, userID string, date time.Time) ([]domain.Task, error) {
	var direct, repeating []domain.Task

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		direct, err = s.taskRepository.ListByDate(gctx, userID, date)
		return err
	})
	g.Go(func() error {
		var err error
		repeating, err = s.taskRepository.ListRepeatingThrough(gctx, userID, date)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	instances, err := recurrence.Expand(repeating, date)
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(direct)+len(instances))
	tasks = append(tasks, direct...)
	tasks = append(tasks, instances...)

	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].StartTime != tasks[j].StartTime {
			return tasks[i].StartTime < tasks[j].StartTime
		}
		return tasks[i].ID < tasks[j].ID
	})

	return tasks, nil
}

func (s *TaskService) CreateTask(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error) {
	return s.taskRepository.Create(ctx, userID, input)
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID string, input domain.CreateTaskInput) (domain.Task, error) {
	if recurrence.IsInstanceID(taskID) {
		return domain.Task{}, domain.ErrRepeatInstanceImmutable
	}
	return s.taskRepository.Update(ctx, userID, taskID, input)
}

// ToggleCompletion flips a task's completed flag. For a generated instance
// the flip is view state only: the source row is re-read to prove the
// instance is real, the occurrence is re-materialized with the requested
// flag, and nothing is written.
func (s *TaskService) ToggleCompletion(ctx context.Context, userID, taskID string, completed bool) (domain.Task, error) {
	if !recurrence.IsInstanceID(taskID) {
		return s.taskRepository.SetCompleted(ctx, userID, taskID, completed)
	}

	sourceID, date, err := recurrence.ParseInstanceID(taskID)
	if err != nil {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	source, err := s.taskRepository.GetByID(ctx, userID, sourceID)
	if err != nil {
		return domain.Task{}, err
	}

	instance := recurrence.Materialize(source, date)
	instance.Completed = completed
	return instance, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	if recurrence.IsInstanceID(taskID) {
		return domain.ErrRepeatInstanceImmutable
	}
	return s.taskRepository.Delete(ctx, userID, taskID)
}

var _ ports.TaskService = (*TaskService)(nil)
