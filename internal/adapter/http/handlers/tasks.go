package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/adapter/http/mapper"
	"taskflow/internal/adapter/http/middleware"
	"taskflow/internal/adapter/http/validation"
	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
	"taskflow/pkg/apierrors"
)

const dateLayout = "2006-01-02"

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListForDate returns the day view: stored tasks plus generated repeat
// occurrences for the requested date (today when omitted). The response
// echoes the date so clients can drop replies for dates they have already
// navigated away from.
func (h *TaskHandler) ListForDate(c *gin.Context) {
	lang := middleware.GetLang(c)

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidDate, lang),
			)
			return
		}
		date = parsed
	}

	tasks, err := h.taskService.TasksForDate(c.Request.Context(), middleware.GetUserID(c), date)
	if err != nil {
		zap.L().Error("failed to list tasks for date", zap.String("date", date.Format(dateLayout)), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskDayView(date, tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.SaveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildTaskInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), middleware.GetUserID(c), input)
	if err != nil {
		zap.L().Error("failed to create task", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	taskID := c.Param("id")

	var req dto.SaveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildTaskInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), middleware.GetUserID(c), taskID, input)
	if err != nil {
		h.writeTaskMutationError(c, lang, taskID, apierrors.MsgFailUpdateTask, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) ToggleCompletion(c *gin.Context) {
	lang := middleware.GetLang(c)
	taskID := c.Param("id")

	var req dto.ToggleCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.ToggleCompletion(c.Request.Context(), middleware.GetUserID(c), taskID, *req.Completed)
	if err != nil {
		h.writeTaskMutationError(c, lang, taskID, apierrors.MsgFailUpdateTask, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	taskID := c.Param("id")

	if err := h.taskService.DeleteTask(c.Request.Context(), middleware.GetUserID(c), taskID); err != nil {
		h.writeTaskMutationError(c, lang, taskID, apierrors.MsgFailDeleteTask, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) writeTaskMutationError(c *gin.Context, lang, taskID, failKey string, err error) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
	case errors.Is(err, domain.ErrRepeatInstanceImmutable):
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgRepeatInstanceFrozen, lang),
		)
	default:
		zap.L().Error("task mutation failed", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, failKey, lang),
		)
	}
}
