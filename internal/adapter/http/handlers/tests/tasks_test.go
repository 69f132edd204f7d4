package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/adapter/http/handlers"
	"taskflow/internal/adapter/http/middleware"
	"taskflow/internal/core/domain"
	"taskflow/pkg/apierrors"
	"taskflow/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserID = "user-1"

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) TasksForDate(ctx context.Context, userID string, date time.Time) ([]domain.Task, error) {
	args := m.Called(ctx, userID, date)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, userID, taskID string, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ToggleCompletion(ctx context.Context, userID, taskID string, completed bool) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID, completed)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, userID, taskID string) error {
	args := m.Called(ctx, userID, taskID)
	return args.Error(0)
}

// fakeIdentity stands in for the auth middleware in handler tests.
func fakeIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", testUserID)
		c.Set("user_email", "ada@example.com")
		c.Next()
	}
}

func taskRouter(handler *handlers.TaskHandler) *gin.Engine {
	router := gin.New()
	group := router.Group("/api", middleware.LanguageMiddleware(), fakeIdentity())
	group.GET("/tasks", handler.ListForDate)
	group.POST("/tasks", handler.CreateTask)
	group.PUT("/tasks/:id", handler.UpdateTask)
	group.PATCH("/tasks/:id/completion", handler.ToggleCompletion)
	group.DELETE("/tasks/:id", handler.DeleteTask)
	return router
}

func TestTaskHandler_ListForDate_Success(t *testing.T) {
	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	notes := "bring shoes"
	repeatType := domain.RepeatDaily

	serviceMock := new(taskServiceMock)
	serviceMock.On("TasksForDate", mock.Anything, testUserID, date).Return(
		[]domain.Task{
			{
				ID:              "t1",
				Title:           "Morning run",
				DurationMinutes: 30,
				StartDate:       date,
				StartTime:       "07:30",
				Category:        "Health",
				CategoryColor:   "#ef4444",
				Notes:           &notes,
				CreatedAt:       time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
				UpdatedAt:       time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
			},
			{
				ID:               "r1-repeat-2024-01-05",
				Title:            "Stand-up",
				DurationMinutes:  15,
				StartDate:        date,
				StartTime:        "09:00",
				HasRepeat:        true,
				RepeatType:       &repeatType,
				RepeatInterval:   1,
				IsRepeatInstance: true,
			},
		},
		nil,
	).Once()

	router := taskRouter(handlers.NewTaskHandler(serviceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks?date=2024-01-05", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskDayView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "2024-01-05", got.Date)
	require.Len(t, got.Tasks, 2)

	require.Equal(t, "t1", got.Tasks[0].ID)
	require.Equal(t, "Morning run", got.Tasks[0].Title)
	require.Equal(t, 30, got.Tasks[0].Duration)
	require.Equal(t, "07:30", got.Tasks[0].StartTime)
	require.Equal(t, "bring shoes", *got.Tasks[0].Notes)
	require.False(t, got.Tasks[0].IsRepeatInstance)
	require.Equal(t, "2024-01-01T10:00:00Z", got.Tasks[0].CreatedAt)

	require.Equal(t, "r1-repeat-2024-01-05", got.Tasks[1].ID)
	require.True(t, got.Tasks[1].IsRepeatInstance)
	require.Equal(t, "daily", *got.Tasks[1].RepeatType)
	require.Empty(t, got.Tasks[1].CreatedAt)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListForDate_BadDate(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := taskRouter(handlers.NewTaskHandler(serviceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks?date=05-01-2024", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "TasksForDate", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_ListForDate_ServiceError(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("TasksForDate", mock.Anything, testUserID, mock.Anything).
		Return(nil, errors.New("db is down")).Once()

	router := taskRouter(handlers.NewTaskHandler(serviceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks?date=2024-01-05", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusInternalServerError, got.ErrDetails.Code)
	require.Equal(t, "Could not retrieve tasks.", got.ErrDetails.Message)
}

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	created := domain.Task{
		ID:              "t-new",
		Title:           "Review PR",
		DurationMinutes: 45,
		StartDate:       time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		StartTime:       "14:00",
		Category:        "Work",
		CategoryColor:   "#3b82f6",
		RepeatInterval:  1,
	}

	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, testUserID, mock.MatchedBy(func(input domain.CreateTaskInput) bool {
		return input.Title == "Review PR" && input.DurationMinutes == 45 && !input.HasRepeat
	})).Return(created, nil).Once()

	router := taskRouter(handlers.NewTaskHandler(serviceMock))

	body := `{"title":"Review PR","duration":45,"start_date":"2024-01-05","start_time":"14:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "t-new", got.ID)
	require.Equal(t, "2024-01-05", got.StartDate)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_MissingFields(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := taskRouter(handlers.NewTaskHandler(serviceMock))

	for name, body := range map[string]string{
		"no title":    `{"duration":45,"start_date":"2024-01-05","start_time":"14:00"}`,
		"no duration": `{"title":"Review PR","start_date":"2024-01-05","start_time":"14:00"}`,
		"no date":     `{"title":"Review PR","duration":45,"start_time":"14:00"}`,
		"no time":     `{"title":"Review PR","duration":45,"start_date":"2024-01-05"}`,
		"bad repeat":  `{"title":"Review PR","duration":45,"start_date":"2024-01-05","start_time":"14:00","has_repeat":true,"repeat_type":"hourly"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept-Language", translator.LanguageEn)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equalf(t, http.StatusBadRequest, rec.Code, "case %q", name)
	}

	serviceMock.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_UpdateTask_RepeatInstanceRejected(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTask", mock.Anything, testUserID, "r1-repeat-2024-01-05", mock.Anything).
		Return(domain.Task{}, domain.ErrRepeatInstanceImmutable).Once()

	router := taskRouter(handlers.NewTaskHandler(serviceMock))

	body := `{"title":"Edited","duration":30,"start_date":"2024-01-05","start_time":"09:00"}`
	req := httptest.NewRequest(http.MethodPut, "/api/tasks/r1-repeat-2024-01-05", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "A generated repeat occurrence cannot be edited or deleted.", got.ErrDetails.Message)
}

func TestTaskHandler_ToggleCompletion_Success(t *testing.T) {
	toggled := domain.Task{ID: "t1", Completed: true, StartDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)}

	serviceMock := new(taskServiceMock)
	serviceMock.On("ToggleCompletion", mock.Anything, testUserID, "t1", true).Return(toggled, nil).Once()

	router := taskRouter(handlers.NewTaskHandler(serviceMock))

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/t1/completion", strings.NewReader(`{"completed":true}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.Completed)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ToggleCompletion_MissingFlag(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := taskRouter(handlers.NewTaskHandler(serviceMock))

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/t1/completion", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "ToggleCompletion", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_DeleteTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, testUserID, "ghost").Return(domain.ErrTaskNotFound).Once()

	router := taskRouter(handlers.NewTaskHandler(serviceMock))

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/ghost", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTaskHandler_DeleteTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, testUserID, "t1").Return(nil).Once()

	router := taskRouter(handlers.NewTaskHandler(serviceMock))

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/t1", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}
