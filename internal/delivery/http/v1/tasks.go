package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pkamenev/go-task-manager/internal/models"
	"github.com/pkamenev/go-task-manager/internal/schedule"
	"github.com/pkamenev/go-task-manager/internal/services"
)

type taskRequest struct {
	ID            string              `json:"id,omitempty"`
	Title         string              `json:"title" binding:"required,max=255"`
	Description   string              `json:"description,omitempty"`
	Status        bool                `json:"status"`
	Priority      *int                `json:"priority,omitempty"`
	ListID        string              `json:"list_id,omitempty"`
	GroupID       string              `json:"group_id,omitempty"`
	StartHour     *schedule.TimeOfDay `json:"start_hour,omitempty"`
	EndHour       *schedule.TimeOfDay `json:"end_hour,omitempty"`
	AssignedUsers []string            `json:"assigned_users,omitempty"`
}

func (r *taskRequest) toModel() *models.Task {
	return &models.Task{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Status:        r.Status,
		Priority:      r.Priority,
		ListID:        r.ListID,
		GroupID:       r.GroupID,
		StartHour:     r.StartHour,
		EndHour:       r.EndHour,
		AssignedUsers: r.AssignedUsers,
	}
}

type taskResponse struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description,omitempty"`
	Status        bool                `json:"status"`
	Priority      *int                `json:"priority,omitempty"`
	ListID        string              `json:"list_id,omitempty"`
	GroupID       string              `json:"group_id,omitempty"`
	StartHour     *schedule.TimeOfDay `json:"start_hour,omitempty"`
	EndHour       *schedule.TimeOfDay `json:"end_hour,omitempty"`
	AssignedUsers []string            `json:"assigned_users,omitempty"`
	IsActive      bool                `json:"is_active"`
	HasExpired    bool                `json:"has_expired"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func newTaskResponse(task *models.Task) taskResponse {
	return taskResponse{
		ID:            task.ID,
		Title:         task.Title,
		Description:   task.Description,
		Status:        task.Status,
		Priority:      task.Priority,
		ListID:        task.ListID,
		GroupID:       task.GroupID,
		StartHour:     task.StartHour,
		EndHour:       task.EndHour,
		AssignedUsers: task.AssignedUsers,
		IsActive:      task.IsActive,
		HasExpired:    task.HasExpired,
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
	}
}

func newTaskListResponse(tasks []models.Task) []taskResponse {
	response := make([]taskResponse, len(tasks))
	for i := range tasks {
		response[i] = newTaskResponse(&tasks[i])
	}
	return response
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req taskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError("invalid request body"))
		return
	}

	task, err := h.tasks.CreateTask(c, req.toModel())
	if err != nil {
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	h.logger.Info().Msg("handled create task")
	c.JSON(http.StatusCreated, newTaskResponse(task))
}

func (h *handlerImpl) HandleGetTask(c *gin.Context) {
	id := c.Param("id")
	task, err := h.tasks.GetTaskByID(c, id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			abort(c, newNotFoundError("task not found"))
			return
		}

		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	h.logger.Info().Msg("handled get task")
	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleGetAllTasks(c *gin.Context) {
	tasks, err := h.tasks.GetAllTasks(c)
	if err != nil {
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	h.logger.Info().Msg("handled get all tasks")
	c.JSON(http.StatusOK, newTaskListResponse(tasks))
}

func (h *handlerImpl) HandleGetTasksByList(c *gin.Context) {
	listID := c.Param("id")
	tasks, err := h.tasks.GetTasksByListID(c, listID)
	if err != nil {
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	h.logger.Info().Msg("handled get tasks by list")
	c.JSON(http.StatusOK, newTaskListResponse(tasks))
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	id := c.Param("id")

	var req taskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError("invalid request body"))
		return
	}
	if req.ID != "" && req.ID != id {
		h.logger.Error().
			Str("path_id", id).
			Str("body_id", req.ID).
			Msg("task id mismatch")
		abort(c, newBadRequestError("task id mismatch"))
		return
	}

	task := req.toModel()
	task.ID = id

	updated, err := h.tasks.UpdateTask(c, task)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			abort(c, newNotFoundError("task not found"))
			return
		}

		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	h.logger.Info().Msg("handled update task")
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	id := c.Param("id")
	err := h.tasks.DeleteTask(c, id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			abort(c, newNotFoundError("task not found"))
			return
		}

		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	h.logger.Info().Msg("handled delete task")
	c.Status(http.StatusOK)
}
