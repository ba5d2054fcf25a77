package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/models"
	"taskboard/internal/services"
)

type taskResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newTaskResponse(task *models.Task) taskResponse {
	return taskResponse{
		ID:        task.ID,
		Title:     task.Title,
		Status:    task.Status.String(),
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}

// abortTaskError maps the task service error taxonomy onto HTTP
// statuses. Unknown errors stay opaque: the caller only ever sees
// the generic 500 text.
func abortTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
	case errors.Is(err, services.ErrTaskTitleRequired),
		errors.Is(err, services.ErrTaskTitleTooLong),
		errors.Is(err, services.ErrInvalidTaskStatus):
		abort(c, newBadRequestError(err.Error()))
	default:
		abort(c, newStatusTextError(http.StatusInternalServerError))
	}
}

func taskIDFromPath(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type createTaskRequest struct {
	Title  string  `json:"title" binding:"required,max=255"`
	Status *string `json:"status,omitempty"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	ownerID, ok := getStringFromContext(c, userIDCtxKey)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	params := services.CreateTaskParams{
		OwnerID: ownerID,
		Title:   req.Title,
	}
	if req.Status != nil {
		params.Status = *req.Status
	}

	task, err := h.tasks.CreateTask(c, params)
	if err != nil {
		abortTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTaskResponse(task))
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	ownerID, ok := getStringFromContext(c, userIDCtxKey)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	tasks, err := h.tasks.ListTasks(c, ownerID)
	if err != nil {
		abortTaskError(c, err)
		return
	}

	// Always a JSON array, even for an owner with no tasks.
	response := make([]taskResponse, len(tasks))
	for i := range tasks {
		response[i] = newTaskResponse(&tasks[i])
	}
	c.JSON(http.StatusOK, response)
}

type updateTaskRequest struct {
	Title  *string `json:"title,omitempty"`
	Status *string `json:"status,omitempty"`
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	ownerID, ok := getStringFromContext(c, userIDCtxKey)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	taskID, ok := taskIDFromPath(c)
	if !ok {
		h.logger.Warn().
			Str("id", c.Param("id")).
			Msg("invalid task id")
		abort(c, newBadRequestError(errInvalidTaskID.Error()))
		return
	}

	var req updateTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	task, err := h.tasks.UpdateTask(c, services.UpdateTaskParams{
		OwnerID: ownerID,
		ID:      taskID,
		Title:   req.Title,
		Status:  req.Status,
	})
	if err != nil {
		abortTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	ownerID, ok := getStringFromContext(c, userIDCtxKey)
	if !ok {
		h.logger.Error().Msg("no user id found in context")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	taskID, ok := taskIDFromPath(c)
	if !ok {
		h.logger.Warn().
			Str("id", c.Param("id")).
			Msg("invalid task id")
		abort(c, newBadRequestError(errInvalidTaskID.Error()))
		return
	}

	err := h.tasks.DeleteTask(c, ownerID, taskID)
	if err != nil {
		abortTaskError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
