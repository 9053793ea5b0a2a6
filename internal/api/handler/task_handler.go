package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/task-api/internal/api/metrics"
	"github.com/taskhub/task-api/internal/core/domain"
	"github.com/taskhub/task-api/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations. Every method
// takes the caller identity from the request context and passes it
// explicitly into the service; mutations resolve the task through an
// ownership-filtered lookup before touching anything.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Index handles GET /api/tasks — lists the caller's tasks.
//
// @Summary      List the caller's tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /api/tasks [get]
func (h *TaskHandler) Index(c echo.Context) error {
	callerID, err := ctxCallerID(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.List(c.Request().Context(), callerID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "Tasks retrieved successfully", taskListData{Tasks: tasks})
}

// Store handles POST /api/tasks — creates a task owned by the caller.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      422   {object}  envelope
// @Router       /api/tasks [post]
func (h *TaskHandler) Store(c echo.Context) error {
	callerID, err := ctxCallerID(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.service.Create(c.Request().Context(), callerID, ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.WithLabelValues(string(task.Status)).Inc()
	return respond(c, http.StatusCreated, "Task created successfully", taskData{Task: task})
}

// Update handles PUT /api/tasks/:id — partial update of an owned task.
// A task that doesn't exist and a task owned by someone else both come
// back as 404; a 403 would confirm the resource exists.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Fields to change"
// @Success      200   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      404   {object}  envelope
// @Failure      422   {object}  envelope
// @Router       /api/tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	callerID, err := ctxCallerID(c)
	if err != nil {
		return err
	}

	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.service.FindOwned(c.Request().Context(), id, callerID)
	if err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), task, ports.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}

	metrics.TasksMutatedTotal.WithLabelValues("update").Inc()
	return respond(c, http.StatusOK, "Task updated successfully", taskData{Task: updated})
}

// Destroy handles DELETE /api/tasks/:id — hard-deletes an owned task.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Task id"
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Destroy(c echo.Context) error {
	callerID, err := ctxCallerID(c)
	if err != nil {
		return err
	}

	id, err := taskID(c)
	if err != nil {
		return err
	}

	task, err := h.service.FindOwned(c.Request().Context(), id, callerID)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), task); err != nil {
		return err
	}

	metrics.TasksMutatedTotal.WithLabelValues("delete").Inc()
	return respond(c, http.StatusOK, "Task deleted successfully", map[string]any{})
}

// taskID parses the :id route param. A malformed id cannot name any
// task, so it resolves like a missing one.
func taskID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrTaskNotFound
	}
	return id, nil
}
