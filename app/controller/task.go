package controller

import (
	"errors"
	"net/http"
	"strconv"

	dtohttp "github.com/vibast-solutions/ms-go-tasks/app/dto/http"
	"github.com/vibast-solutions/ms-go-tasks/app/middleware"
	"github.com/vibast-solutions/ms-go-tasks/app/service"

	"github.com/labstack/echo/v4"
)

type TaskController struct {
	taskService *service.TaskService
}

func NewTaskController(taskService *service.TaskService) *TaskController {
	return &TaskController{taskService: taskService}
}

func (c *TaskController) Create(ctx echo.Context) error {
	var req dtohttp.CreateTaskRequest
	if err := ctx.Bind(&req); err != nil {
		return validationFailed(ctx)
	}
	if err := ctx.Validate(&req); err != nil {
		return validationFailed(ctx)
	}

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return message(ctx, http.StatusUnauthorized, "unauthorized")
	}

	task, err := c.taskService.Create(ctx.Request().Context(), userID, &req)
	if err != nil {
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dtohttp.NewTaskResponse(task))
}

func (c *TaskController) All(ctx echo.Context) error {
	tasks, err := c.taskService.All(ctx.Request().Context())
	if err != nil {
		return internalError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, dtohttp.NewTaskListResponse(tasks))
}

func (c *TaskController) One(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return taskNotFound(ctx)
	}

	task, err := c.taskService.One(ctx.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			return taskNotFound(ctx)
		}
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dtohttp.NewTaskResponse(task))
}

func (c *TaskController) Update(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return taskNotFound(ctx)
	}

	var req dtohttp.UpdateTaskRequest
	if err := ctx.Bind(&req); err != nil {
		return validationFailed(ctx)
	}
	if err := ctx.Validate(&req); err != nil {
		return validationFailed(ctx)
	}

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return message(ctx, http.StatusUnauthorized, "unauthorized")
	}

	task, err := c.taskService.Update(ctx.Request().Context(), userID, id, &req)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			return taskNotFound(ctx)
		}
		if errors.Is(err, service.ErrNotOwner) {
			return message(ctx, http.StatusForbidden, "forbidden")
		}
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dtohttp.NewTaskResponse(task))
}

func (c *TaskController) Destroy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return taskNotFound(ctx)
	}

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return message(ctx, http.StatusUnauthorized, "unauthorized")
	}

	err = c.taskService.Destroy(ctx.Request().Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			return taskNotFound(ctx)
		}
		if errors.Is(err, service.ErrNotOwner) {
			return message(ctx, http.StatusForbidden, "forbidden")
		}
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dtohttp.MessageResponse{
		Message: transWith(ctx, "model.deleted", map[string]string{"model": "task"}),
	})
}

func taskNotFound(ctx echo.Context) error {
	return ctx.JSON(http.StatusNotFound, dtohttp.MessageResponse{
		Message: transWith(ctx, "model.not.found", map[string]string{"model": "task"}),
	})
}

func pathID(ctx echo.Context) (uint64, error) {
	return strconv.ParseUint(ctx.Param("id"), 10, 64)
}
