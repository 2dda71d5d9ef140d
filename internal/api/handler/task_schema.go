package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/homebase/household-api/internal/core/domain"
)

type createTaskRequest struct {
	Title       string   `json:"title"       validate:"required"`
	Description []string `json:"description"`
	DueDate     string   `json:"dueDate"     validate:"omitempty,date"`
	Status      string   `json:"status"      validate:"omitempty,oneof=Pending Completed"`
}

type updateTaskRequest struct {
	Title       *string  `json:"title"       validate:"omitempty,min=1"`
	Description []string `json:"description"`
	DueDate     *string  `json:"dueDate"     validate:"omitempty,date"`
	Status      *string  `json:"status"      validate:"omitempty,oneof=Pending Completed"`
}

// TaskSchema is the wire format of /tasks.
var TaskSchema = ResourceSchema[domain.Task]{
	Kind:         domain.KindTask,
	DecodeCreate: decodeTaskCreate,
	DecodePatch:  decodeTaskPatch,
}

func decodeTaskCreate(c echo.Context) (*domain.Task, error) {
	var req createTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return nil, err
	}

	due, err := parseOptionalDate(req.DueDate)
	if err != nil {
		return nil, domain.Invalid("dueDate must be a date")
	}

	return &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     due,
		Status:      domain.TaskStatus(req.Status),
	}, nil
}

func decodeTaskPatch(c echo.Context) (domain.Patch, error) {
	var req updateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return nil, err
	}

	b := newPatch().
		str("title", req.Title).
		date("due_date", req.DueDate).
		str("status", req.Status)
	if req.Description != nil {
		b.set("description", req.Description)
	}
	return b.build()
}
