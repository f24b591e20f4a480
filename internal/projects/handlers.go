package projects

import (
	"brickvale-backend/internal/pkg/request"
	"brickvale-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// Create handles POST /api/v1/projects (admin).
func (h *Handlers) Create(c *fiber.Ctx) error {
	var input CreateInput
	if err := request.BindAndValidate(c, &input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	project, err := h.Service.Create(c.Context(), input)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return response.SuccessCreated(c, "Project created", project)
}

// List handles GET /api/v1/projects.
func (h *Handlers) List(c *fiber.Ctx) error {
	projects, err := h.Service.List(c.Context())
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "OK", projects, nil)
}

// Get handles GET /api/v1/projects/:id.
func (h *Handlers) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid project id")
	}
	project, err := h.Service.Get(c.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			return response.NotFound(c, err.Error())
		}
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "OK", project, nil)
}

// Update handles PATCH /api/v1/projects/:id (admin).
func (h *Handlers) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid project id")
	}
	var input UpdateInput
	if err := request.BindAndValidate(c, &input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	project, err := h.Service.Update(c.Context(), id, input)
	if err != nil {
		if err == ErrNotFound {
			return response.NotFound(c, err.Error())
		}
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "Project updated", project, nil)
}

// Delete handles DELETE /api/v1/projects/:id?reason= (admin).
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid project id")
	}
	reason := c.Query("reason")
	if reason == "" {
		return response.BadRequest(c, "A reason is required to delete a project")
	}
	if err := h.Service.SoftDelete(c.Context(), id, reason); err != nil {
		if err == ErrNotFound {
			return response.NotFound(c, err.Error())
		}
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "Project deleted", nil, nil)
}
