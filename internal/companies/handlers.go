package companies

import (
	"brickvale-backend/internal/pkg/request"
	"brickvale-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// Create handles POST /api/v1/companies (admin).
func (h *Handlers) Create(c *fiber.Ctx) error {
	var input CreateInput
	if err := request.BindAndValidate(c, &input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	company, err := h.Service.Create(c.Context(), input)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return response.SuccessCreated(c, "Company created", company)
}

// List handles GET /api/v1/companies (admin).
func (h *Handlers) List(c *fiber.Ctx) error {
	companies, err := h.Service.List(c.Context())
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "OK", companies, nil)
}

// Get handles GET /api/v1/companies/:id (admin).
func (h *Handlers) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid company id")
	}
	company, err := h.Service.Get(c.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			return response.NotFound(c, err.Error())
		}
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "OK", company, nil)
}

// Update handles PATCH /api/v1/companies/:id (admin).
func (h *Handlers) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid company id")
	}
	var input UpdateInput
	if err := request.BindAndValidate(c, &input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	company, err := h.Service.Update(c.Context(), id, input)
	if err != nil {
		if err == ErrNotFound {
			return response.NotFound(c, err.Error())
		}
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "Company updated", company, nil)
}

// Delete handles DELETE /api/v1/companies/:id?reason= (admin).
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid company id")
	}
	reason := c.Query("reason")
	if reason == "" {
		return response.BadRequest(c, "A reason is required to delete a company")
	}
	if err := h.Service.SoftDelete(c.Context(), id, reason); err != nil {
		if err == ErrNotFound {
			return response.NotFound(c, err.Error())
		}
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "Company deleted", nil, nil)
}
