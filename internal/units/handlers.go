package units

import (
	"brickvale-backend/internal/pkg/request"
	"brickvale-backend/internal/pkg/response"
	"brickvale-backend/internal/schedule"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

func termsError(err error) bool {
	switch err {
	case schedule.ErrInvalidAmount, schedule.ErrInvalidDiscount,
		schedule.ErrInvalidInstallment, schedule.ErrNegativeInitial:
		return true
	}
	return false
}

// Create handles POST /api/v1/units (admin).
func (h *Handlers) Create(c *fiber.Ctx) error {
	var input CreateInput
	if err := request.BindAndValidate(c, &input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	unit, err := h.Service.Create(c.Context(), input)
	if err != nil {
		if termsError(err) || err == ErrNotAClient {
			return response.BadRequest(c, err.Error())
		}
		return fiber.ErrInternalServerError
	}
	return response.SuccessCreated(c, "Unit created", unit)
}

// List handles GET /api/v1/units.
func (h *Handlers) List(c *fiber.Ctx) error {
	units, err := h.Service.List(c.Context())
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "OK", units, nil)
}

// Get handles GET /api/v1/units/:id.
func (h *Handlers) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid unit id")
	}
	unit, err := h.Service.Get(c.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			return response.NotFound(c, err.Error())
		}
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "OK", unit, nil)
}

// Update handles PATCH /api/v1/units/:id (admin).
func (h *Handlers) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid unit id")
	}
	var input UpdateInput
	if err := request.BindAndValidate(c, &input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	unit, err := h.Service.Update(c.Context(), id, input)
	if err != nil {
		switch {
		case err == ErrNotFound:
			return response.NotFound(c, err.Error())
		case termsError(err) || err == ErrNotAClient:
			return response.BadRequest(c, err.Error())
		default:
			return fiber.ErrInternalServerError
		}
	}
	return response.Success(c, "Unit updated", unit, nil)
}

// Delete handles DELETE /api/v1/units/:id?reason= (admin).
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid unit id")
	}
	reason := c.Query("reason")
	if reason == "" {
		return response.BadRequest(c, "A reason is required to delete a unit")
	}
	if err := h.Service.SoftDelete(c.Context(), id, reason); err != nil {
		if err == ErrNotFound {
			return response.NotFound(c, err.Error())
		}
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "Unit deleted", nil, nil)
}

// GetWarranty handles GET /api/v1/units/:id/warranty.
func (h *Handlers) GetWarranty(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid unit id")
	}
	info, err := h.Service.WarrantyInfo(c.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			return response.NotFound(c, err.Error())
		}
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "OK", info, nil)
}

// GetSummary handles GET /api/v1/units/:id/payment-summary.
func (h *Handlers) GetSummary(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid unit id")
	}
	summary, err := h.Service.Summary(c.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			return response.NotFound(c, err.Error())
		}
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "OK", summary, nil)
}

// GetGraph handles GET /api/v1/units/:id/graph-data.
func (h *Handlers) GetGraph(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid unit id")
	}
	points, err := h.Service.Graph(c.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			return response.NotFound(c, err.Error())
		}
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "OK", points, nil)
}
