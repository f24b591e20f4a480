package payments

import (
	"brickvale-backend/internal/pkg/paging"
	"brickvale-backend/internal/pkg/request"
	"brickvale-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

func badInput(err error) bool {
	switch err {
	case ErrInvalidStatus, ErrReceiptRequired, ErrInvalidAmount:
		return true
	}
	return false
}

// Create handles POST /api/v1/payments (admin).
func (h *Handlers) Create(c *fiber.Ctx) error {
	var input CreateInput
	if err := request.BindAndValidate(c, &input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	payment, err := h.Service.Create(c.Context(), input)
	if err != nil {
		switch {
		case err == ErrUnitNotFound:
			return response.NotFound(c, err.Error())
		case badInput(err):
			return response.BadRequest(c, err.Error())
		default:
			return fiber.ErrInternalServerError
		}
	}
	return response.SuccessCreated(c, "Payment created", payment)
}

// List handles GET /api/v1/payments.
func (h *Handlers) List(c *fiber.Ctx) error {
	p := paging.FromQuery(c)
	payments, total, err := h.Service.List(c.Context(), p)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "OK", payments, p.Metadata(total))
}

// ListByUnit handles GET /api/v1/units/:id/payments.
func (h *Handlers) ListByUnit(c *fiber.Ctx) error {
	unitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid unit id")
	}
	p := paging.FromQuery(c)
	payments, total, err := h.Service.ListByUnit(c.Context(), unitID, p)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "OK", payments, p.Metadata(total))
}

// Get handles GET /api/v1/payments/:id.
func (h *Handlers) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid payment id")
	}
	payment, err := h.Service.Get(c.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			return response.NotFound(c, err.Error())
		}
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "OK", payment, nil)
}

// Update handles PATCH /api/v1/payments/:id (admin).
func (h *Handlers) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid payment id")
	}
	var input UpdateInput
	if err := request.BindAndValidate(c, &input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	payment, err := h.Service.Update(c.Context(), id, input)
	if err != nil {
		switch {
		case err == ErrNotFound:
			return response.NotFound(c, err.Error())
		case badInput(err):
			return response.BadRequest(c, err.Error())
		default:
			return fiber.ErrInternalServerError
		}
	}
	return response.Success(c, "Payment updated", payment, nil)
}

// Delete handles DELETE /api/v1/payments/:id?reason= (admin).
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid payment id")
	}
	reason := c.Query("reason")
	if reason == "" {
		return response.BadRequest(c, "A reason is required to delete a payment")
	}
	if err := h.Service.SoftDelete(c.Context(), id, reason); err != nil {
		if err == ErrNotFound {
			return response.NotFound(c, err.Error())
		}
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "Payment deleted", nil, nil)
}
