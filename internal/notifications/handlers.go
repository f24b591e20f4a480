package notifications

import (
	"brickvale-backend/internal/middleware"
	"brickvale-backend/internal/pkg/request"
	"brickvale-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// List handles GET /api/v1/notifications (own rows only).
func (h *Handlers) List(c *fiber.Ctx) error {
	user, ok := middleware.GetAuthUser(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	rows, err := h.Service.ListForUser(c.Context(), user.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "OK", rows, nil)
}

// MarkRead handles PATCH /api/v1/notifications/:id/read.
func (h *Handlers) MarkRead(c *fiber.Ctx) error {
	user, ok := middleware.GetAuthUser(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid notification id")
	}
	if err := h.Service.MarkRead(c.Context(), id, user.ID); err != nil {
		if err == ErrNotFound {
			return response.NotFound(c, err.Error())
		}
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "Notification read", nil, nil)
}

type registerTokenInput struct {
	Token    string `json:"token" validate:"required"`
	Platform string `json:"platform"`
}

// RegisterToken handles POST /api/v1/notifications/push-token.
func (h *Handlers) RegisterToken(c *fiber.Ctx) error {
	user, ok := middleware.GetAuthUser(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	var input registerTokenInput
	if err := request.BindAndValidate(c, &input); err != nil {
		return response.BadRequest(c, "A device token is required")
	}
	if err := h.Service.RegisterToken(c.Context(), user.ID, input.Token, input.Platform); err != nil {
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "Push token registered", nil, nil)
}
