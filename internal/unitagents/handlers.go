package unitagents

import (
	"brickvale-backend/internal/pkg/request"
	"brickvale-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// Create handles POST /api/v1/unit-agents (admin, agent).
func (h *Handlers) Create(c *fiber.Ctx) error {
	var input CreateInput
	if err := request.BindAndValidate(c, &input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	link, err := h.Service.Create(c.Context(), input)
	if err != nil {
		switch err {
		case ErrNotAnAgent, ErrInvalidRole:
			return response.BadRequest(c, err.Error())
		case ErrUnitNotFound:
			return response.NotFound(c, err.Error())
		default:
			return fiber.ErrInternalServerError
		}
	}
	return response.SuccessCreated(c, "Agent assigned", link)
}

// List handles GET /api/v1/unit-agents (admin, agent).
func (h *Handlers) List(c *fiber.Ctx) error {
	links, err := h.Service.List(c.Context())
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "OK", links, nil)
}

// ListByUnit handles GET /api/v1/unit-agents/unit/:id (admin, agent).
func (h *Handlers) ListByUnit(c *fiber.Ctx) error {
	unitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid unit id")
	}
	links, err := h.Service.ListByUnit(c.Context(), unitID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "OK", links, nil)
}

// ListByAgent handles GET /api/v1/unit-agents/agent/:id (admin, agent).
func (h *Handlers) ListByAgent(c *fiber.Ctx) error {
	agentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid agent id")
	}
	links, err := h.Service.ListByAgent(c.Context(), agentID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "OK", links, nil)
}
