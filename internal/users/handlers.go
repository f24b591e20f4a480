package users

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

// Create handles POST /api/v1/users (admin).
func (h *Handlers) Create(c *fiber.Ctx) error {
	var input CreateInput
	if err := request.BindAndValidate(c, &input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	admin, _ := middleware.GetAuthUser(c)

	user, err := h.Service.Create(c.Context(), input, admin.ID)
	if err != nil {
		switch err {
		case ErrInvalidEmail, ErrInvalidPhone, ErrInvalidPassword, ErrInvalidRole, ErrEmailTaken:
			return response.BadRequest(c, err.Error())
		default:
			return fiber.ErrInternalServerError
		}
	}
	return response.SuccessCreated(c, "User created", user)
}

// List handles GET /api/v1/users?role= (admin, agent).
func (h *Handlers) List(c *fiber.Ctx) error {
	users, err := h.Service.List(c.Context(), c.Query("role"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "OK", users, nil)
}

// Get handles GET /api/v1/users/:id.
func (h *Handlers) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid user id")
	}
	user, err := h.Service.Get(c.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			return response.NotFound(c, err.Error())
		}
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "OK", user, nil)
}
