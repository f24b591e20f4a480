package auth

import (
	"brickvale-backend/internal/middleware"
	"brickvale-backend/internal/pkg/request"
	"brickvale-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// Login handles POST /api/v1/auth/login.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var input LoginInput
	if err := request.BindAndValidate(c, &input); err != nil {
		return response.BadRequest(c, "Email and password are required")
	}

	user, token, err := h.Service.Login(c.Context(), input)
	if err != nil {
		switch err {
		case ErrEmailPasswordRequired:
			return response.BadRequest(c, err.Error())
		case ErrInvalidCredentials:
			return response.Unauthorized(c, err.Error())
		default:
			return fiber.ErrInternalServerError
		}
	}

	return response.Success(c, "Login successful", fiber.Map{
		"token": token,
		"user":  user,
	}, nil)
}

// Me handles GET /api/v1/auth/me.
func (h *Handlers) Me(c *fiber.Ctx) error {
	authUser, ok := middleware.GetAuthUser(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	user, err := h.Service.Me(c.Context(), authUser.ID)
	if err != nil {
		if err == ErrUserNotFound {
			return response.NotFound(c, err.Error())
		}
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "OK", user, nil)
}
