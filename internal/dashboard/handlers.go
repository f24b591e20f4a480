package dashboard

import (
	"time"

	"brickvale-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
	Cache   *Cache
}

// Get handles GET /api/v1/dashboard (admin).
func (h *Handlers) Get(c *fiber.Ctx) error {
	if summary, ok := h.Cache.Get(c.Context()); ok {
		return response.Success(c, "OK", summary, nil)
	}
	summary, err := h.Service.Aggregate(c.Context(), time.Now())
	if err != nil {
		return fiber.ErrInternalServerError
	}
	h.Cache.Set(c.Context(), summary)
	return response.Success(c, "OK", summary, nil)
}
