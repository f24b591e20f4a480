package documents

import (
	"brickvale-backend/internal/pkg/request"
	"brickvale-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// CreateTemplate handles POST /api/v1/documents/templates (admin).
func (h *Handlers) CreateTemplate(c *fiber.Ctx) error {
	var input TemplateInput
	if err := request.BindAndValidate(c, &input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	doc, err := h.Service.CreateTemplate(c.Context(), input)
	if err != nil {
		if err == ErrUnitNotFound {
			return response.NotFound(c, err.Error())
		}
		return fiber.ErrInternalServerError
	}
	return response.SuccessCreated(c, "Template created", doc)
}

// CreateSigned handles POST /api/v1/documents/signed.
func (h *Handlers) CreateSigned(c *fiber.Ctx) error {
	var input SignedInput
	if err := request.BindAndValidate(c, &input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	doc, err := h.Service.CreateSigned(c.Context(), input)
	if err != nil {
		if err == ErrUnitNotFound {
			return response.NotFound(c, err.Error())
		}
		return fiber.ErrInternalServerError
	}
	return response.SuccessCreated(c, "Signed document recorded", doc)
}

// TemplatesByUnit handles GET /api/v1/documents/templates/unit/:id (admin).
func (h *Handlers) TemplatesByUnit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid unit id")
	}
	docs, err := h.Service.TemplatesByUnit(c.Context(), id)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "OK", docs, nil)
}

// SignedByUnit handles GET /api/v1/documents/signed/unit/:id.
func (h *Handlers) SignedByUnit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid unit id")
	}
	docs, err := h.Service.SignedByUnit(c.Context(), id)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "OK", docs, nil)
}

// SignedByClient handles GET /api/v1/documents/signed/client/:id.
func (h *Handlers) SignedByClient(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid client id")
	}
	docs, err := h.Service.SignedByClient(c.Context(), id)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "OK", docs, nil)
}

// SignedByAgent handles GET /api/v1/documents/signed/agent/:id.
func (h *Handlers) SignedByAgent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid agent id")
	}
	docs, err := h.Service.SignedByAgent(c.Context(), id)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "OK", docs, nil)
}

// Delete handles DELETE /api/v1/documents/:id?reason= (admin).
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid document id")
	}
	reason := c.Query("reason")
	if reason == "" {
		return response.BadRequest(c, "A reason is required to delete a document")
	}
	if err := h.Service.SoftDelete(c.Context(), id, reason); err != nil {
		if err == ErrNotFound {
			return response.NotFound(c, err.Error())
		}
		return fiber.ErrInternalServerError
	}
	return response.Success(c, "Document deleted", nil, nil)
}
