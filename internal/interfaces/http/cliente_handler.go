package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/minegocio/negocio-api/internal/application/dto"
	"github.com/minegocio/negocio-api/internal/application/usecase"
	"github.com/minegocio/negocio-api/internal/domain"
)

// ClienteHandler maneja las peticiones HTTP de clientes.
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Create POST /api/clientes
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	cliente, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return badRequest(c, "VALIDATION", "todos los campos son requeridos; cédula y teléfono numéricos")
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// List GET /api/clientes?q=maria
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("q"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/clientes/:id
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	id := parseID(c)
	if id < 0 {
		return badRequest(c, "VALIDATION", "id inválido")
	}
	cliente, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, err)
	}
	if cliente == nil {
		return notFound(c, "cliente no encontrado")
	}
	return c.JSON(cliente)
}

// Update PUT /api/clientes/:id
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	id := parseID(c)
	if id < 0 {
		return badRequest(c, "VALIDATION", "id inválido")
	}
	var in dto.UpdateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	cliente, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return badRequest(c, "VALIDATION", "todos los campos son requeridos; cédula y teléfono numéricos")
		}
		if err == domain.ErrNotFound {
			return notFound(c, "cliente no encontrado")
		}
		return internalError(c, err)
	}
	return c.JSON(cliente)
}

// Delete DELETE /api/clientes/:id
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	id := parseID(c)
	if id < 0 {
		return badRequest(c, "VALIDATION", "id inválido")
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return notFound(c, "cliente no encontrado")
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Cliente eliminado exitosamente"})
}
