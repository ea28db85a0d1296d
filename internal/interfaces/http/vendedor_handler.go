package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/minegocio/negocio-api/internal/application/dto"
	"github.com/minegocio/negocio-api/internal/application/usecase"
	"github.com/minegocio/negocio-api/internal/domain"
)

// VendedorHandler maneja las peticiones HTTP de vendedores.
type VendedorHandler struct {
	uc *usecase.VendedorUseCase
}

// NewVendedorHandler construye el handler.
func NewVendedorHandler(uc *usecase.VendedorUseCase) *VendedorHandler {
	return &VendedorHandler{uc: uc}
}

// Create POST /api/vendedores
func (h *VendedorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVendedorRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	vendedor, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return badRequest(c, "VALIDATION", "todos los campos son requeridos; cédula y teléfono numéricos")
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(vendedor)
}

// List GET /api/vendedores?q=jose
func (h *VendedorHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("q"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/vendedores/:id
func (h *VendedorHandler) GetByID(c *fiber.Ctx) error {
	id := parseID(c)
	if id < 0 {
		return badRequest(c, "VALIDATION", "id inválido")
	}
	vendedor, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, err)
	}
	if vendedor == nil {
		return notFound(c, "vendedor no encontrado")
	}
	return c.JSON(vendedor)
}

// Update PUT /api/vendedores/:id
func (h *VendedorHandler) Update(c *fiber.Ctx) error {
	id := parseID(c)
	if id < 0 {
		return badRequest(c, "VALIDATION", "id inválido")
	}
	var in dto.UpdateVendedorRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	vendedor, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return badRequest(c, "VALIDATION", "todos los campos son requeridos; cédula y teléfono numéricos")
		}
		if err == domain.ErrNotFound {
			return notFound(c, "vendedor no encontrado")
		}
		return internalError(c, err)
	}
	return c.JSON(vendedor)
}

// Delete DELETE /api/vendedores/:id
func (h *VendedorHandler) Delete(c *fiber.Ctx) error {
	id := parseID(c)
	if id < 0 {
		return badRequest(c, "VALIDATION", "id inválido")
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return notFound(c, "vendedor no encontrado")
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Vendedor eliminado exitosamente"})
}
