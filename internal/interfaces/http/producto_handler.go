package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/minegocio/negocio-api/internal/application/dto"
	"github.com/minegocio/negocio-api/internal/application/usecase"
	"github.com/minegocio/negocio-api/internal/domain"
)

// ProductoHandler maneja las peticiones HTTP de productos.
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// Create POST /api/productos
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	producto, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return badRequest(c, "VALIDATION", "name es requerido; stock y price deben ser al menos 1")
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(producto)
}

// List GET /api/productos?q=teclado
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("q"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/productos/:id
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	id := parseID(c)
	if id < 0 {
		return badRequest(c, "VALIDATION", "id inválido")
	}
	producto, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, err)
	}
	if producto == nil {
		return notFound(c, "producto no encontrado")
	}
	return c.JSON(producto)
}

// Update PUT /api/productos/:id
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	id := parseID(c)
	if id < 0 {
		return badRequest(c, "VALIDATION", "id inválido")
	}
	var in dto.UpdateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	producto, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return badRequest(c, "VALIDATION", "name es requerido; stock y price deben ser al menos 1")
		}
		if err == domain.ErrNotFound {
			return notFound(c, "producto no encontrado")
		}
		return internalError(c, err)
	}
	return c.JSON(producto)
}

// Delete DELETE /api/productos/:id
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	id := parseID(c)
	if id < 0 {
		return badRequest(c, "VALIDATION", "id inválido")
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return notFound(c, "producto no encontrado")
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Producto eliminado exitosamente"})
}
