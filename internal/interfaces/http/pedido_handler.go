package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/minegocio/negocio-api/internal/application/dto"
	"github.com/minegocio/negocio-api/internal/application/usecase"
	"github.com/minegocio/negocio-api/internal/domain"
)

// PedidoHandler maneja las peticiones HTTP de pedidos.
type PedidoHandler struct {
	uc  *usecase.PedidoUseCase
	pdf *usecase.PedidoPDFUseCase
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(uc *usecase.PedidoUseCase, pdf *usecase.PedidoPDFUseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc, pdf: pdf}
}

// Create POST /api/pedidos
func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	pedido, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return badRequest(c, "VALIDATION", "clienteId, vendedorId, fecha y al menos un item con qty >= 1 son requeridos")
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(pedido)
}

// List GET /api/pedidos (más reciente primero)
func (h *PedidoHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/pedidos/:id
func (h *PedidoHandler) GetByID(c *fiber.Ctx) error {
	id := parseID(c)
	if id < 0 {
		return badRequest(c, "VALIDATION", "id inválido")
	}
	pedido, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, err)
	}
	if pedido == nil {
		return notFound(c, "pedido no encontrado")
	}
	return c.JSON(pedido)
}

// Update PUT /api/pedidos/:id
func (h *PedidoHandler) Update(c *fiber.Ctx) error {
	id := parseID(c)
	if id < 0 {
		return badRequest(c, "VALIDATION", "id inválido")
	}
	var in dto.UpdatePedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	pedido, err := h.uc.Update(id, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return badRequest(c, "VALIDATION", "clienteId, vendedorId, fecha y al menos un item con qty >= 1 son requeridos")
		}
		if err == domain.ErrNotFound {
			return notFound(c, "pedido no encontrado")
		}
		return internalError(c, err)
	}
	return c.JSON(pedido)
}

// Delete DELETE /api/pedidos/:id
func (h *PedidoHandler) Delete(c *fiber.Ctx) error {
	id := parseID(c)
	if id < 0 {
		return badRequest(c, "VALIDATION", "id inválido")
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrNotFound {
			return notFound(c, "pedido no encontrado")
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Pedido eliminado exitosamente"})
}

// PDF descarga la nota de pedido en PDF.
// GET /api/pedidos/:id/pdf
func (h *PedidoHandler) PDF(c *fiber.Ctx) error {
	id := parseID(c)
	if id < 0 {
		return badRequest(c, "VALIDATION", "id inválido")
	}
	data, err := h.pdf.Generate(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return notFound(c, "pedido no encontrado")
		}
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="pedido-%d.pdf"`, id))
	return c.Send(data)
}
