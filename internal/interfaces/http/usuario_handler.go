package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/minegocio/negocio-api/internal/application/dto"
	"github.com/minegocio/negocio-api/internal/application/usecase"
	"github.com/minegocio/negocio-api/internal/domain"
)

// UsuarioHandler maneja las peticiones HTTP de credenciales sobre el archivo
// JSON. Solo se monta cuando el backend de usuarios es "file".
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// List GET /api/usuarios
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	usuarios, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "IO", Message: "no se pudo leer el archivo de usuarios"})
	}
	return c.JSON(usuarios)
}

// Create POST /api/usuarios
// Un username repetido responde 400, igual que el resto de errores de entrada.
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	usuario, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return badRequest(c, "VALIDATION", "username y password son requeridos")
		case errors.Is(err, domain.ErrDuplicate):
			return badRequest(c, "DUPLICATE", "El usuario ya existe")
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "IO", Message: "no se pudo escribir el archivo de usuarios"})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UsuarioMessageResponse{
		Message: "Usuario creado exitosamente",
		Usuario: *usuario,
	})
}

// Update PUT /api/usuarios/:username (el parámetro es el username actual; el
// cuerpo trae la credencial de reemplazo).
func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	oldUsername := c.Params("username")
	var in dto.UpdateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	usuario, err := h.uc.Update(oldUsername, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return badRequest(c, "VALIDATION", "username y password son requeridos")
		case errors.Is(err, domain.ErrUserNotFound):
			return notFound(c, "Usuario no encontrado")
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "IO", Message: "no se pudo escribir el archivo de usuarios"})
		}
	}
	return c.JSON(dto.UsuarioMessageResponse{
		Message: "Usuario actualizado exitosamente",
		Usuario: *usuario,
	})
}

// Delete DELETE /api/usuarios/:username
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := h.uc.Delete(username); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return notFound(c, "Usuario no encontrado")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "IO", Message: "no se pudo escribir el archivo de usuarios"})
	}
	return c.JSON(dto.MessageResponse{Message: "Usuario eliminado exitosamente"})
}
