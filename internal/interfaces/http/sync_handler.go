package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/minegocio/negocio-api/internal/application/dto"
	appsync "github.com/minegocio/negocio-api/internal/application/sync"
	"github.com/minegocio/negocio-api/internal/domain"
)

// SyncHandler expone la caché de usuarios remotos. Solo se monta cuando el
// backend de usuarios es "sheets".
type SyncHandler struct {
	uc *appsync.UserSyncUseCase
}

// NewSyncHandler construye el handler.
func NewSyncHandler(uc *appsync.UserSyncUseCase) *SyncHandler {
	return &SyncHandler{uc: uc}
}

// List GET /api/sync/usuarios
// Devuelve la copia en caché y el flag de disponibilidad; nunca falla.
func (h *SyncHandler) List(c *fiber.Ctx) error {
	usuarios, available := h.uc.Users()
	out := dto.SyncUsuariosResponse{
		Available: available,
		Usuarios:  make([]dto.UsuarioResponse, 0, len(usuarios)),
	}
	for _, u := range usuarios {
		out.Usuarios = append(out.Usuarios, dto.UsuarioResponse{Username: u.Username, Password: u.Password})
	}
	return c.JSON(out)
}

// Refresh POST /api/sync/usuarios/refresh
// Reintento explícito de la carga remota.
func (h *SyncHandler) Refresh(c *fiber.Ctx) error {
	if err := h.uc.Refresh(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UNAVAILABLE", Message: "El servicio remoto no respondió"})
	}
	return h.List(c)
}

// Update PUT /api/sync/usuarios/:oldUsername
// Propaga el cambio al remoto; la caché local solo se toca si el remoto
// aceptó.
func (h *SyncHandler) Update(c *fiber.Ctx) error {
	oldUsername := c.Params("oldUsername")
	var in dto.UpdateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	usuario, err := h.uc.UpdateUser(c.Context(), oldUsername, in.Username, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "VALIDATION", "username y password son requeridos")
		}
		if errors.Is(err, domain.ErrUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "UNAVAILABLE", Message: "El servicio remoto no respondió"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.UsuarioMessageResponse{
		Message: "Usuario actualizado exitosamente",
		Usuario: dto.UsuarioResponse{Username: usuario.Username, Password: usuario.Password},
	})
}
