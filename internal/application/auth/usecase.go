// Package auth implementa el login de la aplicación. No hay modelo de
// seguridad: las credenciales se comparan en texto plano contra el directorio
// de usuarios configurado (archivo JSON o caché de la hoja remota), igual que
// de registro configurado. El estado local es una caché, no la verdad.
package auth

import (
	"strings"

	"github.com/minegocio/negocio-api/internal/application/dto"
	"github.com/minegocio/negocio-api/internal/domain"
	"github.com/minegocio/negocio-api/internal/domain/repository"
)

// AuthUseCase caso de uso de login.
type AuthUseCase struct {
	directory repository.UserDirectory
}

// NewAuthUseCase construye el caso de uso sobre el directorio de usuarios del
// despliegue (archivo o sheets, nunca ambos).
func NewAuthUseCase(directory repository.UserDirectory) *AuthUseCase {
	return &AuthUseCase{directory: directory}
}

// Login busca una credencial cuyo username y password coincidan (con trim,
// como hace el formulario de login). Devuelve ErrUnauthorized si no coincide
// ninguna, ErrUnavailable si el directorio remoto no está disponible.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	password := strings.TrimSpace(in.Password)
	if username == "" || password == "" {
		return nil, domain.ErrUnauthorized
	}

	usuarios, err := uc.directory.List()
	if err != nil {
		return nil, err
	}

	for _, u := range usuarios {
		if strings.TrimSpace(u.Username) == username && strings.TrimSpace(u.Password) == password {
			return &dto.LoginResponse{
				Message: "Inicio de sesión exitoso",
				Usuario: dto.UsuarioResponse{Username: u.Username, Password: u.Password},
			}, nil
		}
	}
	return nil, domain.ErrUnauthorized
}
