package usecase

import (
	"github.com/minegocio/negocio-api/internal/application/dto"
	"github.com/minegocio/negocio-api/internal/domain"
	"github.com/minegocio/negocio-api/internal/domain/entity"
	"github.com/minegocio/negocio-api/internal/domain/repository"
)

// UsuarioUseCase casos de uso CRUD sobre el almacén de usuarios (archivo JSON).
type UsuarioUseCase struct {
	store repository.UsuarioStore
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(store repository.UsuarioStore) *UsuarioUseCase {
	return &UsuarioUseCase{store: store}
}

// List devuelve todos los usuarios del archivo.
func (uc *UsuarioUseCase) List() ([]dto.UsuarioResponse, error) {
	usuarios, err := uc.store.List()
	if err != nil {
		return nil, err
	}
	list := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		list = append(list, dto.UsuarioResponse{Username: u.Username, Password: u.Password})
	}
	return list, nil
}

// Create agrega un usuario nuevo. ErrDuplicate si el username ya existe,
// ErrInvalidInput si falta username o password.
func (uc *UsuarioUseCase) Create(in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	u := entity.Usuario{Username: in.Username, Password: in.Password}
	if err := uc.store.Create(u); err != nil {
		return nil, err
	}
	return &dto.UsuarioResponse{Username: u.Username, Password: u.Password}, nil
}

// Update reemplaza la credencial identificada por oldUsername.
func (uc *UsuarioUseCase) Update(oldUsername string, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	u, err := uc.store.Update(oldUsername, entity.Usuario{Username: in.Username, Password: in.Password})
	if err != nil {
		return nil, err
	}
	return &dto.UsuarioResponse{Username: u.Username, Password: u.Password}, nil
}

// Delete elimina la credencial por username.
func (uc *UsuarioUseCase) Delete(username string) error {
	return uc.store.Delete(username)
}
