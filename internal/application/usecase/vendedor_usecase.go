package usecase

import (
	"github.com/minegocio/negocio-api/internal/application/dto"
	"github.com/minegocio/negocio-api/internal/domain/entity"
	"github.com/minegocio/negocio-api/internal/domain/repository"
)

// VendedorUseCase casos de uso CRUD para vendedores.
type VendedorUseCase struct {
	repo repository.VendedorRepository
}

// NewVendedorUseCase construye el caso de uso.
func NewVendedorUseCase(repo repository.VendedorRepository) *VendedorUseCase {
	return &VendedorUseCase{repo: repo}
}

// Create valida y crea un vendedor.
func (uc *VendedorUseCase) Create(in dto.CreateVendedorRequest) (*dto.VendedorResponse, error) {
	if err := validatePersona(in.Nombre, in.Cedula, in.Correo, in.Telefono, in.Direccion); err != nil {
		return nil, err
	}
	vendedor := &entity.Vendedor{
		Nombre:    in.Nombre,
		Cedula:    in.Cedula,
		Correo:    in.Correo,
		Telefono:  in.Telefono,
		Direccion: in.Direccion,
	}
	if err := uc.repo.Create(vendedor); err != nil {
		return nil, err
	}
	return toVendedorResponse(vendedor), nil
}

// GetByID obtiene un vendedor por ID (nil si no existe).
func (uc *VendedorUseCase) GetByID(id int) (*dto.VendedorResponse, error) {
	vendedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vendedor == nil {
		return nil, nil
	}
	return toVendedorResponse(vendedor), nil
}

// List lista vendedores; q filtra por nombre ignorando mayúsculas y tildes.
func (uc *VendedorUseCase) List(q string) ([]*dto.VendedorResponse, error) {
	vendedores, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	list := make([]*dto.VendedorResponse, 0, len(vendedores))
	for _, v := range vendedores {
		if q != "" && !MatchesFold(v.Nombre, q) {
			continue
		}
		list = append(list, toVendedorResponse(v))
	}
	return list, nil
}

// Update reemplaza los datos del vendedor conservando su ID.
func (uc *VendedorUseCase) Update(id int, in dto.UpdateVendedorRequest) (*dto.VendedorResponse, error) {
	if err := validatePersona(in.Nombre, in.Cedula, in.Correo, in.Telefono, in.Direccion); err != nil {
		return nil, err
	}
	vendedor := &entity.Vendedor{
		ID:        id,
		Nombre:    in.Nombre,
		Cedula:    in.Cedula,
		Correo:    in.Correo,
		Telefono:  in.Telefono,
		Direccion: in.Direccion,
	}
	if err := uc.repo.Update(vendedor); err != nil {
		return nil, err
	}
	return toVendedorResponse(vendedor), nil
}

// Delete elimina un vendedor.
func (uc *VendedorUseCase) Delete(id int) error {
	return uc.repo.Delete(id)
}

func toVendedorResponse(v *entity.Vendedor) *dto.VendedorResponse {
	return &dto.VendedorResponse{
		ID:        v.ID,
		Nombre:    v.Nombre,
		Cedula:    v.Cedula,
		Correo:    v.Correo,
		Telefono:  v.Telefono,
		Direccion: v.Direccion,
	}
}
