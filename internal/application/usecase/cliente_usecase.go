package usecase

import (
	"regexp"
	"strings"

	"github.com/minegocio/negocio-api/internal/application/dto"
	"github.com/minegocio/negocio-api/internal/domain"
	"github.com/minegocio/negocio-api/internal/domain/entity"
	"github.com/minegocio/negocio-api/internal/domain/repository"
)

var soloDigitos = regexp.MustCompile(`^\d+$`)

// ClienteUseCase casos de uso CRUD para clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create valida y crea un cliente.
func (uc *ClienteUseCase) Create(in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if err := validatePersona(in.Nombre, in.Cedula, in.Correo, in.Telefono, in.Direccion); err != nil {
		return nil, err
	}
	cliente := &entity.Cliente{
		Nombre:    in.Nombre,
		Cedula:    in.Cedula,
		Correo:    in.Correo,
		Telefono:  in.Telefono,
		Direccion: in.Direccion,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByID obtiene un cliente por ID (nil si no existe).
func (uc *ClienteUseCase) GetByID(id int) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	return toClienteResponse(cliente), nil
}

// List lista clientes; q filtra por nombre ignorando mayúsculas y tildes.
func (uc *ClienteUseCase) List(q string) ([]*dto.ClienteResponse, error) {
	clientes, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	list := make([]*dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		if q != "" && !MatchesFold(c.Nombre, q) {
			continue
		}
		list = append(list, toClienteResponse(c))
	}
	return list, nil
}

// Update reemplaza los datos del cliente conservando su ID.
func (uc *ClienteUseCase) Update(id int, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	if err := validatePersona(in.Nombre, in.Cedula, in.Correo, in.Telefono, in.Direccion); err != nil {
		return nil, err
	}
	cliente := &entity.Cliente{
		ID:        id,
		Nombre:    in.Nombre,
		Cedula:    in.Cedula,
		Correo:    in.Correo,
		Telefono:  in.Telefono,
		Direccion: in.Direccion,
	}
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Delete elimina un cliente.
func (uc *ClienteUseCase) Delete(id int) error {
	return uc.repo.Delete(id)
}

// validatePersona replica los validadores del formulario: todos los campos
// requeridos, cédula y teléfono numéricos, correo con forma mínima.
func validatePersona(nombre, cedula, correo, telefono, direccion string) error {
	if nombre == "" || cedula == "" || correo == "" || telefono == "" || direccion == "" {
		return domain.ErrInvalidInput
	}
	if !soloDigitos.MatchString(cedula) || !soloDigitos.MatchString(telefono) {
		return domain.ErrInvalidInput
	}
	if !strings.Contains(correo, "@") {
		return domain.ErrInvalidInput
	}
	return nil
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Cedula:    c.Cedula,
		Correo:    c.Correo,
		Telefono:  c.Telefono,
		Direccion: c.Direccion,
	}
}
