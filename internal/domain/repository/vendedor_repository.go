package repository

import "github.com/minegocio/negocio-api/internal/domain/entity"

// VendedorRepository puerto de persistencia para vendedores.
type VendedorRepository interface {
	Create(v *entity.Vendedor) error
	GetByID(id int) (*entity.Vendedor, error)
	List() ([]*entity.Vendedor, error)
	Update(v *entity.Vendedor) error
	Delete(id int) error
}
