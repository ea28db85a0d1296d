package repository

import "github.com/minegocio/negocio-api/internal/domain/entity"

// ProductoRepository puerto de persistencia para productos del inventario.
type ProductoRepository interface {
	Create(p *entity.Producto) error
	GetByID(id int) (*entity.Producto, error)
	List() ([]*entity.Producto, error)
	Update(p *entity.Producto) error
	Delete(id int) error
}
