package memory

import (
	"sync"

	"github.com/minegocio/negocio-api/internal/domain"
	"github.com/minegocio/negocio-api/internal/domain/entity"
	"github.com/minegocio/negocio-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación en memoria de ProductoRepository.
type ProductoRepo struct {
	mu        sync.Mutex
	productos []entity.Producto
}

// NewProductoRepository construye el repositorio vacío.
func NewProductoRepository() *ProductoRepo {
	return &ProductoRepo{}
}

// Create asigna ID y agrega el producto al final de la colección.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	max := 0
	for i := range r.productos {
		if r.productos[i].ID > max {
			max = r.productos[i].ID
		}
	}
	p.ID = max + 1
	r.productos = append(r.productos, *p)
	return nil
}

// GetByID devuelve una copia del producto o nil si no existe.
func (r *ProductoRepo) GetByID(id int) (*entity.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.productos {
		if r.productos[i].ID == id {
			p := r.productos[i]
			return &p, nil
		}
	}
	return nil, nil
}

// List devuelve todos los productos en orden de inserción.
func (r *ProductoRepo) List() ([]*entity.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*entity.Producto, 0, len(r.productos))
	for i := range r.productos {
		p := r.productos[i]
		list = append(list, &p)
	}
	return list, nil
}

// Update reemplaza el producto con el mismo ID conservando su posición.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.productos {
		if r.productos[i].ID == p.ID {
			r.productos[i] = *p
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el producto por ID.
func (r *ProductoRepo) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.productos {
		if r.productos[i].ID == id {
			r.productos = append(r.productos[:i], r.productos[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
