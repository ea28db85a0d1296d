package memory

import (
	"sync"

	"github.com/minegocio/negocio-api/internal/domain"
	"github.com/minegocio/negocio-api/internal/domain/entity"
	"github.com/minegocio/negocio-api/internal/domain/repository"
)

var _ repository.VendedorRepository = (*VendedorRepo)(nil)

// VendedorRepo implementación en memoria de VendedorRepository.
type VendedorRepo struct {
	mu         sync.Mutex
	vendedores []entity.Vendedor
}

// NewVendedorRepository construye el repositorio vacío.
func NewVendedorRepository() *VendedorRepo {
	return &VendedorRepo{}
}

// Create asigna ID y agrega el vendedor al final de la colección.
func (r *VendedorRepo) Create(v *entity.Vendedor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	max := 0
	for i := range r.vendedores {
		if r.vendedores[i].ID > max {
			max = r.vendedores[i].ID
		}
	}
	v.ID = max + 1
	r.vendedores = append(r.vendedores, *v)
	return nil
}

// GetByID devuelve una copia del vendedor o nil si no existe.
func (r *VendedorRepo) GetByID(id int) (*entity.Vendedor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.vendedores {
		if r.vendedores[i].ID == id {
			v := r.vendedores[i]
			return &v, nil
		}
	}
	return nil, nil
}

// List devuelve todos los vendedores en orden de inserción.
func (r *VendedorRepo) List() ([]*entity.Vendedor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*entity.Vendedor, 0, len(r.vendedores))
	for i := range r.vendedores {
		v := r.vendedores[i]
		list = append(list, &v)
	}
	return list, nil
}

// Update reemplaza el vendedor con el mismo ID conservando su posición.
func (r *VendedorRepo) Update(v *entity.Vendedor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.vendedores {
		if r.vendedores[i].ID == v.ID {
			r.vendedores[i] = *v
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el vendedor por ID.
func (r *VendedorRepo) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.vendedores {
		if r.vendedores[i].ID == id {
			r.vendedores = append(r.vendedores[:i], r.vendedores[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
