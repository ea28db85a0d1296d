// Package memory implementa los repositorios de la sesión de trabajo: slices
// ordenados en memoria protegidos por mutex. Los registros viven lo que vive el
// proceso; no hay persistencia. El ID se asigna como max(existentes)+1, por lo
// que borrar y volver a crear puede reutilizar IDs.
package memory

import (
	"sync"

	"github.com/minegocio/negocio-api/internal/domain"
	"github.com/minegocio/negocio-api/internal/domain/entity"
	"github.com/minegocio/negocio-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación en memoria de ClienteRepository.
type ClienteRepo struct {
	mu       sync.Mutex
	clientes []entity.Cliente
}

// NewClienteRepository construye el repositorio vacío.
func NewClienteRepository() *ClienteRepo {
	return &ClienteRepo{}
}

// Create asigna ID y agrega el cliente al final de la colección.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = nextClienteID(r.clientes)
	r.clientes = append(r.clientes, *c)
	return nil
}

// GetByID devuelve una copia del cliente o nil si no existe.
func (r *ClienteRepo) GetByID(id int) (*entity.Cliente, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.clientes {
		if r.clientes[i].ID == id {
			c := r.clientes[i]
			return &c, nil
		}
	}
	return nil, nil
}

// List devuelve todos los clientes en orden de inserción.
func (r *ClienteRepo) List() ([]*entity.Cliente, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*entity.Cliente, 0, len(r.clientes))
	for i := range r.clientes {
		c := r.clientes[i]
		list = append(list, &c)
	}
	return list, nil
}

// Update reemplaza el cliente con el mismo ID conservando su posición.
func (r *ClienteRepo) Update(c *entity.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.clientes {
		if r.clientes[i].ID == c.ID {
			r.clientes[i] = *c
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el cliente por ID.
func (r *ClienteRepo) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.clientes {
		if r.clientes[i].ID == id {
			r.clientes = append(r.clientes[:i], r.clientes[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func nextClienteID(list []entity.Cliente) int {
	max := 0
	for i := range list {
		if list[i].ID > max {
			max = list[i].ID
		}
	}
	return max + 1
}
