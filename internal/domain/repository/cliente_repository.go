package repository

import "github.com/minegocio/negocio-api/internal/domain/entity"

// ClienteRepository puerto de persistencia para clientes. La implementación en
// memoria asigna ID = max(existentes)+1 (1 si está vacío).
type ClienteRepository interface {
	Create(c *entity.Cliente) error
	GetByID(id int) (*entity.Cliente, error)
	List() ([]*entity.Cliente, error)
	Update(c *entity.Cliente) error
	Delete(id int) error
}
