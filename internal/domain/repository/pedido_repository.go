package repository

import "github.com/minegocio/negocio-api/internal/domain/entity"

// PedidoRepository puerto de persistencia para pedidos. List devuelve los
// pedidos del más reciente al más antiguo.
type PedidoRepository interface {
	Create(p *entity.Pedido) error
	GetByID(id int) (*entity.Pedido, error)
	List() ([]*entity.Pedido, error)
	Update(p *entity.Pedido) error
	Delete(id int) error
}
