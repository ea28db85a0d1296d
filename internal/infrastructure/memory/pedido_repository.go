package memory

import (
	"sync"

	"github.com/minegocio/negocio-api/internal/domain"
	"github.com/minegocio/negocio-api/internal/domain/entity"
	"github.com/minegocio/negocio-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación en memoria de PedidoRepository. A diferencia de los
// demás repositorios, los pedidos se insertan al inicio: el listado sale del
// más reciente al más antiguo.
type PedidoRepo struct {
	mu      sync.Mutex
	pedidos []entity.Pedido
}

// NewPedidoRepository construye el repositorio vacío.
func NewPedidoRepository() *PedidoRepo {
	return &PedidoRepo{}
}

// Create asigna ID y antepone el pedido a la colección.
func (r *PedidoRepo) Create(p *entity.Pedido) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	max := 0
	for i := range r.pedidos {
		if r.pedidos[i].ID > max {
			max = r.pedidos[i].ID
		}
	}
	p.ID = max + 1
	r.pedidos = append([]entity.Pedido{*p}, r.pedidos...)
	return nil
}

// GetByID devuelve una copia del pedido o nil si no existe.
func (r *PedidoRepo) GetByID(id int) (*entity.Pedido, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.pedidos {
		if r.pedidos[i].ID == id {
			p := clonePedido(r.pedidos[i])
			return &p, nil
		}
	}
	return nil, nil
}

// List devuelve todos los pedidos, el más reciente primero.
func (r *PedidoRepo) List() ([]*entity.Pedido, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*entity.Pedido, 0, len(r.pedidos))
	for i := range r.pedidos {
		p := clonePedido(r.pedidos[i])
		list = append(list, &p)
	}
	return list, nil
}

// Update reemplaza el pedido con el mismo ID conservando su posición.
func (r *PedidoRepo) Update(p *entity.Pedido) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.pedidos {
		if r.pedidos[i].ID == p.ID {
			r.pedidos[i] = *p
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el pedido por ID.
func (r *PedidoRepo) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.pedidos {
		if r.pedidos[i].ID == id {
			r.pedidos = append(r.pedidos[:i], r.pedidos[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// clonePedido copia el pedido incluyendo el slice de líneas, para que el caller
// no pueda mutar el estado interno del repositorio.
func clonePedido(p entity.Pedido) entity.Pedido {
	items := make([]entity.PedidoItem, len(p.Items))
	copy(items, p.Items)
	p.Items = items
	return p
}
