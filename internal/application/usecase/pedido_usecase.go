package usecase

import (
	"github.com/minegocio/negocio-api/internal/application/dto"
	"github.com/minegocio/negocio-api/internal/domain"
	"github.com/minegocio/negocio-api/internal/domain/entity"
	domainpedido "github.com/minegocio/negocio-api/internal/domain/pedido"
	"github.com/minegocio/negocio-api/internal/domain/repository"
)

// PedidoUseCase casos de uso CRUD para pedidos. Resuelve nombres de cliente,
// vendedor y productos contra sus repositorios y recalcula totales en el
// servidor: los montos que mande el cliente HTTP se ignoran.
type PedidoUseCase struct {
	pedidos    repository.PedidoRepository
	clientes   repository.ClienteRepository
	vendedores repository.VendedorRepository
	productos  repository.ProductoRepository
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(
	pedidos repository.PedidoRepository,
	clientes repository.ClienteRepository,
	vendedores repository.VendedorRepository,
	productos repository.ProductoRepository,
) *PedidoUseCase {
	return &PedidoUseCase{
		pedidos:    pedidos,
		clientes:   clientes,
		vendedores: vendedores,
		productos:  productos,
	}
}

// Create valida, resuelve y crea un pedido con sus totales calculados.
func (uc *PedidoUseCase) Create(in dto.CreatePedidoRequest) (*dto.PedidoResponse, error) {
	p, err := uc.build(in)
	if err != nil {
		return nil, err
	}
	if err := uc.pedidos.Create(p); err != nil {
		return nil, err
	}
	return toPedidoResponse(p), nil
}

// GetByID obtiene un pedido por ID (nil si no existe).
func (uc *PedidoUseCase) GetByID(id int) (*dto.PedidoResponse, error) {
	p, err := uc.pedidos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPedidoResponse(p), nil
}

// List lista pedidos, el más reciente primero.
func (uc *PedidoUseCase) List() ([]*dto.PedidoResponse, error) {
	pedidos, err := uc.pedidos.List()
	if err != nil {
		return nil, err
	}
	list := make([]*dto.PedidoResponse, 0, len(pedidos))
	for _, p := range pedidos {
		list = append(list, toPedidoResponse(p))
	}
	return list, nil
}

// Update reemplaza el pedido conservando su ID y recalculando todo.
func (uc *PedidoUseCase) Update(id int, in dto.UpdatePedidoRequest) (*dto.PedidoResponse, error) {
	p, err := uc.build(in)
	if err != nil {
		return nil, err
	}
	p.ID = id
	if err := uc.pedidos.Update(p); err != nil {
		return nil, err
	}
	return toPedidoResponse(p), nil
}

// Delete elimina un pedido.
func (uc *PedidoUseCase) Delete(id int) error {
	return uc.pedidos.Delete(id)
}

// build valida la entrada y arma la entidad: resuelve nombres y recalcula
// línea por línea y agregados.
func (uc *PedidoUseCase) build(in dto.CreatePedidoRequest) (*entity.Pedido, error) {
	if in.ClienteID == nil || in.VendedorID == nil || in.Fecha == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.Qty < 1 {
			return nil, domain.ErrInvalidInput
		}
	}

	// Nombre vacío si el ID ya no existe (pudo borrarse tras llenar el
	// formulario); el pedido se guarda igual, con la línea en cero.
	clienteName := ""
	if c, err := uc.clientes.GetByID(*in.ClienteID); err != nil {
		return nil, err
	} else if c != nil {
		clienteName = c.Nombre
	}
	vendedorName := ""
	if v, err := uc.vendedores.GetByID(*in.VendedorID); err != nil {
		return nil, err
	} else if v != nil {
		vendedorName = v.Nombre
	}

	items := make([]entity.PedidoItem, 0, len(in.Items))
	for _, it := range in.Items {
		item := entity.PedidoItem{ProductID: it.ProductID, Qty: it.Qty}
		var producto *entity.Producto
		if it.ProductID != nil {
			p, err := uc.productos.GetByID(*it.ProductID)
			if err != nil {
				return nil, err
			}
			producto = p
		}
		domainpedido.RecalcularItem(&item, producto)
		items = append(items, item)
	}
	subtotal, iva, total := domainpedido.Totales(items)

	return &entity.Pedido{
		ClienteID:    in.ClienteID,
		ClienteName:  clienteName,
		VendedorID:   in.VendedorID,
		VendedorName: vendedorName,
		Fecha:        in.Fecha,
		Items:        items,
		Subtotal:     subtotal,
		IVA:          iva,
		Total:        total,
	}, nil
}

func toPedidoResponse(p *entity.Pedido) *dto.PedidoResponse {
	items := make([]dto.PedidoItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.PedidoItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Price:       it.Price,
			Qty:         it.Qty,
			Total:       it.Total,
		})
	}
	return &dto.PedidoResponse{
		ID:           p.ID,
		ClienteID:    p.ClienteID,
		ClienteName:  p.ClienteName,
		VendedorID:   p.VendedorID,
		VendedorName: p.VendedorName,
		Fecha:        p.Fecha,
		Items:        items,
		Subtotal:     p.Subtotal,
		IVA:          p.IVA,
		Total:        p.Total,
	}
}
