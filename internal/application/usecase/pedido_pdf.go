package usecase

import (
	"context"

	"github.com/minegocio/negocio-api/internal/domain"
	"github.com/minegocio/negocio-api/internal/domain/entity"
	"github.com/minegocio/negocio-api/internal/domain/repository"
)

// PedidoPDFGenerator puerto de salida para la representación imprimible de un
// pedido. La implementación concreta usa Maroto; para tests se inyecta un mock.
type PedidoPDFGenerator interface {
	GeneratePedidoPDF(ctx context.Context, p *entity.Pedido) ([]byte, error)
}

// PedidoPDFUseCase genera la nota de pedido en PDF.
type PedidoPDFUseCase struct {
	pedidos   repository.PedidoRepository
	generator PedidoPDFGenerator
}

// NewPedidoPDFUseCase construye el caso de uso.
func NewPedidoPDFUseCase(pedidos repository.PedidoRepository, generator PedidoPDFGenerator) *PedidoPDFUseCase {
	return &PedidoPDFUseCase{pedidos: pedidos, generator: generator}
}

// Generate carga el pedido y devuelve los bytes del PDF. ErrNotFound si el
// pedido no existe.
func (uc *PedidoPDFUseCase) Generate(ctx context.Context, id int) ([]byte, error) {
	p, err := uc.pedidos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GeneratePedidoPDF(ctx, p)
}
