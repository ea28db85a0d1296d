package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minegocio/negocio-api/internal/application/dto"
	"github.com/minegocio/negocio-api/internal/application/usecase"
	"github.com/minegocio/negocio-api/internal/domain"
	"github.com/minegocio/negocio-api/internal/infrastructure/memory"
)

func intPtr(n int) *int { return &n }

// buildPedidoUC arma el caso de uso con repositorios en memoria sembrados con
// un cliente, un vendedor y dos productos.
func buildPedidoUC(t *testing.T) *usecase.PedidoUseCase {
	t.Helper()

	clientes := memory.NewClienteRepository()
	vendedores := memory.NewVendedorRepository()
	productos := memory.NewProductoRepository()
	pedidos := memory.NewPedidoRepository()

	clienteUC := usecase.NewClienteUseCase(clientes)
	_, err := clienteUC.Create(dto.CreateClienteRequest{
		Nombre: "María Muñoz", Cedula: "0912345678", Correo: "maria@mail.com",
		Telefono: "0991112233", Direccion: "Av. Amazonas",
	})
	require.NoError(t, err)

	vendedorUC := usecase.NewVendedorUseCase(vendedores)
	_, err = vendedorUC.Create(dto.CreateVendedorRequest{
		Nombre: "José Pérez", Cedula: "0923456789", Correo: "jose@mail.com",
		Telefono: "0994445566", Direccion: "Calle Larga",
	})
	require.NoError(t, err)

	productoUC := usecase.NewProductoUseCase(productos)
	_, err = productoUC.Create(dto.CreateProductoRequest{
		Name: "Teclado", Description: "Mecánico", Stock: 10,
		Price: decimal.RequireFromString("25.50"),
	})
	require.NoError(t, err)
	_, err = productoUC.Create(dto.CreateProductoRequest{
		Name: "Mouse", Description: "Inalámbrico", Stock: 5,
		Price: decimal.NewFromInt(12),
	})
	require.NoError(t, err)

	return usecase.NewPedidoUseCase(pedidos, clientes, vendedores, productos)
}

func TestPedidoCreate_ResuelveNombresYCalculaTotales(t *testing.T) {
	uc := buildPedidoUC(t)

	out, err := uc.Create(dto.CreatePedidoRequest{
		ClienteID:  intPtr(1),
		VendedorID: intPtr(1),
		Fecha:      "2025-06-10T00:00:00.000Z",
		Items: []dto.PedidoItemRequest{
			{ProductID: intPtr(1), Qty: 2}, // 2 x 25.50 = 51.00
			{ProductID: intPtr(2), Qty: 3}, // 3 x 12    = 36.00
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.ID)
	assert.Equal(t, "María Muñoz", out.ClienteName)
	assert.Equal(t, "José Pérez", out.VendedorName)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Teclado", out.Items[0].ProductName)
	assert.True(t, out.Items[0].Total.Equal(decimal.RequireFromString("51")))

	// subtotal 87, iva 13.05, total 100.05
	assert.True(t, out.Subtotal.Equal(decimal.RequireFromString("87")), "subtotal fue %s", out.Subtotal)
	assert.True(t, out.IVA.Equal(decimal.RequireFromString("13.05")), "iva fue %s", out.IVA)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("100.05")), "total fue %s", out.Total)
}

// Producto inexistente: la línea queda con precio 0 y nombre vacío, el pedido
// se guarda igual.
func TestPedidoCreate_ProductoNoResuelto(t *testing.T) {
	uc := buildPedidoUC(t)

	out, err := uc.Create(dto.CreatePedidoRequest{
		ClienteID:  intPtr(1),
		VendedorID: intPtr(1),
		Fecha:      "2025-06-10",
		Items:      []dto.PedidoItemRequest{{ProductID: intPtr(99), Qty: 4}},
	})
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, "", out.Items[0].ProductName)
	assert.True(t, out.Items[0].Price.IsZero())
	assert.True(t, out.Subtotal.IsZero())
	assert.True(t, out.Total.IsZero())
}

func TestPedidoCreate_Validaciones(t *testing.T) {
	uc := buildPedidoUC(t)

	tests := []struct {
		name string
		in   dto.CreatePedidoRequest
	}{
		{"sin cliente", dto.CreatePedidoRequest{VendedorID: intPtr(1), Fecha: "2025-06-10",
			Items: []dto.PedidoItemRequest{{ProductID: intPtr(1), Qty: 1}}}},
		{"sin items", dto.CreatePedidoRequest{ClienteID: intPtr(1), VendedorID: intPtr(1), Fecha: "2025-06-10"}},
		{"qty cero", dto.CreatePedidoRequest{ClienteID: intPtr(1), VendedorID: intPtr(1), Fecha: "2025-06-10",
			Items: []dto.PedidoItemRequest{{ProductID: intPtr(1), Qty: 0}}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestPedidoUpdate_RecalculaYConservaID(t *testing.T) {
	uc := buildPedidoUC(t)

	created, err := uc.Create(dto.CreatePedidoRequest{
		ClienteID: intPtr(1), VendedorID: intPtr(1), Fecha: "2025-06-10",
		Items: []dto.PedidoItemRequest{{ProductID: intPtr(1), Qty: 1}},
	})
	require.NoError(t, err)

	updated, err := uc.Update(created.ID, dto.UpdatePedidoRequest{
		ClienteID: intPtr(1), VendedorID: intPtr(1), Fecha: "2025-06-11",
		Items: []dto.PedidoItemRequest{{ProductID: intPtr(2), Qty: 5}},
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.Subtotal.Equal(decimal.NewFromInt(60)), "subtotal fue %s", updated.Subtotal)
	assert.True(t, updated.IVA.Equal(decimal.RequireFromString("9.00")), "iva fue %s", updated.IVA)
	assert.True(t, updated.Total.Equal(decimal.RequireFromString("69.00")), "total fue %s", updated.Total)
}

func TestPedidoUpdate_Inexistente(t *testing.T) {
	uc := buildPedidoUC(t)
	_, err := uc.Update(42, dto.UpdatePedidoRequest{
		ClienteID: intPtr(1), VendedorID: intPtr(1), Fecha: "2025-06-10",
		Items: []dto.PedidoItemRequest{{ProductID: intPtr(1), Qty: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
