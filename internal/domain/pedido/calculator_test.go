package pedido_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minegocio/negocio-api/internal/domain/entity"
	"github.com/minegocio/negocio-api/internal/domain/pedido"
)

func intPtr(n int) *int { return &n }

func item(price string, qty int) entity.PedidoItem {
	p := decimal.RequireFromString(price)
	return entity.PedidoItem{
		ProductID:   intPtr(1),
		ProductName: "producto",
		Price:       p,
		Qty:         qty,
		Total:       p.Mul(decimal.NewFromInt(int64(qty))),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RecalcularItem
// ──────────────────────────────────────────────────────────────────────────────

func TestRecalcularItem_ProductoResuelto(t *testing.T) {
	it := entity.PedidoItem{ProductID: intPtr(7), Qty: 3}
	prod := &entity.Producto{ID: 7, Name: "Teclado", Price: decimal.RequireFromString("25.50")}

	pedido.RecalcularItem(&it, prod)

	assert.Equal(t, "Teclado", it.ProductName)
	assert.True(t, it.Price.Equal(decimal.RequireFromString("25.50")))
	assert.True(t, it.Total.Equal(decimal.RequireFromString("76.50")),
		"Total debe ser Price*Qty, fue %s", it.Total)
}

// Producto no resuelto: la línea queda con precio 0 y nombre vacío.
func TestRecalcularItem_ProductoNoResuelto(t *testing.T) {
	it := entity.PedidoItem{ProductID: nil, ProductName: "viejo", Price: decimal.NewFromInt(10), Qty: 2}

	pedido.RecalcularItem(&it, nil)

	assert.Equal(t, "", it.ProductName)
	assert.True(t, it.Price.IsZero())
	assert.True(t, it.Total.IsZero())
}

func TestRecalcularItem_CambioDeCantidad(t *testing.T) {
	prod := &entity.Producto{ID: 1, Name: "Mouse", Price: decimal.NewFromInt(12)}
	it := entity.PedidoItem{ProductID: intPtr(1), Qty: 1}
	pedido.RecalcularItem(&it, prod)
	require.True(t, it.Total.Equal(decimal.NewFromInt(12)))

	it.Qty = 5
	pedido.RecalcularItem(&it, prod)
	assert.True(t, it.Total.Equal(decimal.NewFromInt(60)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Totales
// ──────────────────────────────────────────────────────────────────────────────

func TestTotales_ListaVacia(t *testing.T) {
	subtotal, iva, total := pedido.Totales(nil)
	assert.True(t, subtotal.IsZero())
	assert.True(t, iva.IsZero())
	assert.True(t, total.IsZero())
}

func TestTotales_SumaYRedondeo(t *testing.T) {
	tests := []struct {
		name     string
		items    []entity.PedidoItem
		subtotal string
		iva      string
		total    string
	}{
		{
			name:     "una línea entera",
			items:    []entity.PedidoItem{item("100", 1)},
			subtotal: "100",
			iva:      "15.00",
			total:    "115.00",
		},
		{
			name:     "varias líneas",
			items:    []entity.PedidoItem{item("10.50", 2), item("3.25", 4)},
			subtotal: "34",
			iva:      "5.10",
			total:    "39.10",
		},
		{
			// 0.1*3 = 0.3 exacto con decimal; IVA 0.045 redondea a 0.05
			// (half-away-from-zero), no a 0.04.
			name:     "mitad redondea alejándose de cero",
			items:    []entity.PedidoItem{item("0.10", 3)},
			subtotal: "0.3",
			iva:      "0.05",
			total:    "0.35",
		},
		{
			name:     "subtotal con centavos impares",
			items:    []entity.PedidoItem{item("1.11", 3)},
			subtotal: "3.33",
			iva:      "0.50", // 0.4995 → 0.50
			total:    "3.83",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			subtotal, iva, total := pedido.Totales(tc.items)
			assert.True(t, subtotal.Equal(decimal.RequireFromString(tc.subtotal)),
				"subtotal esperado %s, fue %s", tc.subtotal, subtotal)
			assert.True(t, iva.Equal(decimal.RequireFromString(tc.iva)),
				"iva esperado %s, fue %s", tc.iva, iva)
			assert.True(t, total.Equal(decimal.RequireFromString(tc.total)),
				"total esperado %s, fue %s", tc.total, total)
		})
	}
}

// El subtotal debe salir de price*qty al momento del cálculo, nunca del campo
// Total almacenado en la línea.
func TestTotales_IgnoraTotalObsoleto(t *testing.T) {
	it := item("10", 2)
	it.Total = decimal.NewFromInt(9999) // valor obsoleto a propósito

	subtotal, _, _ := pedido.Totales([]entity.PedidoItem{it})

	assert.True(t, subtotal.Equal(decimal.NewFromInt(20)),
		"el subtotal debe recomputarse desde price*qty, fue %s", subtotal)
}
