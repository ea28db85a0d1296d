// Package pedido contiene la lógica de cálculo de un pedido (servicio de dominio,
// puro y síncrono): total de línea, subtotal, IVA y total a pagar.
package pedido

import (
	"github.com/shopspring/decimal"

	"github.com/minegocio/negocio-api/internal/domain/entity"
)

// TasaIVA tarifa de IVA vigente (Ecuador, 15%).
var TasaIVA = decimal.NewFromFloat(0.15)

// RecalcularItem fija nombre y precio de la línea según el producto resuelto y
// recalcula Total = Price * Qty. Un producto no resuelto fuerza precio 0 y
// nombre vacío. Debe invocarse tras cada cambio de producto o cantidad para que
// los agregados nunca lean un Total obsoleto.
func RecalcularItem(item *entity.PedidoItem, producto *entity.Producto) {
	if producto != nil {
		item.ProductName = producto.Name
		item.Price = producto.Price
	} else {
		item.ProductName = ""
		item.Price = decimal.Zero
	}
	item.Total = item.Price.Mul(decimal.NewFromInt(int64(item.Qty)))
}

// Totales calcula los agregados del pedido a partir de sus líneas:
//
//	subtotal = Σ price_i * qty_i   (sin redondeo intermedio)
//	iva      = round(subtotal * 0.15, 2)
//	total    = round(subtotal + iva, 2)
//
// El subtotal se recomputa siempre desde price y qty; el campo Total de cada
// línea no se consulta, así un valor obsoleto no puede contaminar el agregado.
// decimal.Round redondea half-away-from-zero, que es el redondeo requerido.
// Lista vacía produce subtotal = iva = total = 0.
func Totales(items []entity.PedidoItem) (subtotal, iva, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	iva = subtotal.Mul(TasaIVA).Round(2)
	total = subtotal.Add(iva).Round(2)
	return subtotal, iva, total
}
