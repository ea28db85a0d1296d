package entity

import "github.com/shopspring/decimal"

// PedidoItem línea de un pedido. Total debe valer siempre Price*Qty; se recalcula
// cada vez que cambia el producto o la cantidad.
type PedidoItem struct {
	ProductID   *int            `json:"productId"` // nil si el producto no se resolvió
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Qty         int             `json:"qty"`
	Total       decimal.Decimal `json:"total"`
}

// Pedido cabecera de una orden de venta con sus líneas y totales.
// Invariantes: Subtotal = Σ items.Total; IVA = round(Subtotal*0.15, 2);
// Total = round(Subtotal+IVA, 2).
type Pedido struct {
	ID           int             `json:"id"`
	ClienteID    *int            `json:"clienteId"`
	ClienteName  string          `json:"clienteName"`
	VendedorID   *int            `json:"vendedorId"`
	VendedorName string          `json:"vendedorName"`
	Fecha        string          `json:"fecha"` // ISO 8601, tal como llega del formulario
	Items        []PedidoItem    `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	IVA          decimal.Decimal `json:"iva"`
	Total        decimal.Decimal `json:"total"`
}
