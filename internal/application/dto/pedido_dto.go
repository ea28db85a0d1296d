package dto

import "github.com/shopspring/decimal"

// PedidoItemRequest línea del formulario de pedido. Solo productId y qty
// importan: nombre, precio y total se resuelven y recalculan en el servidor,
// nunca se confía en los valores que mande el cliente.
type PedidoItemRequest struct {
	ProductID *int `json:"productId"`
	Qty       int  `json:"qty"`
}

// CreatePedidoRequest entrada para crear un pedido.
type CreatePedidoRequest struct {
	ClienteID  *int                `json:"clienteId"`
	VendedorID *int                `json:"vendedorId"`
	Fecha      string              `json:"fecha"`
	Items      []PedidoItemRequest `json:"items"`
}

// UpdatePedidoRequest entrada para editar un pedido (reemplazo completo,
// conserva el ID).
type UpdatePedidoRequest = CreatePedidoRequest

// PedidoItemResponse línea resuelta con su total calculado.
type PedidoItemResponse struct {
	ProductID   *int            `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Qty         int             `json:"qty"`
	Total       decimal.Decimal `json:"total"`
}

// PedidoResponse salida de un pedido con agregados.
type PedidoResponse struct {
	ID           int                  `json:"id"`
	ClienteID    *int                 `json:"clienteId"`
	ClienteName  string               `json:"clienteName"`
	VendedorID   *int                 `json:"vendedorId"`
	VendedorName string               `json:"vendedorName"`
	Fecha        string               `json:"fecha"`
	Items        []PedidoItemResponse `json:"items"`
	Subtotal     decimal.Decimal      `json:"subtotal"`
	IVA          decimal.Decimal      `json:"iva"`
	Total        decimal.Decimal      `json:"total"`
}
