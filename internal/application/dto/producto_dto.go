package dto

import "github.com/shopspring/decimal"

// CreateProductoRequest entrada para crear un producto. Stock y precio deben
// ser al menos 1 (validadores del formulario de inventario).
type CreateProductoRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
}

// UpdateProductoRequest entrada para editar un producto (reemplazo completo).
type UpdateProductoRequest = CreateProductoRequest

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
}
