package entity

import "github.com/shopspring/decimal"

// Producto artículo del inventario.
type Producto struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"` // data URL o ruta; opcional
}
