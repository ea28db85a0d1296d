package entity

import "github.com/shopspring/decimal"

// Los montos viajan como números JSON, no como strings, igual que en los
// formularios del front.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
