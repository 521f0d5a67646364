package dto

import "github.com/shopspring/decimal"

// LowStockDTO producto bajo su punto de reorden según el libro de inventario.
type LowStockDTO struct {
	ProductID int64           `json:"product_id"`
	Threshold int             `json:"threshold"`
	Stock     decimal.Decimal `json:"stock"`
}
