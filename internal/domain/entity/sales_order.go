package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesOrder cabecera de orden de venta. Misma regla de montos derivados
// que PurchaseOrder, con cliente en lugar de proveedor.
type SalesOrder struct {
	ID              int64
	Number          string
	OrderDate       time.Time
	Status          string
	CustomerID      int64
	TaxID           int64
	BeforeTaxAmount decimal.Decimal
	TaxAmount       decimal.Decimal
	AfterTaxAmount  decimal.Decimal
	RowGUID         uuid.UUID
	Audit
}

// SalesOrderItem línea de orden de venta. Total = UnitPrice × Quantity.
type SalesOrderItem struct {
	ID           int64
	SalesOrderID int64
	ProductID    int64
	Summary      string
	UnitPrice    decimal.Decimal
	Quantity     decimal.Decimal
	Total        decimal.Decimal
	RowGUID      uuid.UUID
	Audit
}

// RecalculateTotal deriva el total de la línea a partir de precio y cantidad.
func (i *SalesOrderItem) RecalculateTotal() {
	i.Total = i.UnitPrice.Mul(i.Quantity)
}
