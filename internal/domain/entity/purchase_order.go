package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados de una orden de compra / venta.
const (
	OrderStatusDraft     = "DRAFT"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusArchived  = "ARCHIVED"
	OrderStatusCancelled = "CANCELLED"
)

// PurchaseOrder cabecera de orden de compra. Los tres montos son derivados:
// BeforeTaxAmount = suma de los totales de sus líneas vivas,
// TaxAmount = BeforeTaxAmount × (porcentaje del impuesto / 100),
// AfterTaxAmount = BeforeTaxAmount + TaxAmount.
// Se recalculan en cada mutación de líneas; nunca se editan a mano.
type PurchaseOrder struct {
	ID              int64
	Number          string
	OrderDate       time.Time
	Status          string
	VendorID        int64
	TaxID           int64
	BeforeTaxAmount decimal.Decimal
	TaxAmount       decimal.Decimal
	AfterTaxAmount  decimal.Decimal
	RowGUID         uuid.UUID
	Audit
}

// PurchaseOrderItem línea de orden de compra, propiedad exclusiva de su cabecera.
// Total = UnitPrice × Quantity.
type PurchaseOrderItem struct {
	ID              int64
	PurchaseOrderID int64
	ProductID       int64
	Summary         string
	UnitPrice       decimal.Decimal
	Quantity        decimal.Decimal
	Total           decimal.Decimal
	RowGUID         uuid.UUID
	Audit
}

// RecalculateTotal deriva el total de la línea a partir de precio y cantidad.
func (i *PurchaseOrderItem) RecalculateTotal() {
	i.Total = i.UnitPrice.Mul(i.Quantity)
}
