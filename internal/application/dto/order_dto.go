package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
)

// CreatePurchaseOrderRequest alta manual de cabecera de orden de compra.
type CreatePurchaseOrderRequest struct {
	OrderDate time.Time `json:"order_date"`
	VendorID  int64     `json:"vendor_id"`
	TaxID     int64     `json:"tax_id"`
}

// UpdatePurchaseOrderRequest cambios de cabecera (estado, contraparte, impuesto).
type UpdatePurchaseOrderRequest struct {
	OrderDate time.Time `json:"order_date"`
	Status    string    `json:"status"`
	VendorID  int64     `json:"vendor_id"`
	TaxID     int64     `json:"tax_id"`
}

// PurchaseOrderItemRequest alta o actualización de línea de compra.
type PurchaseOrderItemRequest struct {
	PurchaseOrderID int64           `json:"purchase_order_id"`
	ProductID       int64           `json:"product_id"`
	Summary         string          `json:"summary"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Quantity        decimal.Decimal `json:"quantity"`
}

// PurchaseOrderResponse cabecera con sus montos derivados.
type PurchaseOrderResponse struct {
	ID              int64           `json:"id"`
	Number          string          `json:"number"`
	OrderDate       time.Time       `json:"order_date"`
	Status          string          `json:"status"`
	VendorID        int64           `json:"vendor_id"`
	TaxID           int64           `json:"tax_id"`
	BeforeTaxAmount decimal.Decimal `json:"before_tax_amount"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	AfterTaxAmount  decimal.Decimal `json:"after_tax_amount"`
}

// NewPurchaseOrderResponse mapea la entidad a la respuesta HTTP.
func NewPurchaseOrderResponse(o *entity.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		ID:              o.ID,
		Number:          o.Number,
		OrderDate:       o.OrderDate,
		Status:          o.Status,
		VendorID:        o.VendorID,
		TaxID:           o.TaxID,
		BeforeTaxAmount: o.BeforeTaxAmount,
		TaxAmount:       o.TaxAmount,
		AfterTaxAmount:  o.AfterTaxAmount,
	}
}

// PurchaseOrderItemResponse línea con su total derivado.
type PurchaseOrderItemResponse struct {
	ID              int64           `json:"id"`
	PurchaseOrderID int64           `json:"purchase_order_id"`
	ProductID       int64           `json:"product_id"`
	Summary         string          `json:"summary"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Quantity        decimal.Decimal `json:"quantity"`
	Total           decimal.Decimal `json:"total"`
}

// NewPurchaseOrderItemResponse mapea la línea a la respuesta HTTP.
func NewPurchaseOrderItemResponse(i *entity.PurchaseOrderItem) PurchaseOrderItemResponse {
	return PurchaseOrderItemResponse{
		ID:              i.ID,
		PurchaseOrderID: i.PurchaseOrderID,
		ProductID:       i.ProductID,
		Summary:         i.Summary,
		UnitPrice:       i.UnitPrice,
		Quantity:        i.Quantity,
		Total:           i.Total,
	}
}
