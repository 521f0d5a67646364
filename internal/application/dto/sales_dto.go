package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
)

// CreateSalesOrderRequest alta manual de cabecera de orden de venta.
type CreateSalesOrderRequest struct {
	OrderDate  time.Time `json:"order_date"`
	CustomerID int64     `json:"customer_id"`
	TaxID      int64     `json:"tax_id"`
}

// UpdateSalesOrderRequest cambios de cabecera de venta.
type UpdateSalesOrderRequest struct {
	OrderDate  time.Time `json:"order_date"`
	Status     string    `json:"status"`
	CustomerID int64     `json:"customer_id"`
	TaxID      int64     `json:"tax_id"`
}

// SalesOrderItemRequest alta o actualización de línea de venta.
type SalesOrderItemRequest struct {
	SalesOrderID int64           `json:"sales_order_id"`
	ProductID    int64           `json:"product_id"`
	Summary      string          `json:"summary"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// SalesOrderResponse cabecera de venta con sus montos derivados.
type SalesOrderResponse struct {
	ID              int64           `json:"id"`
	Number          string          `json:"number"`
	OrderDate       time.Time       `json:"order_date"`
	Status          string          `json:"status"`
	CustomerID      int64           `json:"customer_id"`
	TaxID           int64           `json:"tax_id"`
	BeforeTaxAmount decimal.Decimal `json:"before_tax_amount"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	AfterTaxAmount  decimal.Decimal `json:"after_tax_amount"`
}

// NewSalesOrderResponse mapea la entidad a la respuesta HTTP.
func NewSalesOrderResponse(o *entity.SalesOrder) SalesOrderResponse {
	return SalesOrderResponse{
		ID:              o.ID,
		Number:          o.Number,
		OrderDate:       o.OrderDate,
		Status:          o.Status,
		CustomerID:      o.CustomerID,
		TaxID:           o.TaxID,
		BeforeTaxAmount: o.BeforeTaxAmount,
		TaxAmount:       o.TaxAmount,
		AfterTaxAmount:  o.AfterTaxAmount,
	}
}

// SalesOrderItemResponse línea de venta con su total derivado.
type SalesOrderItemResponse struct {
	ID           int64           `json:"id"`
	SalesOrderID int64           `json:"sales_order_id"`
	ProductID    int64           `json:"product_id"`
	Summary      string          `json:"summary"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     decimal.Decimal `json:"quantity"`
	Total        decimal.Decimal `json:"total"`
}

// NewSalesOrderItemResponse mapea la línea a la respuesta HTTP.
func NewSalesOrderItemResponse(i *entity.SalesOrderItem) SalesOrderItemResponse {
	return SalesOrderItemResponse{
		ID:           i.ID,
		SalesOrderID: i.SalesOrderID,
		ProductID:    i.ProductID,
		Summary:      i.Summary,
		UnitPrice:    i.UnitPrice,
		Quantity:     i.Quantity,
		Total:        i.Total,
	}
}
