package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
)

// MovementRequest cuerpo para contabilizar un asiento en el libro de inventario.
type MovementRequest struct {
	ModuleID     int64           `json:"module_id"`
	ModuleCode   string          `json:"module_code"`
	ModuleNumber string          `json:"module_number"`
	MovementDate time.Time       `json:"movement_date"`
	WarehouseID  int64           `json:"warehouse_id"`
	ProductID    int64           `json:"product_id"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// TransactionResponse asiento del libro serializado.
type TransactionResponse struct {
	ID           int64           `json:"id"`
	ModuleID     int64           `json:"module_id"`
	ModuleName   string          `json:"module_name"`
	ModuleCode   string          `json:"module_code"`
	ModuleNumber string          `json:"module_number"`
	MovementDate time.Time       `json:"movement_date"`
	Number       string          `json:"number"`
	WarehouseID  int64           `json:"warehouse_id"`
	ProductID    int64           `json:"product_id"`
	Movement     decimal.Decimal `json:"movement"`
	Stock        decimal.Decimal `json:"stock"`
}

// NewTransactionResponse mapea la entidad al DTO de salida.
func NewTransactionResponse(t *entity.InventoryTransaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		ModuleID:     t.ModuleID,
		ModuleName:   t.ModuleName,
		ModuleCode:   t.ModuleCode,
		ModuleNumber: t.ModuleNumber,
		MovementDate: t.MovementDate,
		Number:       t.Number,
		WarehouseID:  t.WarehouseID,
		ProductID:    t.ProductID,
		Movement:     t.Movement,
		Stock:        t.Stock,
	}
}
