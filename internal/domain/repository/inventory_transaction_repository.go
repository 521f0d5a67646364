package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
)

// ProductStockSummary saldo agregado del libro para un producto físico.
// Stock es la suma de la columna stock de sus asientos vivos (no el recálculo
// de deltas): es la convención de contabilización del libro original.
type ProductStockSummary struct {
	ProductID int64
	Threshold int
	Stock     decimal.Decimal
}

// InventoryTransactionRepository define el puerto para el libro de inventario (append-only).
type InventoryTransactionRepository interface {
	Create(trx *entity.InventoryTransaction) error
	ListByProduct(productID int64, from, to *time.Time, limit, offset int) ([]*entity.InventoryTransaction, error)

	// SumStockByProduct agrupa los asientos vivos de productos físicos no borrados
	// por (producto, umbral) y suma su columna stock. La comparación contra el
	// umbral de reorden la hace el caso de uso.
	SumStockByProduct(ctx context.Context) ([]ProductStockSummary, error)
}
