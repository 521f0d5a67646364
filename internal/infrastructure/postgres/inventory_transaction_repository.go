package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

var _ repository.InventoryTransactionRepository = (*InventoryTransactionRepo)(nil)

// InventoryTransactionRepo implementación del libro de inventario sobre PostgreSQL.
type InventoryTransactionRepo struct {
	q Querier
}

// NewInventoryTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryTransactionRepository(q Querier) *InventoryTransactionRepo {
	return &InventoryTransactionRepo{q: q}
}

// Create inserta un asiento. El libro es append-only: no hay Update ni Delete.
func (r *InventoryTransactionRepo) Create(trx *entity.InventoryTransaction) error {
	query := `
		INSERT INTO inventory_transactions (module_id, module_name, module_code, module_number,
			movement_date, status, number, warehouse_id, product_id, movement, stock, row_guid,
			created_by_user_id, created_at_utc, updated_by_user_id, updated_at_utc, is_not_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		trx.ModuleID, trx.ModuleName, trx.ModuleCode, trx.ModuleNumber,
		trx.MovementDate, trx.Status, trx.Number, trx.WarehouseID, trx.ProductID,
		trx.Movement, trx.Stock, trx.RowGUID,
		trx.CreatedByUserID, trx.CreatedAtUtc, trx.UpdatedByUserID, trx.UpdatedAtUtc, trx.IsNotDeleted,
	).Scan(&trx.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert inventory transaction: %w", err)
	}
	return nil
}

// ListByProduct asientos vivos de un producto, más recientes primero.
func (r *InventoryTransactionRepo) ListByProduct(productID int64, from, to *time.Time, limit, offset int) ([]*entity.InventoryTransaction, error) {
	query := `
		SELECT id, module_id, module_name, module_code, module_number, movement_date, status, number,
			warehouse_id, product_id, movement, stock, row_guid,
			created_by_user_id, created_at_utc, updated_by_user_id, updated_at_utc, is_not_deleted
		FROM inventory_transactions
		WHERE product_id = $1 AND is_not_deleted
		  AND ($2::timestamptz IS NULL OR movement_date >= $2)
		  AND ($3::timestamptz IS NULL OR movement_date <= $3)
		ORDER BY id DESC LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, productID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryTransaction
	for rows.Next() {
		var t entity.InventoryTransaction
		if err := rows.Scan(
			&t.ID, &t.ModuleID, &t.ModuleName, &t.ModuleCode, &t.ModuleNumber,
			&t.MovementDate, &t.Status, &t.Number, &t.WarehouseID, &t.ProductID,
			&t.Movement, &t.Stock, &t.RowGUID,
			&t.CreatedByUserID, &t.CreatedAtUtc, &t.UpdatedByUserID, &t.UpdatedAtUtc, &t.IsNotDeleted,
		); err != nil {
			return nil, fmt.Errorf("scan inventory transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// SumStockByProduct agrupa los asientos vivos por (producto, umbral) y suma la
// columna stock, solo para productos físicos no borrados. La comparación
// stock <= umbral la hace el caso de uso.
func (r *InventoryTransactionRepo) SumStockByProduct(ctx context.Context) ([]repository.ProductStockSummary, error) {
	const query = `
		SELECT t.product_id, p.threshold, COALESCE(SUM(t.stock), 0) AS stock
		FROM inventory_transactions t
		JOIN products p ON p.id = t.product_id
		WHERE p.physical
		  AND p.is_not_deleted
		  AND t.is_not_deleted
		GROUP BY t.product_id, p.threshold
		ORDER BY t.product_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sum stock by product: %w", err)
	}
	defer rows.Close()

	var summaries []repository.ProductStockSummary
	for rows.Next() {
		var s repository.ProductStockSummary
		if err := rows.Scan(&s.ProductID, &s.Threshold, &s.Stock); err != nil {
			return nil, fmt.Errorf("scan stock summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
