package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

var _ repository.PurchaseOrderItemRepository = (*PurchaseOrderItemRepo)(nil)

// PurchaseOrderItemRepo implementación de PurchaseOrderItemRepository sobre PostgreSQL.
type PurchaseOrderItemRepo struct {
	q Querier
}

// NewPurchaseOrderItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderItemRepository(q Querier) *PurchaseOrderItemRepo {
	return &PurchaseOrderItemRepo{q: q}
}

const purchaseOrderItemColumns = `id, purchase_order_id, product_id, summary, unit_price, quantity, total, row_guid,
	created_by_user_id, created_at_utc, updated_by_user_id, updated_at_utc, is_not_deleted`

func scanPurchaseOrderItem(row pgx.Row) (*entity.PurchaseOrderItem, error) {
	var i entity.PurchaseOrderItem
	err := row.Scan(
		&i.ID, &i.PurchaseOrderID, &i.ProductID, &i.Summary, &i.UnitPrice, &i.Quantity, &i.Total, &i.RowGUID,
		&i.CreatedByUserID, &i.CreatedAtUtc, &i.UpdatedByUserID, &i.UpdatedAtUtc, &i.IsNotDeleted,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create persiste la línea y asigna su ID generado.
func (r *PurchaseOrderItemRepo) Create(item *entity.PurchaseOrderItem) error {
	query := `
		INSERT INTO purchase_order_items (purchase_order_id, product_id, summary, unit_price, quantity, total, row_guid,
			created_by_user_id, created_at_utc, updated_by_user_id, updated_at_utc, is_not_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.PurchaseOrderID, item.ProductID, item.Summary, item.UnitPrice, item.Quantity, item.Total,
		item.RowGUID,
		item.CreatedByUserID, item.CreatedAtUtc, item.UpdatedByUserID, item.UpdatedAtUtc, item.IsNotDeleted,
	).Scan(&item.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert purchase order item: %w", err)
	}
	return nil
}

// GetByID obtiene la línea viva por ID.
func (r *PurchaseOrderItemRepo) GetByID(id int64) (*entity.PurchaseOrderItem, error) {
	query := `SELECT ` + purchaseOrderItemColumns + ` FROM purchase_order_items WHERE id = $1 AND is_not_deleted`
	i, err := scanPurchaseOrderItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order item: %w", err)
	}
	return i, nil
}

// Update actualiza resumen, precio, cantidad y total derivado.
func (r *PurchaseOrderItemRepo) Update(item *entity.PurchaseOrderItem) error {
	query := `
		UPDATE purchase_order_items
		SET summary = $2, unit_price = $3, quantity = $4, total = $5,
			updated_by_user_id = $6, updated_at_utc = $7
		WHERE id = $1 AND is_not_deleted`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Summary, item.UnitPrice, item.Quantity, item.Total,
		item.UpdatedByUserID, item.UpdatedAtUtc,
	)
	if err != nil {
		return fmt.Errorf("update purchase order item: %w", err)
	}
	return nil
}

// ListByOrder líneas vivas de una cabecera, en orden de inserción.
func (r *PurchaseOrderItemRepo) ListByOrder(orderID int64) ([]*entity.PurchaseOrderItem, error) {
	query := `SELECT ` + purchaseOrderItemColumns + `
		FROM purchase_order_items WHERE purchase_order_id = $1 AND is_not_deleted ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list purchase order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrderItem
	for rows.Next() {
		i, err := scanPurchaseOrderItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order item: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

// SoftDelete marca la línea como borrada.
func (r *PurchaseOrderItemRepo) SoftDelete(id int64, actor string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchase_order_items SET is_not_deleted = false, updated_by_user_id = $2, updated_at_utc = now()
		 WHERE id = $1`,
		id, actor,
	)
	if err != nil {
		return fmt.Errorf("soft delete purchase order item: %w", err)
	}
	return nil
}
