package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación de PurchaseOrderRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

const purchaseOrderColumns = `id, number, order_date, status, vendor_id, tax_id,
	before_tax_amount, tax_amount, after_tax_amount, row_guid,
	created_by_user_id, created_at_utc, updated_by_user_id, updated_at_utc, is_not_deleted`

func scanPurchaseOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	err := row.Scan(
		&o.ID, &o.Number, &o.OrderDate, &o.Status, &o.VendorID, &o.TaxID,
		&o.BeforeTaxAmount, &o.TaxAmount, &o.AfterTaxAmount, &o.RowGUID,
		&o.CreatedByUserID, &o.CreatedAtUtc, &o.UpdatedByUserID, &o.UpdatedAtUtc, &o.IsNotDeleted,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste la cabecera y asigna su ID generado.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (number, order_date, status, vendor_id, tax_id,
			before_tax_amount, tax_amount, after_tax_amount, row_guid,
			created_by_user_id, created_at_utc, updated_by_user_id, updated_at_utc, is_not_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		order.Number, order.OrderDate, order.Status, order.VendorID, order.TaxID,
		order.BeforeTaxAmount, order.TaxAmount, order.AfterTaxAmount, order.RowGUID,
		order.CreatedByUserID, order.CreatedAtUtc, order.UpdatedByUserID, order.UpdatedAtUtc,
		order.IsNotDeleted,
	).Scan(&order.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera viva por ID.
func (r *PurchaseOrderRepo) GetByID(id int64) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE id = $1 AND is_not_deleted`
	o, err := scanPurchaseOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return o, nil
}

// Update actualiza los campos editables de la cabecera (los montos van por UpdateAmounts).
func (r *PurchaseOrderRepo) Update(order *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders
		SET order_date = $2, status = $3, vendor_id = $4, tax_id = $5,
			updated_by_user_id = $6, updated_at_utc = $7
		WHERE id = $1 AND is_not_deleted`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderDate, order.Status, order.VendorID, order.TaxID,
		order.UpdatedByUserID, order.UpdatedAtUtc,
	)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	return nil
}

// UpdateAmounts persiste solo los montos derivados (usado por el recalculador).
func (r *PurchaseOrderRepo) UpdateAmounts(id int64, beforeTax, tax, afterTax decimal.Decimal, actor string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchase_orders
		 SET before_tax_amount = $2, tax_amount = $3, after_tax_amount = $4,
			 updated_by_user_id = $5, updated_at_utc = now()
		 WHERE id = $1 AND is_not_deleted`,
		id, beforeTax, tax, afterTax, actor,
	)
	if err != nil {
		return fmt.Errorf("update purchase order amounts: %w", err)
	}
	return nil
}

// List cabeceras vivas, más recientes primero.
func (r *PurchaseOrderRepo) List(limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + `
		FROM purchase_orders WHERE is_not_deleted ORDER BY id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		o, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// SoftDelete marca la cabecera como borrada.
func (r *PurchaseOrderRepo) SoftDelete(id int64, actor string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE purchase_orders SET is_not_deleted = false, updated_by_user_id = $2, updated_at_utc = now()
		 WHERE id = $1`,
		id, actor,
	)
	if err != nil {
		return fmt.Errorf("soft delete purchase order: %w", err)
	}
	return nil
}

// GetLastOrderLineForProduct última línea de compra del producto (id más alto =
// más reciente) junto con su cabecera. (nil, nil, nil) si no hay historial.
func (r *PurchaseOrderRepo) GetLastOrderLineForProduct(ctx context.Context, productID int64) (*entity.PurchaseOrder, *entity.PurchaseOrderItem, error) {
	const query = `
		SELECT
			o.id, o.number, o.order_date, o.status, o.vendor_id, o.tax_id,
			o.before_tax_amount, o.tax_amount, o.after_tax_amount, o.row_guid,
			o.created_by_user_id, o.created_at_utc, o.updated_by_user_id, o.updated_at_utc, o.is_not_deleted,
			i.id, i.purchase_order_id, i.product_id, i.summary, i.unit_price, i.quantity, i.total, i.row_guid,
			i.created_by_user_id, i.created_at_utc, i.updated_by_user_id, i.updated_at_utc, i.is_not_deleted
		FROM purchase_order_items i
		JOIN purchase_orders o ON o.id = i.purchase_order_id
		WHERE i.product_id = $1 AND i.is_not_deleted AND o.is_not_deleted
		ORDER BY i.id DESC
		LIMIT 1`
	var o entity.PurchaseOrder
	var i entity.PurchaseOrderItem
	err := r.q.QueryRow(ctx, query, productID).Scan(
		&o.ID, &o.Number, &o.OrderDate, &o.Status, &o.VendorID, &o.TaxID,
		&o.BeforeTaxAmount, &o.TaxAmount, &o.AfterTaxAmount, &o.RowGUID,
		&o.CreatedByUserID, &o.CreatedAtUtc, &o.UpdatedByUserID, &o.UpdatedAtUtc, &o.IsNotDeleted,
		&i.ID, &i.PurchaseOrderID, &i.ProductID, &i.Summary, &i.UnitPrice, &i.Quantity, &i.Total, &i.RowGUID,
		&i.CreatedByUserID, &i.CreatedAtUtc, &i.UpdatedByUserID, &i.UpdatedAtUtc, &i.IsNotDeleted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get last order line for product: %w", err)
	}
	return &o, &i, nil
}
