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

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)
var _ repository.SalesOrderItemRepository = (*SalesOrderItemRepo)(nil)

// SalesOrderRepo implementación de SalesOrderRepository sobre PostgreSQL; espejo del lado compras.
type SalesOrderRepo struct {
	q Querier
}

// NewSalesOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesOrderRepository(q Querier) *SalesOrderRepo {
	return &SalesOrderRepo{q: q}
}

const salesOrderColumns = `id, number, order_date, status, customer_id, tax_id,
	before_tax_amount, tax_amount, after_tax_amount, row_guid,
	created_by_user_id, created_at_utc, updated_by_user_id, updated_at_utc, is_not_deleted`

func scanSalesOrder(row pgx.Row) (*entity.SalesOrder, error) {
	var o entity.SalesOrder
	err := row.Scan(
		&o.ID, &o.Number, &o.OrderDate, &o.Status, &o.CustomerID, &o.TaxID,
		&o.BeforeTaxAmount, &o.TaxAmount, &o.AfterTaxAmount, &o.RowGUID,
		&o.CreatedByUserID, &o.CreatedAtUtc, &o.UpdatedByUserID, &o.UpdatedAtUtc, &o.IsNotDeleted,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *SalesOrderRepo) Create(order *entity.SalesOrder) error {
	query := `
		INSERT INTO sales_orders (number, order_date, status, customer_id, tax_id,
			before_tax_amount, tax_amount, after_tax_amount, row_guid,
			created_by_user_id, created_at_utc, updated_by_user_id, updated_at_utc, is_not_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		order.Number, order.OrderDate, order.Status, order.CustomerID, order.TaxID,
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
		return fmt.Errorf("insert sales order: %w", err)
	}
	return nil
}

func (r *SalesOrderRepo) GetByID(id int64) (*entity.SalesOrder, error) {
	query := `SELECT ` + salesOrderColumns + ` FROM sales_orders WHERE id = $1 AND is_not_deleted`
	o, err := scanSalesOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales order: %w", err)
	}
	return o, nil
}

func (r *SalesOrderRepo) Update(order *entity.SalesOrder) error {
	query := `
		UPDATE sales_orders
		SET order_date = $2, status = $3, customer_id = $4, tax_id = $5,
			updated_by_user_id = $6, updated_at_utc = $7
		WHERE id = $1 AND is_not_deleted`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderDate, order.Status, order.CustomerID, order.TaxID,
		order.UpdatedByUserID, order.UpdatedAtUtc,
	)
	if err != nil {
		return fmt.Errorf("update sales order: %w", err)
	}
	return nil
}

func (r *SalesOrderRepo) UpdateAmounts(id int64, beforeTax, tax, afterTax decimal.Decimal, actor string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales_orders
		 SET before_tax_amount = $2, tax_amount = $3, after_tax_amount = $4,
			 updated_by_user_id = $5, updated_at_utc = now()
		 WHERE id = $1 AND is_not_deleted`,
		id, beforeTax, tax, afterTax, actor,
	)
	if err != nil {
		return fmt.Errorf("update sales order amounts: %w", err)
	}
	return nil
}

func (r *SalesOrderRepo) List(limit, offset int) ([]*entity.SalesOrder, error) {
	query := `SELECT ` + salesOrderColumns + `
		FROM sales_orders WHERE is_not_deleted ORDER BY id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesOrder
	for rows.Next() {
		o, err := scanSalesOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sales order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func (r *SalesOrderRepo) SoftDelete(id int64, actor string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales_orders SET is_not_deleted = false, updated_by_user_id = $2, updated_at_utc = now()
		 WHERE id = $1`,
		id, actor,
	)
	if err != nil {
		return fmt.Errorf("soft delete sales order: %w", err)
	}
	return nil
}

// SalesOrderItemRepo implementación de SalesOrderItemRepository sobre PostgreSQL.
type SalesOrderItemRepo struct {
	q Querier
}

// NewSalesOrderItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesOrderItemRepository(q Querier) *SalesOrderItemRepo {
	return &SalesOrderItemRepo{q: q}
}

const salesOrderItemColumns = `id, sales_order_id, product_id, summary, unit_price, quantity, total, row_guid,
	created_by_user_id, created_at_utc, updated_by_user_id, updated_at_utc, is_not_deleted`

func scanSalesOrderItem(row pgx.Row) (*entity.SalesOrderItem, error) {
	var i entity.SalesOrderItem
	err := row.Scan(
		&i.ID, &i.SalesOrderID, &i.ProductID, &i.Summary, &i.UnitPrice, &i.Quantity, &i.Total, &i.RowGUID,
		&i.CreatedByUserID, &i.CreatedAtUtc, &i.UpdatedByUserID, &i.UpdatedAtUtc, &i.IsNotDeleted,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *SalesOrderItemRepo) Create(item *entity.SalesOrderItem) error {
	query := `
		INSERT INTO sales_order_items (sales_order_id, product_id, summary, unit_price, quantity, total, row_guid,
			created_by_user_id, created_at_utc, updated_by_user_id, updated_at_utc, is_not_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.SalesOrderID, item.ProductID, item.Summary, item.UnitPrice, item.Quantity, item.Total,
		item.RowGUID,
		item.CreatedByUserID, item.CreatedAtUtc, item.UpdatedByUserID, item.UpdatedAtUtc, item.IsNotDeleted,
	).Scan(&item.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert sales order item: %w", err)
	}
	return nil
}

func (r *SalesOrderItemRepo) GetByID(id int64) (*entity.SalesOrderItem, error) {
	query := `SELECT ` + salesOrderItemColumns + ` FROM sales_order_items WHERE id = $1 AND is_not_deleted`
	i, err := scanSalesOrderItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales order item: %w", err)
	}
	return i, nil
}

func (r *SalesOrderItemRepo) Update(item *entity.SalesOrderItem) error {
	query := `
		UPDATE sales_order_items
		SET summary = $2, unit_price = $3, quantity = $4, total = $5,
			updated_by_user_id = $6, updated_at_utc = $7
		WHERE id = $1 AND is_not_deleted`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Summary, item.UnitPrice, item.Quantity, item.Total,
		item.UpdatedByUserID, item.UpdatedAtUtc,
	)
	if err != nil {
		return fmt.Errorf("update sales order item: %w", err)
	}
	return nil
}

func (r *SalesOrderItemRepo) ListByOrder(orderID int64) ([]*entity.SalesOrderItem, error) {
	query := `SELECT ` + salesOrderItemColumns + `
		FROM sales_order_items WHERE sales_order_id = $1 AND is_not_deleted ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list sales order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesOrderItem
	for rows.Next() {
		i, err := scanSalesOrderItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sales order item: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

func (r *SalesOrderItemRepo) SoftDelete(id int64, actor string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales_order_items SET is_not_deleted = false, updated_by_user_id = $2, updated_at_utc = now()
		 WHERE id = $1`,
		id, actor,
	)
	if err != nil {
		return fmt.Errorf("soft delete sales order item: %w", err)
	}
	return nil
}
