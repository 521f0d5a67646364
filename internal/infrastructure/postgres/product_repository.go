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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, number, unit_price, physical, threshold, unit_measure, row_guid,
	created_by_user_id, created_at_utc, updated_by_user_id, updated_at_utc, is_not_deleted`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Number, &p.UnitPrice, &p.Physical, &p.Threshold, &p.UnitMeasure, &p.RowGUID,
		&p.CreatedByUserID, &p.CreatedAtUtc, &p.UpdatedByUserID, &p.UpdatedAtUtc, &p.IsNotDeleted,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un producto nuevo y asigna su ID generado.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, number, unit_price, physical, threshold, unit_measure, row_guid,
			created_by_user_id, created_at_utc, updated_by_user_id, updated_at_utc, is_not_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Number, product.UnitPrice, product.Physical, product.Threshold,
		product.UnitMeasure, product.RowGUID,
		product.CreatedByUserID, product.CreatedAtUtc, product.UpdatedByUserID, product.UpdatedAtUtc,
		product.IsNotDeleted,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto vivo por ID.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND is_not_deleted`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza los campos de catálogo del producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, number = $3, unit_price = $4, physical = $5, threshold = $6, unit_measure = $7,
			updated_by_user_id = $8, updated_at_utc = $9
		WHERE id = $1 AND is_not_deleted`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Number, product.UnitPrice, product.Physical,
		product.Threshold, product.UnitMeasure, product.UpdatedByUserID, product.UpdatedAtUtc,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List productos vivos con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products WHERE is_not_deleted ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// SoftDelete marca el producto como borrado, estampando el actor.
func (r *ProductRepo) SoftDelete(id int64, actor string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET is_not_deleted = false, updated_by_user_id = $2, updated_at_utc = now()
		 WHERE id = $1`,
		id, actor,
	)
	if err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	return nil
}
