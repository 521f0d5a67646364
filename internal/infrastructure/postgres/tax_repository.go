package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

var _ repository.TaxRepository = (*TaxRepo)(nil)

// TaxRepo implementación de TaxRepository sobre PostgreSQL.
type TaxRepo struct {
	q Querier
}

// NewTaxRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTaxRepository(q Querier) *TaxRepo {
	return &TaxRepo{q: q}
}

// GetByID obtiene el impuesto vivo por ID; (nil, nil) si no resuelve.
func (r *TaxRepo) GetByID(id int64) (*entity.Tax, error) {
	query := `
		SELECT id, name, percentage, row_guid,
			created_by_user_id, created_at_utc, updated_by_user_id, updated_at_utc, is_not_deleted
		FROM taxes WHERE id = $1 AND is_not_deleted`
	var t entity.Tax
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Name, &t.Percentage, &t.RowGUID,
		&t.CreatedByUserID, &t.CreatedAtUtc, &t.UpdatedByUserID, &t.UpdatedAtUtc, &t.IsNotDeleted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tax: %w", err)
	}
	return &t, nil
}
