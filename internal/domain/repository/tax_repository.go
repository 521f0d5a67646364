package repository

import "github.com/jhoicas/ordenes-api/internal/domain/entity"

// TaxRepository define el puerto de lectura para impuestos.
type TaxRepository interface {
	GetByID(id int64) (*entity.Tax, error)
}
