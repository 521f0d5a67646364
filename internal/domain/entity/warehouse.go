package entity

import "github.com/google/uuid"

// Warehouse bodega referenciada por el libro de inventario.
type Warehouse struct {
	ID      int64
	Name    string
	RowGUID uuid.UUID
	Audit
}
