package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Solo los productos físicos (Physical=true) llevan control de stock;
// Threshold es el punto de reorden que dispara la reposición automática.
type Product struct {
	ID          int64
	Name        string
	Number      string
	UnitPrice   decimal.Decimal // precio de compra por defecto
	Physical    bool
	Threshold   int
	UnitMeasure string
	RowGUID     uuid.UUID
	Audit
}
