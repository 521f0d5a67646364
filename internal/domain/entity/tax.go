package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tax impuesto referenciado por las órdenes (nunca poseído por ellas).
// Percentage se expresa de 0 a 100.
type Tax struct {
	ID         int64
	Name       string
	Percentage decimal.Decimal
	RowGUID    uuid.UUID
	Audit
}
