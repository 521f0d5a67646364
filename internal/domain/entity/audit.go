package entity

import "time"

// Auditable contrato de auditoría que implementa cada entidad persistida.
// Los repositorios estampan actor y fecha en cada escritura.
type Auditable interface {
	SetCreatedBy(actor string, at time.Time)
	SetUpdatedBy(actor string, at time.Time)
}

// Audit columnas de auditoría compartidas (creador, actualizador, borrado lógico).
// Se embebe en cada entidad; IsNotDeleted=true significa fila viva.
type Audit struct {
	CreatedByUserID string
	CreatedAtUtc    time.Time
	UpdatedByUserID string
	UpdatedAtUtc    time.Time
	IsNotDeleted    bool
}

// SetCreatedBy estampa creador y fecha de creación; marca la fila como viva.
func (a *Audit) SetCreatedBy(actor string, at time.Time) {
	a.CreatedByUserID = actor
	a.CreatedAtUtc = at
	a.IsNotDeleted = true
}

// SetUpdatedBy estampa actualizador y fecha de modificación.
func (a *Audit) SetUpdatedBy(actor string, at time.Time) {
	a.UpdatedByUserID = actor
	a.UpdatedAtUtc = at
}
