package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que los repositorios traducen a errores de dominio.
const (
	sqlstateUniqueViolation     = "23505"
	sqlstateForeignKeyViolation = "23503"
)

func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// isUniqueViolation: choque contra un constraint único (número de orden, número de producto).
func isUniqueViolation(err error) bool {
	return hasSQLState(err, sqlstateUniqueViolation)
}

// isForeignKeyViolation: la fila referencia un registro inexistente (vendor, tax, bodega).
func isForeignKeyViolation(err error) bool {
	return hasSQLState(err, sqlstateForeignKeyViolation)
}
