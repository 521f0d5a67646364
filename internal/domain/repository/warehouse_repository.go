package repository

import "github.com/jhoicas/ordenes-api/internal/domain/entity"

// WarehouseRepository define el puerto de lectura para bodegas.
type WarehouseRepository interface {
	GetByID(id int64) (*entity.Warehouse, error)
	List(limit, offset int) ([]*entity.Warehouse, error)
}
