package repository

import "github.com/jhoicas/ordenes-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las lecturas excluyen filas con borrado lógico.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	SoftDelete(id int64, actor string) error
}
