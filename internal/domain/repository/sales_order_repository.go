package repository

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
)

// SalesOrderRepository define el puerto de persistencia para órdenes de venta.
type SalesOrderRepository interface {
	Create(order *entity.SalesOrder) error
	GetByID(id int64) (*entity.SalesOrder, error)
	Update(order *entity.SalesOrder) error
	UpdateAmounts(id int64, beforeTax, tax, afterTax decimal.Decimal, actor string) error
	List(limit, offset int) ([]*entity.SalesOrder, error)
	SoftDelete(id int64, actor string) error
}

// SalesOrderItemRepository define el puerto para líneas de orden de venta.
type SalesOrderItemRepository interface {
	Create(item *entity.SalesOrderItem) error
	GetByID(id int64) (*entity.SalesOrderItem, error)
	Update(item *entity.SalesOrderItem) error
	ListByOrder(orderID int64) ([]*entity.SalesOrderItem, error)
	SoftDelete(id int64, actor string) error
}
