package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
)

// PurchaseOrderRepository define el puerto de persistencia para órdenes de compra.
// Create asigna el ID generado sobre la entidad; las lecturas excluyen borrado lógico.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	GetByID(id int64) (*entity.PurchaseOrder, error)
	Update(order *entity.PurchaseOrder) error
	UpdateAmounts(id int64, beforeTax, tax, afterTax decimal.Decimal, actor string) error
	List(limit, offset int) ([]*entity.PurchaseOrder, error)
	SoftDelete(id int64, actor string) error

	// GetLastOrderLineForProduct devuelve la última línea de compra del producto
	// (id de línea más alto = más reciente) junto con su cabecera, para heredar
	// proveedor, impuesto, precio y cantidad. (nil, nil, nil) si no hay historial.
	GetLastOrderLineForProduct(ctx context.Context, productID int64) (*entity.PurchaseOrder, *entity.PurchaseOrderItem, error)
}

// PurchaseOrderItemRepository define el puerto para líneas de orden de compra.
// Las líneas se mutan solo a través de las operaciones de su cabecera.
type PurchaseOrderItemRepository interface {
	Create(item *entity.PurchaseOrderItem) error
	GetByID(id int64) (*entity.PurchaseOrderItem, error)
	Update(item *entity.PurchaseOrderItem) error
	ListByOrder(orderID int64) ([]*entity.PurchaseOrderItem, error)
	SoftDelete(id int64, actor string) error
}
