package orders_test

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests del paquete. Replican el contrato de
// los repositorios Postgres: IDs secuenciales, lecturas que excluyen filas con
// borrado lógico, (nil, nil) cuando la fila no existe.
// ──────────────────────────────────────────────────────────────────────────────

type memPurchaseOrderRepo struct {
	orders map[int64]*entity.PurchaseOrder
	items  *memPurchaseOrderItemRepo
	nextID int64
}

func newMemPurchaseOrderRepo(items *memPurchaseOrderItemRepo) *memPurchaseOrderRepo {
	return &memPurchaseOrderRepo{orders: make(map[int64]*entity.PurchaseOrder), items: items, nextID: 1}
}

var _ repository.PurchaseOrderRepository = (*memPurchaseOrderRepo)(nil)

func (r *memPurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	order.ID = r.nextID
	r.nextID++
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *memPurchaseOrderRepo) GetByID(id int64) (*entity.PurchaseOrder, error) {
	o, ok := r.orders[id]
	if !ok || !o.IsNotDeleted {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *memPurchaseOrderRepo) Update(order *entity.PurchaseOrder) error {
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *memPurchaseOrderRepo) UpdateAmounts(id int64, beforeTax, tax, afterTax decimal.Decimal, actor string) error {
	o, ok := r.orders[id]
	if !ok {
		return nil
	}
	o.BeforeTaxAmount = beforeTax
	o.TaxAmount = tax
	o.AfterTaxAmount = afterTax
	o.UpdatedByUserID = actor
	return nil
}

func (r *memPurchaseOrderRepo) List(limit, offset int) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, o := range r.orders {
		if o.IsNotDeleted {
			cp := *o
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memPurchaseOrderRepo) SoftDelete(id int64, actor string) error {
	if o, ok := r.orders[id]; ok {
		o.IsNotDeleted = false
		o.UpdatedByUserID = actor
	}
	return nil
}

// GetLastOrderLineForProduct recorre las líneas vivas del producto y devuelve
// la de ID más alto junto con su cabecera, como hace la consulta SQL real.
func (r *memPurchaseOrderRepo) GetLastOrderLineForProduct(_ context.Context, productID int64) (*entity.PurchaseOrder, *entity.PurchaseOrderItem, error) {
	var last *entity.PurchaseOrderItem
	for _, it := range r.items.items {
		if it.ProductID != productID || !it.IsNotDeleted {
			continue
		}
		if last == nil || it.ID > last.ID {
			last = it
		}
	}
	if last == nil {
		return nil, nil, nil
	}
	order := r.orders[last.PurchaseOrderID]
	if order == nil || !order.IsNotDeleted {
		return nil, nil, nil
	}
	ocp, icp := *order, *last
	return &ocp, &icp, nil
}

type memPurchaseOrderItemRepo struct {
	items  map[int64]*entity.PurchaseOrderItem
	nextID int64
}

func newMemPurchaseOrderItemRepo() *memPurchaseOrderItemRepo {
	return &memPurchaseOrderItemRepo{items: make(map[int64]*entity.PurchaseOrderItem), nextID: 1}
}

var _ repository.PurchaseOrderItemRepository = (*memPurchaseOrderItemRepo)(nil)

func (r *memPurchaseOrderItemRepo) Create(item *entity.PurchaseOrderItem) error {
	item.ID = r.nextID
	r.nextID++
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memPurchaseOrderItemRepo) GetByID(id int64) (*entity.PurchaseOrderItem, error) {
	it, ok := r.items[id]
	if !ok || !it.IsNotDeleted {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *memPurchaseOrderItemRepo) Update(item *entity.PurchaseOrderItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memPurchaseOrderItemRepo) ListByOrder(orderID int64) ([]*entity.PurchaseOrderItem, error) {
	var out []*entity.PurchaseOrderItem
	for _, it := range r.items {
		if it.PurchaseOrderID == orderID && it.IsNotDeleted {
			cp := *it
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memPurchaseOrderItemRepo) SoftDelete(id int64, actor string) error {
	if it, ok := r.items[id]; ok {
		it.IsNotDeleted = false
		it.UpdatedByUserID = actor
	}
	return nil
}

type memSalesOrderRepo struct {
	orders map[int64]*entity.SalesOrder
	nextID int64
}

func newMemSalesOrderRepo() *memSalesOrderRepo {
	return &memSalesOrderRepo{orders: make(map[int64]*entity.SalesOrder), nextID: 1}
}

var _ repository.SalesOrderRepository = (*memSalesOrderRepo)(nil)

func (r *memSalesOrderRepo) Create(order *entity.SalesOrder) error {
	order.ID = r.nextID
	r.nextID++
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *memSalesOrderRepo) GetByID(id int64) (*entity.SalesOrder, error) {
	o, ok := r.orders[id]
	if !ok || !o.IsNotDeleted {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *memSalesOrderRepo) Update(order *entity.SalesOrder) error {
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *memSalesOrderRepo) UpdateAmounts(id int64, beforeTax, tax, afterTax decimal.Decimal, actor string) error {
	o, ok := r.orders[id]
	if !ok {
		return nil
	}
	o.BeforeTaxAmount = beforeTax
	o.TaxAmount = tax
	o.AfterTaxAmount = afterTax
	o.UpdatedByUserID = actor
	return nil
}

func (r *memSalesOrderRepo) List(limit, offset int) ([]*entity.SalesOrder, error) {
	var out []*entity.SalesOrder
	for _, o := range r.orders {
		if o.IsNotDeleted {
			cp := *o
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memSalesOrderRepo) SoftDelete(id int64, actor string) error {
	if o, ok := r.orders[id]; ok {
		o.IsNotDeleted = false
		o.UpdatedByUserID = actor
	}
	return nil
}

type memSalesOrderItemRepo struct {
	items  map[int64]*entity.SalesOrderItem
	nextID int64
}

func newMemSalesOrderItemRepo() *memSalesOrderItemRepo {
	return &memSalesOrderItemRepo{items: make(map[int64]*entity.SalesOrderItem), nextID: 1}
}

var _ repository.SalesOrderItemRepository = (*memSalesOrderItemRepo)(nil)

func (r *memSalesOrderItemRepo) Create(item *entity.SalesOrderItem) error {
	item.ID = r.nextID
	r.nextID++
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memSalesOrderItemRepo) GetByID(id int64) (*entity.SalesOrderItem, error) {
	it, ok := r.items[id]
	if !ok || !it.IsNotDeleted {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *memSalesOrderItemRepo) Update(item *entity.SalesOrderItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memSalesOrderItemRepo) ListByOrder(orderID int64) ([]*entity.SalesOrderItem, error) {
	var out []*entity.SalesOrderItem
	for _, it := range r.items {
		if it.SalesOrderID == orderID && it.IsNotDeleted {
			cp := *it
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memSalesOrderItemRepo) SoftDelete(id int64, actor string) error {
	if it, ok := r.items[id]; ok {
		it.IsNotDeleted = false
		it.UpdatedByUserID = actor
	}
	return nil
}

// memTaxRepo catálogo de impuestos en memoria.
type memTaxRepo struct {
	taxes map[int64]*entity.Tax
}

var _ repository.TaxRepository = (*memTaxRepo)(nil)

func (r *memTaxRepo) GetByID(id int64) (*entity.Tax, error) {
	t, ok := r.taxes[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}
