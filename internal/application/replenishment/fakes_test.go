package replenishment_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria para el motor de reposición. El libro de inventario se
// stubea con una función para controlar qué devuelve (o cómo falla) cada
// escaneo; el resto replica el contrato de los repositorios Postgres.
// ──────────────────────────────────────────────────────────────────────────────

type stubLedger struct {
	summariesFn func(ctx context.Context) ([]repository.ProductStockSummary, error)
}

var _ repository.InventoryTransactionRepository = (*stubLedger)(nil)

func (s *stubLedger) Create(*entity.InventoryTransaction) error { return nil }

func (s *stubLedger) ListByProduct(int64, *time.Time, *time.Time, int, int) ([]*entity.InventoryTransaction, error) {
	return nil, nil
}

func (s *stubLedger) SumStockByProduct(ctx context.Context) ([]repository.ProductStockSummary, error) {
	return s.summariesFn(ctx)
}

type memProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[int64]*entity.Product), nextID: 1}
}

var _ repository.ProductRepository = (*memProductRepo)(nil)

func (r *memProductRepo) Create(p *entity.Product) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok || !p.IsNotDeleted {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.IsNotDeleted {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memProductRepo) SoftDelete(id int64, actor string) error {
	if p, ok := r.products[id]; ok {
		p.IsNotDeleted = false
		p.UpdatedByUserID = actor
	}
	return nil
}

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

// memTxRunner ejecuta la función directamente sobre los repositorios en
// memoria. No hay transacción real: los tests de atomicidad viven en el
// nivel de infraestructura.
type memTxRunner struct {
	orderRepo repository.PurchaseOrderRepository
	itemRepo  repository.PurchaseOrderItemRepository
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	orderRepo repository.PurchaseOrderRepository,
	itemRepo repository.PurchaseOrderItemRepository,
) error) error {
	return fn(r.orderRepo, r.itemRepo)
}

// mailerSpy registra los envíos; con err configurado simula fallos de transporte.
type mailerSpy struct {
	sent []string
	err  error
}

func (m *mailerSpy) Send(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, body)
	return nil
}
