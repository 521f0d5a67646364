package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

// SalesItemInput datos de entrada para líneas de venta.
type SalesItemInput struct {
	SalesOrderID int64
	ProductID    int64
	Summary      string
	UnitPrice    decimal.Decimal
	Quantity     decimal.Decimal
}

// SalesItemUseCase gestiona líneas de orden de venta; espejo del lado compras.
type SalesItemUseCase struct {
	itemRepo  repository.SalesOrderItemRepository
	orderRepo repository.SalesOrderRepository
	totals    *SalesTotalsUseCase
}

// NewSalesItemUseCase construye el caso de uso de líneas de venta.
func NewSalesItemUseCase(
	itemRepo repository.SalesOrderItemRepository,
	orderRepo repository.SalesOrderRepository,
	totals *SalesTotalsUseCase,
) *SalesItemUseCase {
	return &SalesItemUseCase{itemRepo: itemRepo, orderRepo: orderRepo, totals: totals}
}

// AddItem persiste la línea con su total derivado y recalcula la cabecera.
func (uc *SalesItemUseCase) AddItem(ctx context.Context, actor string, in SalesItemInput) (*entity.SalesOrderItem, error) {
	if in.SalesOrderID == 0 || in.ProductID == 0 || in.Quantity.LessThanOrEqual(decimal.Zero) || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(in.SalesOrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	item := &entity.SalesOrderItem{
		SalesOrderID: in.SalesOrderID,
		ProductID:    in.ProductID,
		Summary:      in.Summary,
		UnitPrice:    in.UnitPrice,
		Quantity:     in.Quantity,
		RowGUID:      uuid.New(),
	}
	item.RecalculateTotal()
	item.SetCreatedBy(actor, now)
	item.SetUpdatedBy(actor, now)

	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	if err := uc.totals.RecalculateParent(ctx, in.SalesOrderID, actor); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem aplica los cambios y recalcula la cabecera.
func (uc *SalesItemUseCase) UpdateItem(ctx context.Context, actor string, itemID int64, in SalesItemInput) (*entity.SalesOrderItem, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Quantity.LessThanOrEqual(decimal.Zero) || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	item.Summary = in.Summary
	item.UnitPrice = in.UnitPrice
	item.Quantity = in.Quantity
	item.RecalculateTotal()
	item.SetUpdatedBy(actor, time.Now())

	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	if err := uc.totals.RecalculateParent(ctx, item.SalesOrderID, actor); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem baja lógica de la línea y recálculo del padre.
func (uc *SalesItemUseCase) DeleteItem(ctx context.Context, actor string, itemID int64) error {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if err := uc.itemRepo.SoftDelete(itemID, actor); err != nil {
		return err
	}
	return uc.totals.RecalculateParent(ctx, item.SalesOrderID, actor)
}

// ListByOrder devuelve las líneas vivas de una orden de venta.
func (uc *SalesItemUseCase) ListByOrder(orderID int64) ([]*entity.SalesOrderItem, error) {
	return uc.itemRepo.ListByOrder(orderID)
}

// SalesOrderInput datos de entrada para cabeceras de venta.
type SalesOrderInput struct {
	OrderDate  time.Time
	Status     string
	CustomerID int64
	TaxID      int64
}

// SalesOrderUseCase gestiona cabeceras de orden de venta; espejo del lado compras.
type SalesOrderUseCase struct {
	orderRepo repository.SalesOrderRepository
	totals    *SalesTotalsUseCase
}

// NewSalesOrderUseCase construye el caso de uso de cabeceras de venta.
func NewSalesOrderUseCase(orderRepo repository.SalesOrderRepository, totals *SalesTotalsUseCase) *SalesOrderUseCase {
	return &SalesOrderUseCase{orderRepo: orderRepo, totals: totals}
}

// Create persiste una cabecera de venta nueva en estado borrador.
func (uc *SalesOrderUseCase) Create(ctx context.Context, actor string, in SalesOrderInput) (*entity.SalesOrder, error) {
	if in.CustomerID == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	orderDate := in.OrderDate
	if orderDate.IsZero() {
		orderDate = now
	}
	order := &entity.SalesOrder{
		Number:     "SO-" + uuid.New().String()[:8],
		OrderDate:  orderDate,
		Status:     entity.OrderStatusDraft,
		CustomerID: in.CustomerID,
		TaxID:      in.TaxID,
		RowGUID:    uuid.New(),
	}
	order.SetCreatedBy(actor, now)
	order.SetUpdatedBy(actor, now)
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetByID devuelve la cabecera viva, o ErrNotFound.
func (uc *SalesOrderUseCase) GetByID(orderID int64) (*entity.SalesOrder, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// Update aplica los cambios de cabecera y recalcula los montos derivados.
func (uc *SalesOrderUseCase) Update(ctx context.Context, actor string, orderID int64, in SalesOrderInput) (*entity.SalesOrder, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !in.OrderDate.IsZero() {
		order.OrderDate = in.OrderDate
	}
	if in.Status != "" {
		order.Status = in.Status
	}
	if in.CustomerID != 0 {
		order.CustomerID = in.CustomerID
	}
	order.TaxID = in.TaxID
	order.SetUpdatedBy(actor, time.Now())

	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}
	if err := uc.totals.RecalculateParent(ctx, orderID, actor); err != nil {
		return nil, err
	}
	return uc.orderRepo.GetByID(orderID)
}

// Delete baja lógica de la cabecera de venta.
func (uc *SalesOrderUseCase) Delete(ctx context.Context, actor string, orderID int64) error {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.SoftDelete(orderID, actor)
}
