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

// PurchaseItemInput datos de entrada para crear o actualizar una línea de compra.
type PurchaseItemInput struct {
	PurchaseOrderID int64
	ProductID       int64
	Summary         string
	UnitPrice       decimal.Decimal
	Quantity        decimal.Decimal
}

// PurchaseItemUseCase gestiona las líneas de una orden de compra. Toda mutación
// dispara el recálculo síncrono de los montos de la cabecera.
type PurchaseItemUseCase struct {
	itemRepo  repository.PurchaseOrderItemRepository
	orderRepo repository.PurchaseOrderRepository
	totals    *PurchaseTotalsUseCase
}

// NewPurchaseItemUseCase construye el caso de uso de líneas de compra.
func NewPurchaseItemUseCase(
	itemRepo repository.PurchaseOrderItemRepository,
	orderRepo repository.PurchaseOrderRepository,
	totals *PurchaseTotalsUseCase,
) *PurchaseItemUseCase {
	return &PurchaseItemUseCase{itemRepo: itemRepo, orderRepo: orderRepo, totals: totals}
}

// AddItem valida la cabecera, persiste la línea con su total derivado y
// recalcula los montos del padre.
func (uc *PurchaseItemUseCase) AddItem(ctx context.Context, actor string, in PurchaseItemInput) (*entity.PurchaseOrderItem, error) {
	if in.PurchaseOrderID == 0 || in.ProductID == 0 || in.Quantity.LessThanOrEqual(decimal.Zero) || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(in.PurchaseOrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	item := &entity.PurchaseOrderItem{
		PurchaseOrderID: in.PurchaseOrderID,
		ProductID:       in.ProductID,
		Summary:         in.Summary,
		UnitPrice:       in.UnitPrice,
		Quantity:        in.Quantity,
		RowGUID:         uuid.New(),
	}
	item.RecalculateTotal()
	item.SetCreatedBy(actor, now)
	item.SetUpdatedBy(actor, now)

	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	if err := uc.totals.RecalculateParent(ctx, in.PurchaseOrderID, actor); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem aplica precio/cantidad/resumen nuevos y recalcula el padre.
func (uc *PurchaseItemUseCase) UpdateItem(ctx context.Context, actor string, itemID int64, in PurchaseItemInput) (*entity.PurchaseOrderItem, error) {
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
	if err := uc.totals.RecalculateParent(ctx, item.PurchaseOrderID, actor); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem baja lógica de la línea; el padre se recalcula sin ella.
func (uc *PurchaseItemUseCase) DeleteItem(ctx context.Context, actor string, itemID int64) error {
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
	return uc.totals.RecalculateParent(ctx, item.PurchaseOrderID, actor)
}

// ListByOrder devuelve las líneas vivas de una orden.
func (uc *PurchaseItemUseCase) ListByOrder(orderID int64) ([]*entity.PurchaseOrderItem, error) {
	return uc.itemRepo.ListByOrder(orderID)
}
