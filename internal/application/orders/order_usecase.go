package orders

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

// PurchaseOrderInput datos de entrada para crear o actualizar una cabecera.
type PurchaseOrderInput struct {
	OrderDate time.Time
	Status    string
	VendorID  int64
	TaxID     int64
}

// PurchaseOrderUseCase gestiona cabeceras de orden de compra (alta manual,
// actualización, borrado lógico). Un cambio de cabecera puede cambiar el
// impuesto referenciado, así que toda actualización dispara el recálculo.
type PurchaseOrderUseCase struct {
	orderRepo repository.PurchaseOrderRepository
	totals    *PurchaseTotalsUseCase
}

// NewPurchaseOrderUseCase construye el caso de uso de cabeceras.
func NewPurchaseOrderUseCase(orderRepo repository.PurchaseOrderRepository, totals *PurchaseTotalsUseCase) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{orderRepo: orderRepo, totals: totals}
}

// NewOrderNumber genera un número corto legible: "PO-" + 8 caracteres del token.
func NewOrderNumber() string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "PO-" + token[:8]
}

// Create persiste una cabecera nueva en estado borrador con montos en cero.
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, actor string, in PurchaseOrderInput) (*entity.PurchaseOrder, error) {
	if in.VendorID == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	orderDate := in.OrderDate
	if orderDate.IsZero() {
		orderDate = now
	}
	order := &entity.PurchaseOrder{
		Number:    NewOrderNumber(),
		OrderDate: orderDate,
		Status:    entity.OrderStatusDraft,
		VendorID:  in.VendorID,
		TaxID:     in.TaxID,
		RowGUID:   uuid.New(),
	}
	order.SetCreatedBy(actor, now)
	order.SetUpdatedBy(actor, now)
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Update aplica los cambios de cabecera y recalcula los montos: si cambió la
// referencia de impuesto, los derivados deben reflejarla en la misma escritura.
func (uc *PurchaseOrderUseCase) Update(ctx context.Context, actor string, orderID int64, in PurchaseOrderInput) (*entity.PurchaseOrder, error) {
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
	if in.VendorID != 0 {
		order.VendorID = in.VendorID
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

// GetByID devuelve la cabecera viva, o ErrNotFound.
func (uc *PurchaseOrderUseCase) GetByID(orderID int64) (*entity.PurchaseOrder, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// List devuelve cabeceras vivas con paginación.
func (uc *PurchaseOrderUseCase) List(limit, offset int) ([]*entity.PurchaseOrder, error) {
	return uc.orderRepo.List(limit, offset)
}

// Delete baja lógica de la cabecera. Las líneas quedan huérfanas de lectura:
// toda consulta de líneas parte de una cabecera viva.
func (uc *PurchaseOrderUseCase) Delete(ctx context.Context, actor string, orderID int64) error {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.SoftDelete(orderID, actor)
}
