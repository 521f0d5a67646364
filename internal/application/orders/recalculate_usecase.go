package orders

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

// PurchaseTotalsUseCase recalcula los montos derivados de una cabecera de
// orden de compra a partir de sus líneas vivas. Se invoca de forma síncrona
// en cada alta, cambio o baja de línea y en cada actualización de cabecera,
// de modo que los montos nunca queden inconsistentes tras una escritura.
type PurchaseTotalsUseCase struct {
	orderRepo repository.PurchaseOrderRepository
	itemRepo  repository.PurchaseOrderItemRepository
	taxRepo   repository.TaxRepository
}

// NewPurchaseTotalsUseCase construye el recalculador de compras.
func NewPurchaseTotalsUseCase(
	orderRepo repository.PurchaseOrderRepository,
	itemRepo repository.PurchaseOrderItemRepository,
	taxRepo repository.TaxRepository,
) *PurchaseTotalsUseCase {
	return &PurchaseTotalsUseCase{orderRepo: orderRepo, itemRepo: itemRepo, taxRepo: taxRepo}
}

// RecalculateParent fija BeforeTax = Σ totales de líneas vivas, Tax según el
// impuesto referenciado (cero si no resuelve) y AfterTax = BeforeTax + Tax.
// Si la cabecera ya no existe (carrera con un borrado) es un no-op silencioso.
func (uc *PurchaseTotalsUseCase) RecalculateParent(ctx context.Context, orderID int64, actor string) error {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return nil
	}

	items, err := uc.itemRepo.ListByOrder(orderID)
	if err != nil {
		return err
	}

	beforeTax := decimal.Zero
	for _, item := range items {
		beforeTax = beforeTax.Add(item.Total)
	}

	// Impuesto no resuelto se trata como cero, no como error.
	taxAmount := decimal.Zero
	if order.TaxID != 0 {
		tax, err := uc.taxRepo.GetByID(order.TaxID)
		if err != nil {
			return err
		}
		if tax != nil {
			taxAmount = tax.Percentage.Div(decimal.NewFromInt(100)).Mul(beforeTax)
		}
	}

	afterTax := beforeTax.Add(taxAmount)
	return uc.orderRepo.UpdateAmounts(orderID, beforeTax, taxAmount, afterTax, actor)
}

// SalesTotalsUseCase recalculador gemelo para órdenes de venta.
type SalesTotalsUseCase struct {
	orderRepo repository.SalesOrderRepository
	itemRepo  repository.SalesOrderItemRepository
	taxRepo   repository.TaxRepository
}

// NewSalesTotalsUseCase construye el recalculador de ventas.
func NewSalesTotalsUseCase(
	orderRepo repository.SalesOrderRepository,
	itemRepo repository.SalesOrderItemRepository,
	taxRepo repository.TaxRepository,
) *SalesTotalsUseCase {
	return &SalesTotalsUseCase{orderRepo: orderRepo, itemRepo: itemRepo, taxRepo: taxRepo}
}

// RecalculateParent misma regla que en compras: Σ líneas, impuesto, after-tax.
func (uc *SalesTotalsUseCase) RecalculateParent(ctx context.Context, orderID int64, actor string) error {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return nil
	}

	items, err := uc.itemRepo.ListByOrder(orderID)
	if err != nil {
		return err
	}

	beforeTax := decimal.Zero
	for _, item := range items {
		beforeTax = beforeTax.Add(item.Total)
	}

	taxAmount := decimal.Zero
	if order.TaxID != 0 {
		tax, err := uc.taxRepo.GetByID(order.TaxID)
		if err != nil {
			return err
		}
		if tax != nil {
			taxAmount = tax.Percentage.Div(decimal.NewFromInt(100)).Mul(beforeTax)
		}
	}

	afterTax := beforeTax.Add(taxAmount)
	return uc.orderRepo.UpdateAmounts(orderID, beforeTax, taxAmount, afterTax, actor)
}
