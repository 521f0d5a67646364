package replenishment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

// Valores de respaldo cuando el producto no tiene historial de compras.
// Cadena de defaults documentada: proveedor y impuesto caen al registro 1
// del catálogo; la cantidad inicial de pedido es 20 unidades.
const (
	DefaultVendorID = int64(1)
	DefaultTaxID    = int64(1)
	DefaultQuantity = 20
)

// actorSystem identidad con la que el motor estampa la auditoría de sus escrituras.
const actorSystem = "system"

// ReplenishUseCase genera órdenes de compra borrador para productos bajo umbral,
// sembradas desde la última línea de compra conocida del producto.
type ReplenishUseCase struct {
	lowStock    *LowStockUseCase
	productRepo repository.ProductRepository
	orderRepo   repository.PurchaseOrderRepository
	txRunner    OrderTxRunner
	totals      TotalsRecalculator
	mailer      Mailer
	notifyTo    string
	log         zerolog.Logger
}

// NewReplenishUseCase construye el originador de órdenes.
func NewReplenishUseCase(
	lowStock *LowStockUseCase,
	productRepo repository.ProductRepository,
	orderRepo repository.PurchaseOrderRepository,
	txRunner OrderTxRunner,
	totals TotalsRecalculator,
	mailer Mailer,
	notifyTo string,
	log zerolog.Logger,
) *ReplenishUseCase {
	return &ReplenishUseCase{
		lowStock:    lowStock,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		txRunner:    txRunner,
		totals:      totals,
		mailer:      mailer,
		notifyTo:    notifyTo,
		log:         log,
	}
}

// newOrderNumber token corto único para el número de orden generada.
func newOrderNumber() string {
	return "PO-" + uuid.New().String()[:8]
}

// Replenish crea cabecera + línea para el producto indicado. El proveedor,
// impuesto, precio y cantidad salen de la última línea de compra del producto;
// sin historial aplican los defaults. Cabecera y línea se confirman en una
// misma transacción y los montos del padre se recalculan antes de retornar.
func (uc *ReplenishUseCase) Replenish(ctx context.Context, product *entity.Product) (*entity.PurchaseOrder, *entity.PurchaseOrderItem, error) {
	lastOrder, lastItem, err := uc.orderRepo.GetLastOrderLineForProduct(ctx, product.ID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()

	vendorID := DefaultVendorID
	taxID := DefaultTaxID
	if lastOrder != nil {
		vendorID = lastOrder.VendorID
		taxID = lastOrder.TaxID
	}

	unitPrice := product.UnitPrice
	quantity := decimal.NewFromInt(DefaultQuantity)
	if lastItem != nil {
		unitPrice = lastItem.UnitPrice
		quantity = lastItem.Quantity
	}

	order := &entity.PurchaseOrder{
		Number:    newOrderNumber(),
		OrderDate: now,
		Status:    entity.OrderStatusDraft,
		VendorID:  vendorID,
		TaxID:     taxID,
		RowGUID:   uuid.New(),
	}
	order.SetCreatedBy(actorSystem, now)
	order.SetUpdatedBy(actorSystem, now)

	item := &entity.PurchaseOrderItem{
		ProductID: product.ID,
		Summary:   product.Name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		RowGUID:   uuid.New(),
	}
	item.RecalculateTotal()
	item.SetCreatedBy(actorSystem, now)
	item.SetUpdatedBy(actorSystem, now)

	// Cabecera y línea en la misma transacción: o quedan ambas o ninguna.
	err = uc.txRunner.Run(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		itemRepo repository.PurchaseOrderItemRepository,
	) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		item.PurchaseOrderID = order.ID
		return itemRepo.Create(item)
	})
	if err != nil {
		return nil, nil, err
	}

	if err := uc.totals.RecalculateParent(ctx, order.ID, actorSystem); err != nil {
		return nil, nil, err
	}

	uc.notify(order)
	return order, item, nil
}

// notify envía el resumen de la orden creada. Un fallo de envío se registra
// y nada más: la orden ya está confirmada.
func (uc *ReplenishUseCase) notify(order *entity.PurchaseOrder) {
	if uc.mailer == nil || uc.notifyTo == "" {
		return
	}
	body := fmt.Sprintf(
		"Number: %s\nOrderDate: %s\nVendorID: %d\nOrderStatus: %s",
		order.Number, order.OrderDate.Format(time.RFC3339), order.VendorID, order.Status,
	)
	if err := uc.mailer.Send(uc.notifyTo, "Orden de compra automática creada", body); err != nil {
		uc.log.Warn().Err(err).Str("order_number", order.Number).Msg("notificación de reposición no enviada")
	}
}

// RunCycle escanea el stock y repone cada producto bajo umbral, en secuencia.
// Un producto desaparecido entre escaneo y reposición se omite y el ciclo
// continúa; un fallo del almacén aborta el ciclo dejando intacto lo ya creado.
func (uc *ReplenishUseCase) RunCycle(ctx context.Context) error {
	low, err := uc.lowStock.FindUnderThreshold(ctx)
	if err != nil {
		return fmt.Errorf("escaneo de stock: %w", err)
	}
	if len(low) == 0 {
		return nil
	}

	uc.log.Info().Int("productos", len(low)).Msg("productos bajo umbral de reorden")

	for _, s := range low {
		product, err := uc.productRepo.GetByID(s.ProductID)
		if err != nil {
			return fmt.Errorf("cargar producto %d: %w", s.ProductID, err)
		}
		if product == nil {
			// Borrado entre el escaneo y la reposición: omitir y seguir.
			uc.log.Warn().Int64("product_id", s.ProductID).Msg("producto desaparecido durante el ciclo, omitido")
			continue
		}

		order, _, err := uc.Replenish(ctx, product)
		if err != nil {
			return fmt.Errorf("reponer producto %d: %w", s.ProductID, err)
		}
		uc.log.Info().
			Int64("product_id", product.ID).
			Str("order_number", order.Number).
			Str("stock", s.Stock.String()).
			Int("threshold", s.Threshold).
			Msg("orden de reposición creada")
	}
	return nil
}
