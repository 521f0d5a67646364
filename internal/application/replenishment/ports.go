package replenishment

import (
	"context"

	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

// OrderTxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios de orden atados a esa tx. Garantiza que cabecera y línea de la
// orden generada se confirmen (o reviertan) juntas.
type OrderTxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.PurchaseOrderRepository,
		itemRepo repository.PurchaseOrderItemRepository,
	) error) error
}

// TotalsRecalculator recalcula los montos derivados de una cabecera de compras.
// Implementado por orders.PurchaseTotalsUseCase.
type TotalsRecalculator interface {
	RecalculateParent(ctx context.Context, orderID int64, actor string) error
}

// Mailer envía la notificación de orden creada. Mejor esfuerzo: un fallo de
// transporte jamás revierte la orden ya confirmada.
type Mailer interface {
	Send(to, subject, body string) error
}
