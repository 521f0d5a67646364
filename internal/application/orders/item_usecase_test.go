package orders_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ordenes-api/internal/application/orders"
	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de líneas de compra: toda mutación (alta, cambio, baja) deja la
// cabecera recalculada en la misma operación.
// ──────────────────────────────────────────────────────────────────────────────

func buildPurchaseItemUC(t *testing.T) (*orders.PurchaseItemUseCase, *memPurchaseOrderRepo, *memPurchaseOrderItemRepo) {
	t.Helper()
	itemRepo := newMemPurchaseOrderItemRepo()
	orderRepo := newMemPurchaseOrderRepo(itemRepo)
	totals := orders.NewPurchaseTotalsUseCase(orderRepo, itemRepo, ivaRepo("10"))
	return orders.NewPurchaseItemUseCase(itemRepo, orderRepo, totals), orderRepo, itemRepo
}

func TestAddItem_RecalculaCabecera(t *testing.T) {
	uc, orderRepo, _ := buildPurchaseItemUC(t)
	order := seedPurchaseOrder(t, orderRepo, 1)

	item, err := uc.AddItem(context.Background(), testActor, orders.PurchaseItemInput{
		PurchaseOrderID: order.ID,
		ProductID:       7,
		Summary:         "tornillos",
		UnitPrice:       decimal.NewFromInt(5),
		Quantity:        decimal.NewFromInt(20),
	})
	require.NoError(t, err)
	assert.True(t, item.Total.Equal(decimal.NewFromInt(100)),
		"el total de línea debe derivarse de precio × cantidad")

	got, err := orderRepo.GetByID(order.ID)
	require.NoError(t, err)
	assert.True(t, got.BeforeTaxAmount.Equal(decimal.NewFromInt(100)))
	assert.True(t, got.TaxAmount.Equal(decimal.NewFromInt(10)))
	assert.True(t, got.AfterTaxAmount.Equal(decimal.NewFromInt(110)))
}

func TestAddItem_OrdenInexistente(t *testing.T) {
	uc, _, _ := buildPurchaseItemUC(t)

	_, err := uc.AddItem(context.Background(), testActor, orders.PurchaseItemInput{
		PurchaseOrderID: 99,
		ProductID:       1,
		UnitPrice:       decimal.NewFromInt(5),
		Quantity:        decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddItem_CantidadInvalida(t *testing.T) {
	uc, orderRepo, _ := buildPurchaseItemUC(t)
	order := seedPurchaseOrder(t, orderRepo, 1)

	_, err := uc.AddItem(context.Background(), testActor, orders.PurchaseItemInput{
		PurchaseOrderID: order.ID,
		ProductID:       1,
		UnitPrice:       decimal.NewFromInt(5),
		Quantity:        decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero o negativa debe rechazarse")
}

// Un precio negativo produciría totales y montos de cabecera negativos.
func TestAddItem_PrecioNegativo(t *testing.T) {
	uc, orderRepo, _ := buildPurchaseItemUC(t)
	order := seedPurchaseOrder(t, orderRepo, 1)

	_, err := uc.AddItem(context.Background(), testActor, orders.PurchaseItemInput{
		PurchaseOrderID: order.ID,
		ProductID:       1,
		UnitPrice:       decimal.NewFromInt(-5),
		Quantity:        decimal.NewFromInt(2),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio unitario negativo debe rechazarse")
}

func TestUpdateItem_PrecioNegativo(t *testing.T) {
	uc, orderRepo, itemRepo := buildPurchaseItemUC(t)
	order := seedPurchaseOrder(t, orderRepo, 1)
	item := seedPurchaseItem(t, itemRepo, order.ID, "10", "2")

	_, err := uc.UpdateItem(context.Background(), testActor, item.ID, orders.PurchaseItemInput{
		Summary:   item.Summary,
		UnitPrice: decimal.NewFromInt(-1),
		Quantity:  decimal.NewFromInt(2),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio unitario negativo debe rechazarse")
}

// La guarda de precio es simétrica en el agregado de ventas.
func TestSalesAddItem_PrecioNegativo(t *testing.T) {
	orderRepo := newMemSalesOrderRepo()
	itemRepo := newMemSalesOrderItemRepo()
	totals := orders.NewSalesTotalsUseCase(orderRepo, itemRepo, ivaRepo("19"))
	uc := orders.NewSalesItemUseCase(itemRepo, orderRepo, totals)

	order := &entity.SalesOrder{Number: "SO-test0002", Status: entity.OrderStatusDraft, CustomerID: 1, TaxID: 1}
	order.SetCreatedBy(testActor, time.Now())
	require.NoError(t, orderRepo.Create(order))

	_, err := uc.AddItem(context.Background(), testActor, orders.SalesItemInput{
		SalesOrderID: order.ID,
		ProductID:    1,
		UnitPrice:    decimal.NewFromInt(-3),
		Quantity:     decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio unitario negativo debe rechazarse")
}

func TestUpdateItem_RecalculaCabecera(t *testing.T) {
	uc, orderRepo, _ := buildPurchaseItemUC(t)
	order := seedPurchaseOrder(t, orderRepo, 1)

	item, err := uc.AddItem(context.Background(), testActor, orders.PurchaseItemInput{
		PurchaseOrderID: order.ID,
		ProductID:       1,
		UnitPrice:       decimal.NewFromInt(10),
		Quantity:        decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	updated, err := uc.UpdateItem(context.Background(), testActor, item.ID, orders.PurchaseItemInput{
		Summary:   "ajustado",
		UnitPrice: decimal.NewFromInt(30),
		Quantity:  decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	assert.True(t, updated.Total.Equal(decimal.NewFromInt(150)))

	got, err := orderRepo.GetByID(order.ID)
	require.NoError(t, err)
	assert.True(t, got.BeforeTaxAmount.Equal(decimal.NewFromInt(150)),
		"la cabecera debe reflejar el nuevo total de la línea")
}

func TestDeleteItem_ExcluyeLineaDeLosMontos(t *testing.T) {
	uc, orderRepo, _ := buildPurchaseItemUC(t)
	order := seedPurchaseOrder(t, orderRepo, 1)

	ctx := context.Background()
	keep, err := uc.AddItem(ctx, testActor, orders.PurchaseItemInput{
		PurchaseOrderID: order.ID,
		ProductID:       1,
		UnitPrice:       decimal.NewFromInt(40),
		Quantity:        decimal.NewFromInt(1),
	})
	require.NoError(t, err)
	drop, err := uc.AddItem(ctx, testActor, orders.PurchaseItemInput{
		PurchaseOrderID: order.ID,
		ProductID:       2,
		UnitPrice:       decimal.NewFromInt(60),
		Quantity:        decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteItem(ctx, testActor, drop.ID))

	got, err := orderRepo.GetByID(order.ID)
	require.NoError(t, err)
	assert.True(t, got.BeforeTaxAmount.Equal(keep.Total),
		"la línea borrada no debe contar en los montos, obtuvo %s", got.BeforeTaxAmount)

	vivas, err := uc.ListByOrder(order.ID)
	require.NoError(t, err)
	require.Len(t, vivas, 1)
	assert.Equal(t, keep.ID, vivas[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cabeceras manuales
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateOrder_BorradorConMontosEnCero(t *testing.T) {
	itemRepo := newMemPurchaseOrderItemRepo()
	orderRepo := newMemPurchaseOrderRepo(itemRepo)
	totals := orders.NewPurchaseTotalsUseCase(orderRepo, itemRepo, ivaRepo("19"))
	uc := orders.NewPurchaseOrderUseCase(orderRepo, totals)

	order, err := uc.Create(context.Background(), testActor, orders.PurchaseOrderInput{VendorID: 3, TaxID: 1})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusDraft, order.Status)
	assert.True(t, strings.HasPrefix(order.Number, "PO-"), "el número debe llevar el prefijo PO-")
	assert.Len(t, order.Number, len("PO-")+8)
	assert.True(t, order.BeforeTaxAmount.IsZero())
	assert.True(t, order.AfterTaxAmount.IsZero())
	assert.Equal(t, testActor, order.CreatedByUserID)
}

func TestUpdateOrder_CambioDeImpuestoRecalcula(t *testing.T) {
	itemRepo := newMemPurchaseOrderItemRepo()
	orderRepo := newMemPurchaseOrderRepo(itemRepo)
	totals := orders.NewPurchaseTotalsUseCase(orderRepo, itemRepo, ivaRepo("10"))
	uc := orders.NewPurchaseOrderUseCase(orderRepo, totals)

	ctx := context.Background()
	order, err := uc.Create(ctx, testActor, orders.PurchaseOrderInput{VendorID: 3})
	require.NoError(t, err)
	seedPurchaseItem(t, itemRepo, order.ID, "100", "1")

	// Referenciar el impuesto del 10% debe reflejarse en los montos.
	updated, err := uc.Update(ctx, testActor, order.ID, orders.PurchaseOrderInput{TaxID: 1})
	require.NoError(t, err)
	assert.True(t, updated.TaxAmount.Equal(decimal.NewFromInt(10)))
	assert.True(t, updated.AfterTaxAmount.Equal(decimal.NewFromInt(110)))

	// Quitar la referencia vuelve el impuesto a cero.
	updated, err = uc.Update(ctx, testActor, order.ID, orders.PurchaseOrderInput{TaxID: 0})
	require.NoError(t, err)
	assert.True(t, updated.TaxAmount.IsZero())
	assert.True(t, updated.AfterTaxAmount.Equal(decimal.NewFromInt(100)))
}

func TestNewOrderNumber_Formato(t *testing.T) {
	n1 := orders.NewOrderNumber()
	n2 := orders.NewOrderNumber()

	assert.True(t, strings.HasPrefix(n1, "PO-"))
	assert.Len(t, n1, 11)
	assert.NotEqual(t, n1, n2, "dos números generados deben diferir")
}
