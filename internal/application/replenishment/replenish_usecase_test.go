package replenishment_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ordenes-api/internal/application/orders"
	"github.com/jhoicas/ordenes-api/internal/application/replenishment"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Generación de órdenes de reposición: siembra desde la última línea de compra
// del producto, defaults sin historial, montos recalculados antes de retornar.
// ──────────────────────────────────────────────────────────────────────────────

type replenishFixture struct {
	uc          *replenishment.ReplenishUseCase
	ledger      *stubLedger
	productRepo *memProductRepo
	orderRepo   *memPurchaseOrderRepo
	itemRepo    *memPurchaseOrderItemRepo
	mailer      *mailerSpy
}

func newReplenishFixture(t *testing.T, ledger *stubLedger) *replenishFixture {
	t.Helper()
	productRepo := newMemProductRepo()
	itemRepo := newMemPurchaseOrderItemRepo()
	orderRepo := newMemPurchaseOrderRepo(itemRepo)
	taxRepo := &memTaxRepo{taxes: map[int64]*entity.Tax{
		1: {ID: 1, Name: "IVA", Percentage: decimal.NewFromInt(10)},
		2: {ID: 2, Name: "IVA reducido", Percentage: decimal.NewFromInt(5)},
	}}
	totals := orders.NewPurchaseTotalsUseCase(orderRepo, itemRepo, taxRepo)
	mailer := &mailerSpy{}

	lowStock := replenishment.NewLowStockUseCase(ledger)
	uc := replenishment.NewReplenishUseCase(
		lowStock, productRepo, orderRepo,
		&memTxRunner{orderRepo: orderRepo, itemRepo: itemRepo},
		totals, mailer, "compras@acme.test", zerolog.Nop(),
	)
	return &replenishFixture{
		uc:          uc,
		ledger:      ledger,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		itemRepo:    itemRepo,
		mailer:      mailer,
	}
}

func (f *replenishFixture) seedProduct(t *testing.T, name string, price string, threshold int) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Name:      name,
		Number:    "P-" + name,
		UnitPrice: decimal.RequireFromString(price),
		Physical:  true,
		Threshold: threshold,
	}
	p.SetCreatedBy("tester", time.Now())
	require.NoError(t, f.productRepo.Create(p))
	return p
}

// Siembra una orden histórica con una línea para el producto, de la que un
// Replenish posterior debe heredar proveedor, impuesto, precio y cantidad.
func (f *replenishFixture) seedHistory(t *testing.T, productID, vendorID, taxID int64, price, qty string) {
	t.Helper()
	order := &entity.PurchaseOrder{
		Number:    "PO-historia",
		OrderDate: time.Now().Add(-30 * 24 * time.Hour),
		Status:    entity.OrderStatusConfirmed,
		VendorID:  vendorID,
		TaxID:     taxID,
	}
	order.SetCreatedBy("tester", time.Now())
	require.NoError(t, f.orderRepo.Create(order))

	item := &entity.PurchaseOrderItem{
		PurchaseOrderID: order.ID,
		ProductID:       productID,
		UnitPrice:       decimal.RequireFromString(price),
		Quantity:        decimal.RequireFromString(qty),
	}
	item.RecalculateTotal()
	item.SetCreatedBy("tester", time.Now())
	require.NoError(t, f.itemRepo.Create(item))
}

func TestReplenish_SinHistorialAplicaDefaults(t *testing.T) {
	f := newReplenishFixture(t, fixedLedger())
	product := f.seedProduct(t, "cemento", "5", 10)

	order, item, err := f.uc.Replenish(context.Background(), product)
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusDraft, order.Status)
	assert.True(t, strings.HasPrefix(order.Number, "PO-"))
	assert.Equal(t, replenishment.DefaultVendorID, order.VendorID, "sin historial el proveedor cae al default")
	assert.Equal(t, replenishment.DefaultTaxID, order.TaxID, "sin historial el impuesto cae al default")

	assert.Equal(t, order.ID, item.PurchaseOrderID)
	assert.Equal(t, product.ID, item.ProductID)
	assert.Equal(t, product.Name, item.Summary)
	assert.True(t, item.UnitPrice.Equal(decimal.NewFromInt(5)), "sin historial el precio sale del producto")
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(int64(replenishment.DefaultQuantity))))
	assert.True(t, item.Total.Equal(decimal.NewFromInt(100)))

	// Montos del padre ya recalculados: 100 + 10% de IVA.
	got, err := f.orderRepo.GetByID(order.ID)
	require.NoError(t, err)
	assert.True(t, got.BeforeTaxAmount.Equal(decimal.NewFromInt(100)))
	assert.True(t, got.TaxAmount.Equal(decimal.NewFromInt(10)))
	assert.True(t, got.AfterTaxAmount.Equal(decimal.NewFromInt(110)))

	assert.Equal(t, "system", got.CreatedByUserID, "las escrituras del motor se auditan como system")
}

func TestReplenish_ConHistorialHeredaDeLaUltimaLinea(t *testing.T) {
	f := newReplenishFixture(t, fixedLedger())
	product := f.seedProduct(t, "varilla", "9.99", 10)

	f.seedHistory(t, product.ID, 3, 2, "7.5", "15")

	order, item, err := f.uc.Replenish(context.Background(), product)
	require.NoError(t, err)

	assert.Equal(t, int64(3), order.VendorID, "el proveedor se hereda de la última orden")
	assert.Equal(t, int64(2), order.TaxID, "el impuesto se hereda de la última orden")
	assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("7.5")))
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(15)))
	assert.True(t, item.Total.Equal(decimal.RequireFromString("112.5")))
}

// Con varias líneas históricas manda la de ID más alto (la más reciente).
func TestReplenish_UsaLaLineaMasReciente(t *testing.T) {
	f := newReplenishFixture(t, fixedLedger())
	product := f.seedProduct(t, "arena", "1", 10)

	f.seedHistory(t, product.ID, 3, 1, "2", "10")
	f.seedHistory(t, product.ID, 8, 2, "4", "30")

	order, item, err := f.uc.Replenish(context.Background(), product)
	require.NoError(t, err)

	assert.Equal(t, int64(8), order.VendorID)
	assert.True(t, item.UnitPrice.Equal(decimal.NewFromInt(4)))
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(30)))
}

func TestReplenish_FalloDeCorreoNoRevierte(t *testing.T) {
	f := newReplenishFixture(t, fixedLedger())
	f.mailer.err = errors.New("smtp caído")
	product := f.seedProduct(t, "ladrillo", "2", 10)

	order, _, err := f.uc.Replenish(context.Background(), product)
	require.NoError(t, err, "un fallo de notificación no debe fallar la reposición")

	got, getErr := f.orderRepo.GetByID(order.ID)
	require.NoError(t, getErr)
	require.NotNil(t, got, "la orden queda confirmada aunque el correo falle")
}

func TestReplenish_NotificaResumenDeLaOrden(t *testing.T) {
	f := newReplenishFixture(t, fixedLedger())
	product := f.seedProduct(t, "grava", "2", 10)

	order, _, err := f.uc.Replenish(context.Background(), product)
	require.NoError(t, err)

	require.Len(t, f.mailer.sent, 1)
	body := f.mailer.sent[0]
	assert.Contains(t, body, "Number: "+order.Number)
	assert.Contains(t, body, "OrderStatus: "+entity.OrderStatusDraft)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo completo
// ──────────────────────────────────────────────────────────────────────────────

func TestRunCycle_CreaUnaOrdenPorProductoBajo(t *testing.T) {
	ledger := &stubLedger{}
	f := newReplenishFixture(t, ledger)
	p1 := f.seedProduct(t, "cemento", "5", 10)
	p2 := f.seedProduct(t, "varilla", "8", 4)

	ledger.summariesFn = func(context.Context) ([]repository.ProductStockSummary, error) {
		return []repository.ProductStockSummary{
			{ProductID: p1.ID, Threshold: 10, Stock: decimal.NewFromInt(3)},
			{ProductID: p2.ID, Threshold: 4, Stock: decimal.NewFromInt(4)},
		}, nil
	}

	require.NoError(t, f.uc.RunCycle(context.Background()))

	created, err := f.orderRepo.List(100, 0)
	require.NoError(t, err)
	assert.Len(t, created, 2, "cada producto bajo umbral genera su propia orden")
}

// Producto borrado entre el escaneo y la reposición: se omite y el ciclo sigue.
func TestRunCycle_ProductoDesaparecidoSeOmite(t *testing.T) {
	ledger := &stubLedger{}
	f := newReplenishFixture(t, ledger)
	vivo := f.seedProduct(t, "cemento", "5", 10)

	ledger.summariesFn = func(context.Context) ([]repository.ProductStockSummary, error) {
		return []repository.ProductStockSummary{
			{ProductID: 999, Threshold: 10, Stock: decimal.NewFromInt(1)},
			{ProductID: vivo.ID, Threshold: 10, Stock: decimal.NewFromInt(2)},
		}, nil
	}

	require.NoError(t, f.uc.RunCycle(context.Background()))

	created, err := f.orderRepo.List(100, 0)
	require.NoError(t, err)
	require.Len(t, created, 1, "el producto desaparecido se omite sin abortar el ciclo")
	items, err := f.itemRepo.ListByOrder(created[0].ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, vivo.ID, items[0].ProductID)
}

func TestRunCycle_SinProductosBajosNoEscribe(t *testing.T) {
	f := newReplenishFixture(t, fixedLedger())

	require.NoError(t, f.uc.RunCycle(context.Background()))

	created, err := f.orderRepo.List(100, 0)
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestRunCycle_ErrorDeEscaneoAborta(t *testing.T) {
	scanErr := errors.New("conexión perdida")
	ledger := &stubLedger{summariesFn: func(context.Context) ([]repository.ProductStockSummary, error) {
		return nil, scanErr
	}}
	f := newReplenishFixture(t, ledger)

	err := f.uc.RunCycle(context.Background())
	assert.ErrorIs(t, err, scanErr)
}
