package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ordenes-api/internal/application/inventory"
	"github.com/jhoicas/ordenes-api/internal/application/orders"
	"github.com/jhoicas/ordenes-api/internal/application/replenishment"
	"github.com/jhoicas/ordenes-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC       *usecase.ProductUseCase
	MovementUC      *inventory.MovementUseCase
	PurchaseOrderUC *orders.PurchaseOrderUseCase
	PurchaseItemUC  *orders.PurchaseItemUseCase
	SalesOrderUC    *orders.SalesOrderUseCase
	SalesItemUC     *orders.SalesItemUseCase
	LowStockUC      *replenishment.LowStockUseCase
	Scheduler       *replenishment.Scheduler
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Inventory ledger
	inventoryHandler := NewInventoryHandler(deps.MovementUC)
	products.Get("/:id/transactions", inventoryHandler.ListByProduct)
	api.Post("/inventory-transactions", inventoryHandler.Create)

	// Purchase orders
	po := api.Group("/purchase-orders")
	poHandler := NewPurchaseOrderHandler(deps.PurchaseOrderUC)
	poItemHandler := NewPurchaseOrderItemHandler(deps.PurchaseItemUC)
	po.Post("/", poHandler.Create)
	po.Get("/", poHandler.List)
	po.Get("/:id", poHandler.GetByID)
	po.Put("/:id", poHandler.Update)
	po.Delete("/:id", poHandler.Delete)
	po.Get("/:id/items", poItemHandler.ListByOrder)

	poItems := api.Group("/purchase-order-items")
	poItems.Post("/", poItemHandler.Create)
	poItems.Put("/:id", poItemHandler.Update)
	poItems.Delete("/:id", poItemHandler.Delete)

	// Sales orders
	so := api.Group("/sales-orders")
	soHandler := NewSalesOrderHandler(deps.SalesOrderUC, deps.SalesItemUC)
	so.Post("/", soHandler.Create)
	so.Get("/:id", soHandler.GetByID)
	so.Put("/:id", soHandler.Update)
	so.Delete("/:id", soHandler.Delete)
	so.Get("/:id/items", soHandler.ListItems)

	soItems := api.Group("/sales-order-items")
	soItems.Post("/", soHandler.CreateItem)
	soItems.Put("/:id", soHandler.UpdateItem)
	soItems.Delete("/:id", soHandler.DeleteItem)

	// Replenishment
	rep := api.Group("/replenishment")
	repHandler := NewReplenishmentHandler(deps.LowStockUC, deps.Scheduler)
	rep.Get("/low-stock", repHandler.LowStock)
	rep.Post("/run", repHandler.RunNow)
}
