package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ordenes-api/internal/application/dto"
	"github.com/jhoicas/ordenes-api/internal/application/orders"
)

// SalesOrderHandler maneja órdenes de venta y sus líneas; espejo del lado compras.
type SalesOrderHandler struct {
	orderUC *orders.SalesOrderUseCase
	itemUC  *orders.SalesItemUseCase
}

// NewSalesOrderHandler construye el handler.
func NewSalesOrderHandler(orderUC *orders.SalesOrderUseCase, itemUC *orders.SalesItemUseCase) *SalesOrderHandler {
	return &SalesOrderHandler{orderUC: orderUC, itemUC: itemUC}
}

// Create godoc
// @Summary      Crear orden de venta
// @Tags         sales-orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSalesOrderRequest  true  "customer_id, tax_id, order_date"
// @Success      201   {object}  dto.SalesOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales-orders [post]
func (h *SalesOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalesOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.orderUC.Create(c.Context(), actor(c), orders.SalesOrderInput{
		OrderDate:  in.OrderDate,
		CustomerID: in.CustomerID,
		TaxID:      in.TaxID,
	})
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewSalesOrderResponse(order))
}

// GetByID godoc
// @Summary      Detalle de orden de venta
// @Tags         sales-orders
// @Produce      json
// @Param        id  path  int  true  "ID de la orden"
// @Success      200  {object}  dto.SalesOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales-orders/{id} [get]
func (h *SalesOrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	order, err := h.orderUC.GetByID(id)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(dto.NewSalesOrderResponse(order))
}

// Update godoc
// @Summary      Actualizar orden de venta
// @Tags         sales-orders
// @Accept       json
// @Produce      json
// @Param        id    path  int                          true  "ID de la orden"
// @Param        body  body  dto.UpdateSalesOrderRequest  true  "campos de cabecera"
// @Success      200   {object}  dto.SalesOrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales-orders/{id} [put]
func (h *SalesOrderHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.UpdateSalesOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.orderUC.Update(c.Context(), actor(c), id, orders.SalesOrderInput{
		OrderDate:  in.OrderDate,
		Status:     in.Status,
		CustomerID: in.CustomerID,
		TaxID:      in.TaxID,
	})
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(dto.NewSalesOrderResponse(order))
}

// Delete godoc
// @Summary      Borrado lógico de orden de venta
// @Tags         sales-orders
// @Param        id  path  int  true  "ID de la orden"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales-orders/{id} [delete]
func (h *SalesOrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.orderUC.Delete(c.Context(), actor(c), id); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateItem godoc
// @Summary      Agregar línea a una orden de venta
// @Tags         sales-order-items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SalesOrderItemRequest  true  "sales_order_id, product_id, unit_price, quantity"
// @Success      201   {object}  dto.SalesOrderItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales-order-items [post]
func (h *SalesOrderHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.SalesOrderItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.itemUC.AddItem(c.Context(), actor(c), orders.SalesItemInput{
		SalesOrderID: in.SalesOrderID,
		ProductID:    in.ProductID,
		Summary:      in.Summary,
		UnitPrice:    in.UnitPrice,
		Quantity:     in.Quantity,
	})
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewSalesOrderItemResponse(item))
}

// UpdateItem godoc
// @Summary      Actualizar línea de orden de venta
// @Tags         sales-order-items
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID de la línea"
// @Param        body  body  dto.SalesOrderItemRequest  true  "summary, unit_price, quantity"
// @Success      200   {object}  dto.SalesOrderItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales-order-items/{id} [put]
func (h *SalesOrderHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.SalesOrderItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.itemUC.UpdateItem(c.Context(), actor(c), id, orders.SalesItemInput{
		Summary:   in.Summary,
		UnitPrice: in.UnitPrice,
		Quantity:  in.Quantity,
	})
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(dto.NewSalesOrderItemResponse(item))
}

// DeleteItem godoc
// @Summary      Eliminar línea de orden de venta (borrado lógico)
// @Tags         sales-order-items
// @Param        id  path  int  true  "ID de la línea"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales-order-items/{id} [delete]
func (h *SalesOrderHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.itemUC.DeleteItem(c.Context(), actor(c), id); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListItems godoc
// @Summary      Líneas vivas de una orden de venta
// @Tags         sales-order-items
// @Produce      json
// @Param        id  path  int  true  "ID de la orden"
// @Success      200  {array}  dto.SalesOrderItemResponse
// @Router       /api/sales-orders/{id}/items [get]
func (h *SalesOrderHandler) ListItems(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	items, err := h.itemUC.ListByOrder(id)
	if err != nil {
		return mapError(c, err)
	}
	out := make([]dto.SalesOrderItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, dto.NewSalesOrderItemResponse(i))
	}
	return c.JSON(out)
}
