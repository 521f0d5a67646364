package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ordenes-api/internal/application/dto"
	"github.com/jhoicas/ordenes-api/internal/application/orders"
)

// PurchaseOrderItemHandler maneja las líneas de orden de compra. Cada mutación
// dispara el recálculo síncrono de los montos de la cabecera.
type PurchaseOrderItemHandler struct {
	uc *orders.PurchaseItemUseCase
}

// NewPurchaseOrderItemHandler construye el handler.
func NewPurchaseOrderItemHandler(uc *orders.PurchaseItemUseCase) *PurchaseOrderItemHandler {
	return &PurchaseOrderItemHandler{uc: uc}
}

// Create godoc
// @Summary      Agregar línea a una orden de compra
// @Tags         purchase-order-items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PurchaseOrderItemRequest  true  "purchase_order_id, product_id, unit_price, quantity"
// @Success      201   {object}  dto.PurchaseOrderItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchase-order-items [post]
func (h *PurchaseOrderItemHandler) Create(c *fiber.Ctx) error {
	var in dto.PurchaseOrderItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.AddItem(c.Context(), actor(c), orders.PurchaseItemInput{
		PurchaseOrderID: in.PurchaseOrderID,
		ProductID:       in.ProductID,
		Summary:         in.Summary,
		UnitPrice:       in.UnitPrice,
		Quantity:        in.Quantity,
	})
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewPurchaseOrderItemResponse(item))
}

// Update godoc
// @Summary      Actualizar línea de orden de compra
// @Tags         purchase-order-items
// @Accept       json
// @Produce      json
// @Param        id    path  int                           true  "ID de la línea"
// @Param        body  body  dto.PurchaseOrderItemRequest  true  "summary, unit_price, quantity"
// @Success      200   {object}  dto.PurchaseOrderItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchase-order-items/{id} [put]
func (h *PurchaseOrderItemHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.PurchaseOrderItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.UpdateItem(c.Context(), actor(c), id, orders.PurchaseItemInput{
		Summary:   in.Summary,
		UnitPrice: in.UnitPrice,
		Quantity:  in.Quantity,
	})
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(dto.NewPurchaseOrderItemResponse(item))
}

// Delete godoc
// @Summary      Eliminar línea de orden de compra (borrado lógico)
// @Tags         purchase-order-items
// @Param        id  path  int  true  "ID de la línea"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-order-items/{id} [delete]
func (h *PurchaseOrderItemHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.DeleteItem(c.Context(), actor(c), id); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListByOrder godoc
// @Summary      Líneas vivas de una orden de compra
// @Tags         purchase-order-items
// @Produce      json
// @Param        id  path  int  true  "ID de la orden"
// @Success      200  {array}  dto.PurchaseOrderItemResponse
// @Router       /api/purchase-orders/{id}/items [get]
func (h *PurchaseOrderItemHandler) ListByOrder(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	items, err := h.uc.ListByOrder(id)
	if err != nil {
		return mapError(c, err)
	}
	out := make([]dto.PurchaseOrderItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, dto.NewPurchaseOrderItemResponse(i))
	}
	return c.JSON(out)
}
