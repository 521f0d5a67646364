package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ordenes-api/internal/application/dto"
	"github.com/jhoicas/ordenes-api/internal/application/orders"
	"github.com/jhoicas/ordenes-api/internal/domain"
)

// PurchaseOrderHandler maneja las peticiones HTTP de cabeceras de orden de compra.
type PurchaseOrderHandler struct {
	uc *orders.PurchaseOrderUseCase
}

// NewPurchaseOrderHandler construye el handler.
func NewPurchaseOrderHandler(uc *orders.PurchaseOrderUseCase) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{uc: uc}
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// actor identifica al autor de la mutación para la auditoría. Sin capa de
// autenticación propia (la provee la aplicación contenedora) se toma de la
// cabecera X-User-Id.
func actor(c *fiber.Ctx) string {
	if v := c.Get("X-User-Id"); v != "" {
		return v
	}
	return "anonymous"
}

func mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Create godoc
// @Summary      Crear orden de compra
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseOrderRequest  true  "vendor_id, tax_id, order_date"
// @Success      201   {object}  dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders [post]
func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.Create(c.Context(), actor(c), orders.PurchaseOrderInput{
		OrderDate: in.OrderDate,
		VendorID:  in.VendorID,
		TaxID:     in.TaxID,
	})
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewPurchaseOrderResponse(order))
}

// GetByID godoc
// @Summary      Detalle de orden de compra
// @Tags         purchase-orders
// @Produce      json
// @Param        id   path      int  true  "ID de la orden"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id} [get]
func (h *PurchaseOrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	order, err := h.uc.GetByID(id)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(dto.NewPurchaseOrderResponse(order))
}

// List godoc
// @Summary      Listar órdenes de compra
// @Tags         purchase-orders
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 50)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.PurchaseOrderResponse
// @Router       /api/purchase-orders [get]
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return mapError(c, err)
	}
	out := make([]dto.PurchaseOrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.NewPurchaseOrderResponse(o))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar orden de compra
// @Description  Recalcula los montos derivados: un cambio de impuesto debe reflejarse en la misma escritura.
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        id    path  int                             true  "ID de la orden"
// @Param        body  body  dto.UpdatePurchaseOrderRequest  true  "campos de cabecera"
// @Success      200   {object}  dto.PurchaseOrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id} [put]
func (h *PurchaseOrderHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.UpdatePurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.uc.Update(c.Context(), actor(c), id, orders.PurchaseOrderInput{
		OrderDate: in.OrderDate,
		Status:    in.Status,
		VendorID:  in.VendorID,
		TaxID:     in.TaxID,
	})
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(dto.NewPurchaseOrderResponse(order))
}

// Delete godoc
// @Summary      Borrado lógico de orden de compra
// @Tags         purchase-orders
// @Param        id  path  int  true  "ID de la orden"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id} [delete]
func (h *PurchaseOrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.Context(), actor(c), id); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
