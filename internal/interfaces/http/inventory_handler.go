package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ordenes-api/internal/application/dto"
	"github.com/jhoicas/ordenes-api/internal/application/inventory"
)

// InventoryHandler expone el libro de inventario: contabilización de asientos
// y consulta por producto.
type InventoryHandler struct {
	uc *inventory.MovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.MovementUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Create godoc
// @Summary      Contabilizar un movimiento de inventario
// @Description  Agrega un asiento al libro. El signo del efecto sobre el saldo lo decide
//               el módulo origen (module_code); quantity siempre es positiva.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "module_code, warehouse_id, product_id, quantity"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory-transactions [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	trx, err := h.uc.RegisterMovement(c.Context(), actor(c), inventory.MovementInput{
		ModuleID:     in.ModuleID,
		ModuleCode:   in.ModuleCode,
		ModuleNumber: in.ModuleNumber,
		MovementDate: in.MovementDate,
		WarehouseID:  in.WarehouseID,
		ProductID:    in.ProductID,
		Quantity:     in.Quantity,
	})
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewTransactionResponse(trx))
}

// ListByProduct godoc
// @Summary      Asientos vivos de un producto
// @Tags         inventory
// @Produce      json
// @Param        id      path   int     true   "ID del producto"
// @Param        from    query  string  false  "fecha inicial (RFC3339)"
// @Param        to      query  string  false  "fecha final (RFC3339)"
// @Param        limit   query  int     false  "máximo de asientos (default 100)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/products/{id}/transactions [get]
func (h *InventoryHandler) ListByProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	from, err := parseTimeQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido"})
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido"})
	}

	list, err := h.uc.ListByProduct(id, from, to, c.QueryInt("limit", 100), c.QueryInt("offset", 0))
	if err != nil {
		return mapError(c, err)
	}
	out := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, dto.NewTransactionResponse(t))
	}
	return c.JSON(out)
}

func parseTimeQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
