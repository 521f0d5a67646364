package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ordenes-api/internal/application/dto"
	"github.com/jhoicas/ordenes-api/internal/application/replenishment"
)

// ReplenishmentHandler expone el estado del motor de reposición y el disparo manual.
type ReplenishmentHandler struct {
	lowStock  *replenishment.LowStockUseCase
	scheduler *replenishment.Scheduler
}

// NewReplenishmentHandler construye el handler.
func NewReplenishmentHandler(lowStock *replenishment.LowStockUseCase, scheduler *replenishment.Scheduler) *ReplenishmentHandler {
	return &ReplenishmentHandler{lowStock: lowStock, scheduler: scheduler}
}

// LowStock godoc
// @Summary      Productos bajo umbral de reorden
// @Description  Suma el stock contabilizado del libro por producto físico y devuelve
//               los que quedaron en o por debajo de su umbral.
// @Tags         replenishment
// @Produce      json
// @Success      200  {array}  dto.LowStockDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/replenishment/low-stock [get]
func (h *ReplenishmentHandler) LowStock(c *fiber.Ctx) error {
	low, err := h.lowStock.FindUnderThreshold(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.LowStockDTO, 0, len(low))
	for _, s := range low {
		out = append(out, dto.LowStockDTO{ProductID: s.ProductID, Threshold: s.Threshold, Stock: s.Stock})
	}
	return c.JSON(fiber.Map{"total": len(out), "products": out})
}

// RunNow godoc
// @Summary      Disparar un ciclo de reposición manualmente
// @Description  Ejecuta el mismo ciclo que el planificador, bajo la misma guarda de
//               reentrada: si ya hay un ciclo en curso responde 409.
// @Tags         replenishment
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/replenishment/run [post]
func (h *ReplenishmentHandler) RunNow(c *fiber.Ctx) error {
	ran, err := h.scheduler.TryRunOnce(c.Context())
	if !ran {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CYCLE_IN_PROGRESS", Message: "ya hay un ciclo de reposición en curso"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "ciclo de reposición ejecutado"})
}
