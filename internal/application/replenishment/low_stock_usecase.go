package replenishment

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

// LowStockUseCase detecta productos bajo su punto de reorden. Lectura pura:
// un escaneo puede devolver cero resultados y el ciclo termina sin efectos.
type LowStockUseCase struct {
	trxRepo repository.InventoryTransactionRepository
}

// NewLowStockUseCase construye el caso de uso de detección.
func NewLowStockUseCase(trxRepo repository.InventoryTransactionRepository) *LowStockUseCase {
	return &LowStockUseCase{trxRepo: trxRepo}
}

// FindUnderThreshold suma el stock contabilizado por producto físico y retiene
// los grupos cuyo saldo quedó en o por debajo de su umbral de reorden.
func (uc *LowStockUseCase) FindUnderThreshold(ctx context.Context) ([]repository.ProductStockSummary, error) {
	summaries, err := uc.trxRepo.SumStockByProduct(ctx)
	if err != nil {
		return nil, err
	}

	var low []repository.ProductStockSummary
	for _, s := range summaries {
		if s.Stock.LessThanOrEqual(decimal.NewFromInt(int64(s.Threshold))) {
			low = append(low, s)
		}
	}
	return low, nil
}
