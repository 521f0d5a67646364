package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

// MovementInput entrada para contabilizar un asiento en el libro de inventario.
// Quantity siempre es positiva; el signo con el que asienta lo decide el módulo
// origen (ModuleCode). El documento origen se identifica con los campos Module*.
type MovementInput struct {
	ModuleID     int64
	ModuleCode   string
	ModuleNumber string
	MovementDate time.Time
	WarehouseID  int64
	ProductID    int64
	Quantity     decimal.Decimal
}

// MovementUseCase contabiliza movimientos en el libro de inventario. El libro
// es append-only: un asiento nunca se edita, las correcciones son asientos de
// ajuste nuevos.
type MovementUseCase struct {
	trxRepo       repository.InventoryTransactionRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewMovementUseCase construye el caso de uso de movimientos.
func NewMovementUseCase(
	trxRepo repository.InventoryTransactionRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *MovementUseCase {
	return &MovementUseCase{
		trxRepo:       trxRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// moduleNames rótulo legible por código de módulo.
var moduleNames = map[string]string{
	entity.ModuleCodePO:          "PurchaseOrder",
	entity.ModuleCodeSO:          "SalesOrder",
	entity.ModuleCodePOReturn:    "PurchaseReturn",
	entity.ModuleCodeSOReturn:    "SalesReturn",
	entity.ModuleCodeAdjustPlus:  "AdjustmentPlus",
	entity.ModuleCodeAdjustMinus: "AdjustmentMinus",
	entity.ModuleCodeTransferIn:  "TransferIn",
	entity.ModuleCodeTransferOut: "TransferOut",
}

// RegisterMovement valida producto, bodega y módulo, deriva el efecto firmado
// sobre el saldo y agrega el asiento al libro.
func (uc *MovementUseCase) RegisterMovement(ctx context.Context, actor string, in MovementInput) (*entity.InventoryTransaction, error) {
	if in.ProductID == 0 || in.WarehouseID == 0 || in.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	direction := entity.StockDirection(in.ModuleCode)
	if direction == 0 {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !product.Physical {
		// Los servicios no llevan stock.
		return nil, domain.ErrInvalidInput
	}

	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	movementDate := in.MovementDate
	if movementDate.IsZero() {
		movementDate = now
	}

	trx := &entity.InventoryTransaction{
		ModuleID:     in.ModuleID,
		ModuleName:   moduleNames[in.ModuleCode],
		ModuleCode:   in.ModuleCode,
		ModuleNumber: in.ModuleNumber,
		MovementDate: movementDate,
		Status:       1,
		Number:       "IVT-" + uuid.New().String()[:8],
		WarehouseID:  in.WarehouseID,
		ProductID:    in.ProductID,
		Movement:     in.Quantity,
		Stock:        in.Quantity.Mul(decimal.NewFromInt(int64(direction))),
		RowGUID:      uuid.New(),
	}
	trx.SetCreatedBy(actor, now)
	trx.SetUpdatedBy(actor, now)

	if err := uc.trxRepo.Create(trx); err != nil {
		return nil, err
	}
	return trx, nil
}

// ListByProduct devuelve los asientos vivos de un producto, más recientes
// primero, con filtro opcional de fechas.
func (uc *MovementUseCase) ListByProduct(productID int64, from, to *time.Time, limit, offset int) ([]*entity.InventoryTransaction, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return uc.trxRepo.ListByProduct(productID, from, to, limit, offset)
}
