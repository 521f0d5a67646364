package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryTransaction asiento del libro de inventario (append-only).
// Movement es la cantidad movida (siempre positiva); Stock es el efecto
// firmado del asiento sobre el saldo (+entrada / -salida), de modo que el
// saldo de un producto es la suma de su columna stock. Los campos Module*
// identifican el documento origen (orden de compra, orden de venta, ajuste,
// traslado, devolución).
type InventoryTransaction struct {
	ID           int64
	ModuleID     int64
	ModuleName   string
	ModuleCode   string
	ModuleNumber string
	MovementDate time.Time
	Status       int
	Number       string
	WarehouseID  int64
	ProductID    int64
	Movement     decimal.Decimal
	Stock        decimal.Decimal
	RowGUID      uuid.UUID
	Audit
}

// Módulos origen de asientos y el signo con el que contabilizan.
const (
	ModuleCodePO          = "PO"     // recepción de compra: entrada
	ModuleCodeSO          = "SO"     // despacho de venta: salida
	ModuleCodePOReturn    = "PORET"  // devolución a proveedor: salida
	ModuleCodeSOReturn    = "SORET"  // devolución de cliente: entrada
	ModuleCodeAdjustPlus  = "ADJ+"   // ajuste positivo
	ModuleCodeAdjustMinus = "ADJ-"   // ajuste negativo
	ModuleCodeTransferIn  = "TRFIN"  // traslado entrante
	ModuleCodeTransferOut = "TRFOUT" // traslado saliente
)

// StockDirection devuelve el signo con el que el módulo contabiliza en el
// libro: +1 entrada, -1 salida, 0 para un código desconocido.
func StockDirection(moduleCode string) int {
	switch moduleCode {
	case ModuleCodePO, ModuleCodeSOReturn, ModuleCodeAdjustPlus, ModuleCodeTransferIn:
		return 1
	case ModuleCodeSO, ModuleCodePOReturn, ModuleCodeAdjustMinus, ModuleCodeTransferOut:
		return -1
	default:
		return 0
	}
}
