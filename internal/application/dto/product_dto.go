package dto

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
)

// ProductRequest alta o actualización de producto.
type ProductRequest struct {
	Name        string          `json:"name"`
	Number      string          `json:"number"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Physical    bool            `json:"physical"`
	Threshold   int             `json:"threshold"`
	UnitMeasure string          `json:"unit_measure"`
}

// ProductResponse producto del catálogo.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Number      string          `json:"number"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Physical    bool            `json:"physical"`
	Threshold   int             `json:"threshold"`
	UnitMeasure string          `json:"unit_measure"`
}

// NewProductResponse mapea la entidad a la respuesta HTTP.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Number:      p.Number,
		UnitPrice:   p.UnitPrice,
		Physical:    p.Physical,
		Threshold:   p.Threshold,
		UnitMeasure: p.UnitMeasure,
	}
}
