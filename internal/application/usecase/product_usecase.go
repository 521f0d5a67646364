package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ordenes-api/internal/application/dto"
	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos del catálogo. El stock no se edita aquí:
// se deriva del libro de inventario.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create persiste un producto nuevo.
func (uc *ProductUseCase) Create(actor string, in dto.ProductRequest) (*entity.Product, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		Name:        in.Name,
		Number:      in.Number,
		UnitPrice:   in.UnitPrice,
		Physical:    in.Physical,
		Threshold:   in.Threshold,
		UnitMeasure: in.UnitMeasure,
		RowGUID:     uuid.New(),
	}
	product.SetCreatedBy(actor, now)
	product.SetUpdatedBy(actor, now)
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID devuelve el producto vivo, o ErrNotFound.
func (uc *ProductUseCase) GetByID(id int64) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// Update aplica los cambios del catálogo.
func (uc *ProductUseCase) Update(actor string, id int64, in dto.ProductRequest) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Name
	product.Number = in.Number
	product.UnitPrice = in.UnitPrice
	product.Physical = in.Physical
	product.Threshold = in.Threshold
	product.UnitMeasure = in.UnitMeasure
	product.SetUpdatedBy(actor, time.Now())
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// List productos vivos con paginación.
func (uc *ProductUseCase) List(limit, offset int) ([]*entity.Product, error) {
	return uc.productRepo.List(limit, offset)
}

// Delete baja lógica del producto.
func (uc *ProductUseCase) Delete(actor string, id int64) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.SoftDelete(id, actor)
}
