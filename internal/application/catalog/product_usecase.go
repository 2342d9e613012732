package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/obratex/deposito-api/internal/domain"
	"github.com/obratex/deposito-api/internal/domain/entity"
	"github.com/obratex/deposito-api/internal/domain/repository"
)

// ProductUseCase CRUD mínimo del catálogo de productos: el directorio que consumen el
// motor de movimientos, el ciclo de listas y el planificador de separación.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, supplierRepo repository.SupplierRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, supplierRepo: supplierRepo}
}

// CreateProductInput datos para alta de producto.
type CreateProductInput struct {
	Name        string
	SupplierID  string
	UnitsPerBox decimal.Decimal
}

// Create da de alta un producto. unitsPerBox debe ser > 0: sin un factor válido ninguna
// conversión caja→unidad es posible después.
func (uc *ProductUseCase) Create(ctx context.Context, in CreateProductInput) (*entity.Product, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("crear producto: nombre obligatorio: %w", domain.ErrInvalidInput)
	}
	if !in.UnitsPerBox.IsPositive() {
		return nil, fmt.Errorf("crear producto %q: unitsPerBox debe ser > 0: %w", in.Name, domain.ErrInvalidInput)
	}
	if in.SupplierID != "" {
		s, err := uc.supplierRepo.GetByID(in.SupplierID)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, fmt.Errorf("crear producto %q: proveedor %s: %w", in.Name, in.SupplierID, domain.ErrNotFound)
		}
	}

	now := time.Now()
	p := &entity.Product{
		ID:              uuid.New().String(),
		SupplierID:      in.SupplierID,
		Name:            in.Name,
		UnitsPerBox:     in.UnitsPerBox,
		DepositQuantity: decimal.Zero,
		FloorQuantity:   decimal.Zero,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.productRepo.Create(p); err != nil {
		return nil, fmt.Errorf("crear producto %q: %w", in.Name, err)
	}
	return p, nil
}

// GetByID devuelve el producto o ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

// List lista con paginación.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	return uc.productRepo.List(limit, offset)
}
