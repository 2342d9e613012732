package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/obratex/deposito-api/internal/domain"
	"github.com/obratex/deposito-api/internal/domain/entity"
	"github.com/obratex/deposito-api/internal/domain/repository"
)

// DirectoryUseCase altas y listados de galpones y proveedores.
type DirectoryUseCase struct {
	buildingRepo repository.BuildingRepository
	supplierRepo repository.SupplierRepository
}

// NewDirectoryUseCase construye el caso de uso.
func NewDirectoryUseCase(buildingRepo repository.BuildingRepository, supplierRepo repository.SupplierRepository) *DirectoryUseCase {
	return &DirectoryUseCase{buildingRepo: buildingRepo, supplierRepo: supplierRepo}
}

// CreateBuilding da de alta un galpón.
func (uc *DirectoryUseCase) CreateBuilding(ctx context.Context, name string) (*entity.Building, error) {
	if name == "" {
		return nil, fmt.Errorf("crear galpón: nombre obligatorio: %w", domain.ErrInvalidInput)
	}
	b := &entity.Building{ID: uuid.New().String(), Name: name, CreatedAt: time.Now()}
	if err := uc.buildingRepo.Create(b); err != nil {
		return nil, fmt.Errorf("crear galpón %q: %w", name, err)
	}
	return b, nil
}

// ListBuildings lista con paginación.
func (uc *DirectoryUseCase) ListBuildings(ctx context.Context, limit, offset int) ([]*entity.Building, error) {
	return uc.buildingRepo.List(limit, offset)
}

// CreateSupplier da de alta un proveedor.
func (uc *DirectoryUseCase) CreateSupplier(ctx context.Context, name, taxID string) (*entity.Supplier, error) {
	if name == "" {
		return nil, fmt.Errorf("crear proveedor: nombre obligatorio: %w", domain.ErrInvalidInput)
	}
	s := &entity.Supplier{ID: uuid.New().String(), Name: name, TaxID: taxID, CreatedAt: time.Now()}
	if err := uc.supplierRepo.Create(s); err != nil {
		return nil, fmt.Errorf("crear proveedor %q: %w", name, err)
	}
	return s, nil
}

// GetSupplier devuelve el proveedor o ErrNotFound.
func (uc *DirectoryUseCase) GetSupplier(ctx context.Context, id string) (*entity.Supplier, error) {
	s, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("proveedor %s: %w", id, domain.ErrNotFound)
	}
	return s, nil
}

// ListSuppliers lista con paginación.
func (uc *DirectoryUseCase) ListSuppliers(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	return uc.supplierRepo.List(limit, offset)
}
