package repository

import "github.com/obratex/deposito-api/internal/domain/entity"

// SupplierRepository puerto de persistencia de proveedores.
type SupplierRepository interface {
	GetByID(id string) (*entity.Supplier, error)
	Create(s *entity.Supplier) error
	List(limit, offset int) ([]*entity.Supplier, error)
}
