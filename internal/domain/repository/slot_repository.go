package repository

import "github.com/obratex/deposito-api/internal/domain/entity"

// SlotRepository puerto del registro de vagas (stock direccionado).
// Los listados ordenan por id ascendente para que la enumeración sea estable.
type SlotRepository interface {
	GetByID(id string) (*entity.WarehouseSlot, error)
	ListByList(listID string) ([]*entity.WarehouseSlot, error)
	ListAvailableByProduct(productID string) ([]*entity.WarehouseSlot, error)
	CountByList(listID string) (int, error)
	Create(slot *entity.WarehouseSlot) error
	Update(slot *entity.WarehouseSlot) error
	Delete(id string) error
}
