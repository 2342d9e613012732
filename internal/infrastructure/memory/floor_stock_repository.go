package memory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/obratex/deposito-api/internal/domain/entity"
	"github.com/obratex/deposito-api/internal/domain/repository"
)

var _ repository.FloorStockRepository = (*FloorStockRepository)(nil)

// FloorStockRepository ledger de piso en memoria.
type FloorStockRepository struct {
	store *Store
}

// NewFloorStockRepository construye el repositorio sobre el almacén compartido.
func NewFloorStockRepository(store *Store) *FloorStockRepository {
	return &FloorStockRepository{store: store}
}

func (r *FloorStockRepository) GetByVariant(key entity.VariantKey) (*entity.FloorStockItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, it := range r.store.floor {
		if it.Variant() == key {
			return cloneFloorItem(it), nil
		}
	}
	return nil, nil
}

func (r *FloorStockRepository) GetByVariantForUpdate(key entity.VariantKey) (*entity.FloorStockItem, error) {
	return r.GetByVariant(key)
}

func (r *FloorStockRepository) ListByProduct(productID string) ([]*entity.FloorStockItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var items []*entity.FloorStockItem
	for _, it := range r.store.floor {
		if it.ProductID == productID {
			items = append(items, cloneFloorItem(it))
		}
	}
	// Orden FIFO: created_at ascendente, id como desempate
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *FloorStockRepository) ListByProductForUpdate(productID string) ([]*entity.FloorStockItem, error) {
	return r.ListByProduct(productID)
}

func (r *FloorStockRepository) Create(item *entity.FloorStockItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.floor[item.ID] = cloneFloorItem(item)
	return nil
}

func (r *FloorStockRepository) UpdateQuantity(id string, qty decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if it, ok := r.store.floor[id]; ok {
		it.Quantity = qty
	}
	return nil
}

func (r *FloorStockRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.floor, id)
	return nil
}
