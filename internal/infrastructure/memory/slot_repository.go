package memory

import (
	"sort"

	"github.com/obratex/deposito-api/internal/domain/entity"
	"github.com/obratex/deposito-api/internal/domain/repository"
)

var _ repository.SlotRepository = (*SlotRepository)(nil)

// SlotRepository registro de vagas en memoria.
type SlotRepository struct {
	store *Store
}

// NewSlotRepository construye el repositorio sobre el almacén compartido.
func NewSlotRepository(store *Store) *SlotRepository {
	return &SlotRepository{store: store}
}

func (r *SlotRepository) GetByID(id string) (*entity.WarehouseSlot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	sl, ok := r.store.slots[id]
	if !ok {
		return nil, nil
	}
	return cloneSlot(sl), nil
}

func (r *SlotRepository) ListByList(listID string) ([]*entity.WarehouseSlot, error) {
	return r.list(func(sl *entity.WarehouseSlot) bool {
		return sl.ListID != nil && *sl.ListID == listID
	})
}

func (r *SlotRepository) ListAvailableByProduct(productID string) ([]*entity.WarehouseSlot, error) {
	return r.list(func(sl *entity.WarehouseSlot) bool {
		return sl.Available && sl.ProductID == productID
	})
}

func (r *SlotRepository) list(keep func(*entity.WarehouseSlot) bool) ([]*entity.WarehouseSlot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var slots []*entity.WarehouseSlot
	for _, sl := range r.store.slots {
		if keep(sl) {
			slots = append(slots, cloneSlot(sl))
		}
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].ID < slots[j].ID })
	return slots, nil
}

func (r *SlotRepository) CountByList(listID string) (int, error) {
	slots, err := r.ListByList(listID)
	if err != nil {
		return 0, err
	}
	return len(slots), nil
}

func (r *SlotRepository) Create(slot *entity.WarehouseSlot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.slots[slot.ID] = cloneSlot(slot)
	return nil
}

func (r *SlotRepository) Update(slot *entity.WarehouseSlot) error {
	return r.Create(slot)
}

func (r *SlotRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.slots, id)
	return nil
}
