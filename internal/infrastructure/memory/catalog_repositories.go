package memory

import (
	"sort"

	"github.com/obratex/deposito-api/internal/domain/entity"
	"github.com/obratex/deposito-api/internal/domain/repository"
)

var _ repository.BuildingRepository = (*BuildingRepository)(nil)
var _ repository.SupplierRepository = (*SupplierRepository)(nil)

// BuildingRepository galpones en memoria.
type BuildingRepository struct {
	store *Store
}

// NewBuildingRepository construye el repositorio sobre el almacén compartido.
func NewBuildingRepository(store *Store) *BuildingRepository {
	return &BuildingRepository{store: store}
}

func (r *BuildingRepository) GetByID(id string) (*entity.Building, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	b, ok := r.store.buildings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *BuildingRepository) Create(b *entity.Building) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *b
	r.store.buildings[b.ID] = &cp
	return nil
}

func (r *BuildingRepository) List(limit, offset int) ([]*entity.Building, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	all := make([]*entity.Building, 0, len(r.store.buildings))
	for _, b := range r.store.buildings {
		cp := *b
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, limit, offset), nil
}

// SupplierRepository proveedores en memoria.
type SupplierRepository struct {
	store *Store
}

// NewSupplierRepository construye el repositorio sobre el almacén compartido.
func NewSupplierRepository(store *Store) *SupplierRepository {
	return &SupplierRepository{store: store}
}

func (r *SupplierRepository) GetByID(id string) (*entity.Supplier, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	s, ok := r.store.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *SupplierRepository) Create(s *entity.Supplier) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *s
	r.store.suppliers[s.ID] = &cp
	return nil
}

func (r *SupplierRepository) List(limit, offset int) ([]*entity.Supplier, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	all := make([]*entity.Supplier, 0, len(r.store.suppliers))
	for _, s := range r.store.suppliers {
		cp := *s
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, limit, offset), nil
}
