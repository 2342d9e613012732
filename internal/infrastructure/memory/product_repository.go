package memory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/obratex/deposito-api/internal/domain/entity"
	"github.com/obratex/deposito-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository catálogo de productos en memoria.
type ProductRepository struct {
	store *Store
}

// NewProductRepository construye el repositorio sobre el almacén compartido.
func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	return cloneProduct(p), nil
}

// GetForUpdate en memoria no bloquea fila: el mutex del almacén ya serializa.
func (r *ProductRepository) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *ProductRepository) Create(p *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *ProductRepository) List(limit, offset int) ([]*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	all := make([]*entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		all = append(all, cloneProduct(p))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, limit, offset), nil
}

func (r *ProductRepository) UpdateQuantities(id string, deposit, floor decimal.Decimal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.products[id]
	if !ok {
		return nil
	}
	p.DepositQuantity = deposit
	p.FloorQuantity = floor
	return nil
}

// page aplica limit/offset sobre una lista ya ordenada.
func page[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}
