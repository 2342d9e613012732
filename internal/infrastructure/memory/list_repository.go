package memory

import (
	"fmt"
	"sort"

	"github.com/obratex/deposito-api/internal/domain"
	"github.com/obratex/deposito-api/internal/domain/entity"
	"github.com/obratex/deposito-api/internal/domain/repository"
)

var _ repository.ListRepository = (*ListRepository)(nil)

// ListRepository listas de vagas en memoria.
type ListRepository struct {
	store *Store
}

// NewListRepository construye el repositorio sobre el almacén compartido.
func NewListRepository(store *Store) *ListRepository {
	return &ListRepository{store: store}
}

func (r *ListRepository) GetByID(id string) (*entity.List, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	l, ok := r.store.lists[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *ListRepository) GetForUpdate(id string) (*entity.List, error) {
	return r.GetByID(id)
}

func (r *ListRepository) List(limit, offset int) ([]*entity.List, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	all := make([]*entity.List, 0, len(r.store.lists))
	for _, l := range r.store.lists {
		cp := *l
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, limit, offset), nil
}

func (r *ListRepository) Create(l *entity.List) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.lists {
		if existing.Name == l.Name {
			return fmt.Errorf("lista %q: %w", l.Name, domain.ErrDuplicate)
		}
	}
	cp := *l
	r.store.lists[l.ID] = &cp
	return nil
}

func (r *ListRepository) UpdateOpen(id string, open bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if l, ok := r.store.lists[id]; ok {
		l.Open = open
	}
	return nil
}

func (r *ListRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.lists, id)
	return nil
}
