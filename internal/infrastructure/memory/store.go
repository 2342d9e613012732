// Package memory implementa los puertos de persistencia sobre mapas en memoria.
// Lo usan los tests de la capa de aplicación; el despliegue real usa postgres.
package memory

import (
	"sync"

	"github.com/obratex/deposito-api/internal/domain/entity"
)

// Store estado compartido de todos los repositorios en memoria.
type Store struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	floor     map[string]*entity.FloorStockItem
	slots     map[string]*entity.WarehouseSlot
	lists     map[string]*entity.List
	buildings map[string]*entity.Building
	suppliers map[string]*entity.Supplier
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		products:  make(map[string]*entity.Product),
		floor:     make(map[string]*entity.FloorStockItem),
		slots:     make(map[string]*entity.WarehouseSlot),
		lists:     make(map[string]*entity.List),
		buildings: make(map[string]*entity.Building),
		suppliers: make(map[string]*entity.Supplier),
	}
}

// snapshot copia profunda del estado, para el rollback del TxRunner en memoria.
func (s *Store) snapshot() *Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := NewStore()
	for id, p := range s.products {
		snap.products[id] = cloneProduct(p)
	}
	for id, it := range s.floor {
		snap.floor[id] = cloneFloorItem(it)
	}
	for id, sl := range s.slots {
		snap.slots[id] = cloneSlot(sl)
	}
	for id, l := range s.lists {
		cp := *l
		snap.lists[id] = &cp
	}
	for id, b := range s.buildings {
		cp := *b
		snap.buildings[id] = &cp
	}
	for id, sp := range s.suppliers {
		cp := *sp
		snap.suppliers[id] = &cp
	}
	return snap
}

// restore reemplaza el estado por el de un snapshot previo.
func (s *Store) restore(snap *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = snap.products
	s.floor = snap.floor
	s.slots = snap.slots
	s.lists = snap.lists
	s.buildings = snap.buildings
	s.suppliers = snap.suppliers
}

func cloneProduct(p *entity.Product) *entity.Product {
	cp := *p
	return &cp
}

func cloneFloorItem(it *entity.FloorStockItem) *entity.FloorStockItem {
	cp := *it
	return &cp
}

func cloneSlot(sl *entity.WarehouseSlot) *entity.WarehouseSlot {
	cp := *sl
	if sl.Lot != nil {
		lot := *sl.Lot
		cp.Lot = &lot
	}
	if sl.BoxCount != nil {
		bc := *sl.BoxCount
		cp.BoxCount = &bc
	}
	if sl.ListID != nil {
		lid := *sl.ListID
		cp.ListID = &lid
	}
	return &cp
}
