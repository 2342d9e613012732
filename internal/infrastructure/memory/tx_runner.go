package memory

import (
	"context"

	"github.com/obratex/deposito-api/internal/application/lists"
	"github.com/obratex/deposito-api/internal/application/stock"
	"github.com/obratex/deposito-api/internal/domain/repository"
)

var _ stock.TxRunner = (*TxRunner)(nil)
var _ lists.TxRunner = (*TxRunner)(nil)

// TxRunner transaccionalidad en memoria por snapshot/restore: antes de ejecutar el
// callback copia el estado completo y, si el callback falla, lo restaura. Emula el
// Commit/Rollback del runner de postgres para los tests de aplicación.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el almacén compartido.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con los repositorios del motor de movimientos.
func (r *TxRunner) Run(ctx context.Context, fn func(
	floorRepo repository.FloorStockRepository,
	productRepo repository.ProductRepository,
) error) error {
	snap := r.store.snapshot()
	if err := fn(NewFloorStockRepository(r.store), NewProductRepository(r.store)); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}

// RunLists ejecuta fn con los repositorios del ciclo de vida de listas.
func (r *TxRunner) RunLists(ctx context.Context, fn func(
	slotRepo repository.SlotRepository,
	productRepo repository.ProductRepository,
	listRepo repository.ListRepository,
) error) error {
	snap := r.store.snapshot()
	if err := fn(NewSlotRepository(r.store), NewProductRepository(r.store), NewListRepository(r.store)); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}
