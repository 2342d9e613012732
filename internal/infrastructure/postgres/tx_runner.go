package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/obratex/deposito-api/internal/application/lists"
	"github.com/obratex/deposito-api/internal/application/stock"
	"github.com/obratex/deposito-api/internal/domain/repository"
)

// Ensure TxRunner implements stock.TxRunner and lists.TxRunner.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ lists.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos del motor de movimientos atados
// a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	floorRepo repository.FloorStockRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	floorRepo := NewFloorStockRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(floorRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunLists inicia una transacción con los repos del ciclo de vida de listas
// (finalizar/reabrir y creación masiva de vagas).
func (r *TxRunner) RunLists(ctx context.Context, fn func(
	slotRepo repository.SlotRepository,
	productRepo repository.ProductRepository,
	listRepo repository.ListRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	slotRepo := NewSlotRepository(tx)
	productRepo := NewProductRepository(tx)
	listRepo := NewListRepository(tx)

	if err := fn(slotRepo, productRepo, listRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
