package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/obratex/deposito-api/internal/domain/entity"
	"github.com/obratex/deposito-api/internal/domain/repository"
)

var _ repository.FloorStockRepository = (*FloorStockRepo)(nil)

// FloorStockRepo implementación del ledger de piso sobre PostgreSQL.
// floor_stock_items es único por (product_id, lot, tonality, gauge).
type FloorStockRepo struct {
	q Querier
}

// NewFloorStockRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewFloorStockRepository(q Querier) *FloorStockRepo {
	return &FloorStockRepo{q: q}
}

const floorColumns = `id, product_id, lot, tonality, gauge, quantity, created_at`

func scanFloorItem(row pgx.Row) (*entity.FloorStockItem, error) {
	var it entity.FloorStockItem
	err := row.Scan(&it.ID, &it.ProductID, &it.Lot, &it.Tonality, &it.Gauge, &it.Quantity, &it.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *FloorStockRepo) getByVariant(key entity.VariantKey, lock string) (*entity.FloorStockItem, error) {
	query := `
		SELECT ` + floorColumns + ` FROM floor_stock_items
		WHERE product_id = $1 AND lot = $2 AND tonality = $3 AND gauge = $4` + lock
	it, err := scanFloorItem(r.q.QueryRow(context.Background(), query, key.ProductID, key.Lot, key.Tonality, key.Gauge))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get floor stock item: %w", err)
	}
	return it, nil
}

// GetByVariant obtiene la fila de la variante. Devuelve (nil, nil) si no existe.
func (r *FloorStockRepo) GetByVariant(key entity.VariantKey) (*entity.FloorStockItem, error) {
	return r.getByVariant(key, "")
}

// GetByVariantForUpdate obtiene la fila bloqueándola (SELECT FOR UPDATE).
func (r *FloorStockRepo) GetByVariantForUpdate(key entity.VariantKey) (*entity.FloorStockItem, error) {
	return r.getByVariant(key, " FOR UPDATE")
}

func (r *FloorStockRepo) listByProduct(productID, lock string) ([]*entity.FloorStockItem, error) {
	// created_at asc + id asc es el orden FIFO del retiro
	query := `
		SELECT ` + floorColumns + ` FROM floor_stock_items
		WHERE product_id = $1 ORDER BY created_at ASC, id ASC` + lock
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list floor stock items: %w", err)
	}
	defer rows.Close()
	var items []*entity.FloorStockItem
	for rows.Next() {
		it, err := scanFloorItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan floor stock item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ListByProduct lista las filas del producto en orden FIFO.
func (r *FloorStockRepo) ListByProduct(productID string) ([]*entity.FloorStockItem, error) {
	return r.listByProduct(productID, "")
}

// ListByProductForUpdate lista bloqueando las filas para el walk FIFO.
func (r *FloorStockRepo) ListByProductForUpdate(productID string) ([]*entity.FloorStockItem, error) {
	return r.listByProduct(productID, " FOR UPDATE")
}

// Create inserta una fila nueva del ledger.
func (r *FloorStockRepo) Create(item *entity.FloorStockItem) error {
	query := `
		INSERT INTO floor_stock_items (id, product_id, lot, tonality, gauge, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ProductID, item.Lot, item.Tonality, item.Gauge, item.Quantity, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert floor stock item: %w", err)
	}
	return nil
}

// UpdateQuantity fija la cantidad de una fila.
func (r *FloorStockRepo) UpdateQuantity(id string, qty decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE floor_stock_items SET quantity = $2 WHERE id = $1`, id, qty)
	if err != nil {
		return fmt.Errorf("update floor stock quantity: %w", err)
	}
	return nil
}

// Delete elimina una fila agotada.
func (r *FloorStockRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM floor_stock_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete floor stock item: %w", err)
	}
	return nil
}
