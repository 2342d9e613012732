package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/obratex/deposito-api/internal/domain/entity"
	"github.com/obratex/deposito-api/internal/domain/repository"
)

var _ repository.SlotRepository = (*SlotRepo)(nil)

// SlotRepo implementación del registro de vagas sobre PostgreSQL.
type SlotRepo struct {
	q Querier
}

// NewSlotRepository construye el adaptador de vagas. Pasar pool o tx (Querier).
func NewSlotRepository(q Querier) *SlotRepo {
	return &SlotRepo{q: q}
}

const slotColumns = `id, product_id, building_id, tonality, gauge, lot, box_count, available, list_id, created_at`

func scanSlot(row pgx.Row) (*entity.WarehouseSlot, error) {
	var s entity.WarehouseSlot
	err := row.Scan(
		&s.ID, &s.ProductID, &s.BuildingID, &s.Tonality, &s.Gauge,
		&s.Lot, &s.BoxCount, &s.Available, &s.ListID, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByID obtiene una vaga por ID. Devuelve (nil, nil) si no existe.
func (r *SlotRepo) GetByID(id string) (*entity.WarehouseSlot, error) {
	query := `SELECT ` + slotColumns + ` FROM warehouse_slots WHERE id = $1`
	s, err := scanSlot(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get slot: %w", err)
	}
	return s, nil
}

func (r *SlotRepo) listWhere(where string, args ...any) ([]*entity.WarehouseSlot, error) {
	// id asc: enumeración estable para finalización y planificación
	query := `SELECT ` + slotColumns + ` FROM warehouse_slots WHERE ` + where + ` ORDER BY id ASC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()
	var slots []*entity.WarehouseSlot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

// ListByList lista las vagas vinculadas a una lista.
func (r *SlotRepo) ListByList(listID string) ([]*entity.WarehouseSlot, error) {
	return r.listWhere(`list_id = $1`, listID)
}

// ListAvailableByProduct lista las vagas disponibles de un producto.
func (r *SlotRepo) ListAvailableByProduct(productID string) ([]*entity.WarehouseSlot, error) {
	return r.listWhere(`product_id = $1 AND available = true`, productID)
}

// CountByList cuenta las vagas vinculadas a una lista.
func (r *SlotRepo) CountByList(listID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM warehouse_slots WHERE list_id = $1`, listID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count slots by list: %w", err)
	}
	return count, nil
}

// Create persiste una vaga nueva.
func (r *SlotRepo) Create(slot *entity.WarehouseSlot) error {
	query := `
		INSERT INTO warehouse_slots (id, product_id, building_id, tonality, gauge, lot, box_count, available, list_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		slot.ID, slot.ProductID, slot.BuildingID, slot.Tonality, slot.Gauge,
		slot.Lot, slot.BoxCount, slot.Available, slot.ListID, slot.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert slot: %w", err)
	}
	return nil
}

// Update actualiza una vaga existente.
func (r *SlotRepo) Update(slot *entity.WarehouseSlot) error {
	query := `
		UPDATE warehouse_slots
		SET product_id = $2, building_id = $3, tonality = $4, gauge = $5,
		    lot = $6, box_count = $7, available = $8, list_id = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		slot.ID, slot.ProductID, slot.BuildingID, slot.Tonality, slot.Gauge,
		slot.Lot, slot.BoxCount, slot.Available, slot.ListID,
	)
	if err != nil {
		return fmt.Errorf("update slot: %w", err)
	}
	return nil
}

// Delete elimina una vaga por ID.
func (r *SlotRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM warehouse_slots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}
	return nil
}
