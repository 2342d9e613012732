package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/obratex/deposito-api/internal/domain"
	"github.com/obratex/deposito-api/internal/domain/entity"
	"github.com/obratex/deposito-api/internal/domain/repository"
)

var _ repository.ListRepository = (*ListRepo)(nil)

// ListRepo implementación del puerto ListRepository sobre PostgreSQL.
type ListRepo struct {
	q Querier
}

// NewListRepository construye el adaptador de listas. Pasar pool o tx (Querier).
func NewListRepository(q Querier) *ListRepo {
	return &ListRepo{q: q}
}

const listColumns = `id, name, open, created_at, updated_at`

func scanList(row pgx.Row) (*entity.List, error) {
	var l entity.List
	err := row.Scan(&l.ID, &l.Name, &l.Open, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *ListRepo) getByID(id, lock string) (*entity.List, error) {
	query := `SELECT ` + listColumns + ` FROM lists WHERE id = $1` + lock
	l, err := scanList(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get list: %w", err)
	}
	return l, nil
}

// GetByID obtiene una lista por ID. Devuelve (nil, nil) si no existe.
func (r *ListRepo) GetByID(id string) (*entity.List, error) {
	return r.getByID(id, "")
}

// GetForUpdate obtiene la lista bloqueando la fila (SELECT FOR UPDATE).
func (r *ListRepo) GetForUpdate(id string) (*entity.List, error) {
	return r.getByID(id, " FOR UPDATE")
}

// List lista con paginación.
func (r *ListRepo) List(limit, offset int) ([]*entity.List, error) {
	query := `SELECT ` + listColumns + ` FROM lists ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}
	defer rows.Close()
	var all []*entity.List
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		all = append(all, l)
	}
	return all, rows.Err()
}

// Create persiste una lista nueva. El nombre es único: 23505 se traduce a ErrDuplicate.
func (r *ListRepo) Create(l *entity.List) error {
	query := `
		INSERT INTO lists (id, name, open, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, l.ID, l.Name, l.Open, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("lista %q: %w", l.Name, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert list: %w", err)
	}
	return nil
}

// UpdateOpen fija el estado abierto/finalizado.
func (r *ListRepo) UpdateOpen(id string, open bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE lists SET open = $2, updated_at = now() WHERE id = $1`, id, open)
	if err != nil {
		return fmt.Errorf("update list state: %w", err)
	}
	return nil
}

// Delete elimina una lista por ID.
func (r *ListRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM lists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return nil
}
