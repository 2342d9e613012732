package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/obratex/deposito-api/internal/domain/entity"
	"github.com/obratex/deposito-api/internal/domain/repository"
)

var _ repository.BuildingRepository = (*BuildingRepo)(nil)

// BuildingRepo implementación del puerto BuildingRepository sobre PostgreSQL.
type BuildingRepo struct {
	q Querier
}

// NewBuildingRepository construye el adaptador de galpones. Pasar pool o tx (Querier).
func NewBuildingRepository(q Querier) *BuildingRepo {
	return &BuildingRepo{q: q}
}

// GetByID obtiene un galpón por ID. Devuelve (nil, nil) si no existe.
func (r *BuildingRepo) GetByID(id string) (*entity.Building, error) {
	var b entity.Building
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, created_at FROM buildings WHERE id = $1`, id,
	).Scan(&b.ID, &b.Name, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get building: %w", err)
	}
	return &b, nil
}

// Create persiste un galpón nuevo.
func (r *BuildingRepo) Create(b *entity.Building) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO buildings (id, name, created_at) VALUES ($1, $2, $3)`,
		b.ID, b.Name, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert building: %w", err)
	}
	return nil
}

// List lista galpones con paginación.
func (r *BuildingRepo) List(limit, offset int) ([]*entity.Building, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at FROM buildings ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list buildings: %w", err)
	}
	defer rows.Close()
	var all []*entity.Building
	for rows.Next() {
		var b entity.Building
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan building: %w", err)
		}
		all = append(all, &b)
	}
	return all, rows.Err()
}
