package repository

import "github.com/obratex/deposito-api/internal/domain/entity"

// ListRepository puerto de persistencia de listas de vagas.
// Create devuelve domain.ErrDuplicate si el nombre ya existe.
type ListRepository interface {
	GetByID(id string) (*entity.List, error)
	// GetForUpdate bloquea la fila de la lista durante finalizar/reabrir.
	GetForUpdate(id string) (*entity.List, error)
	List(limit, offset int) ([]*entity.List, error)
	Create(l *entity.List) error
	UpdateOpen(id string, open bool) error
	Delete(id string) error
}
