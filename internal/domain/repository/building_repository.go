package repository

import "github.com/obratex/deposito-api/internal/domain/entity"

// BuildingRepository puerto de persistencia de galpones/obras.
type BuildingRepository interface {
	GetByID(id string) (*entity.Building, error)
	Create(b *entity.Building) error
	List(limit, offset int) ([]*entity.Building, error)
}
