package repository

import (
	"github.com/shopspring/decimal"

	"github.com/obratex/deposito-api/internal/domain/entity"
)

// FloorStockRepository puerto del ledger de stock de piso.
//
// Los listados ordenan por created_at ascendente y luego id ascendente: ese es el
// orden FIFO de consumo. Los Get devuelven (nil, nil) cuando no hay fila.
type FloorStockRepository interface {
	GetByVariant(key entity.VariantKey) (*entity.FloorStockItem, error)
	// GetByVariantForUpdate bloquea la fila de la variante (SELECT FOR UPDATE).
	GetByVariantForUpdate(key entity.VariantKey) (*entity.FloorStockItem, error)
	ListByProduct(productID string) ([]*entity.FloorStockItem, error)
	// ListByProductForUpdate bloquea todas las filas del producto para el walk FIFO.
	ListByProductForUpdate(productID string) ([]*entity.FloorStockItem, error)
	Create(item *entity.FloorStockItem) error
	UpdateQuantity(id string, qty decimal.Decimal) error
	Delete(id string) error
}
