package stock

import (
	"context"

	"github.com/obratex/deposito-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Es la única unidad de atomicidad del motor de movimientos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		floorRepo repository.FloorStockRepository,
		productRepo repository.ProductRepository,
	) error) error
}
