package repository

import (
	"github.com/shopspring/decimal"

	"github.com/obratex/deposito-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia del catálogo de productos.
// Los Get devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE) dentro
	// de la transacción en curso.
	GetForUpdate(id string) (*entity.Product, error)
	Create(p *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	// UpdateQuantities actualiza los agregados legados depósito/piso del producto.
	UpdateQuantities(id string, deposit, floor decimal.Decimal) error
}
