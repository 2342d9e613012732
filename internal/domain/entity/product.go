package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo (cerámica, porcelanato, etc.).
//
// UnitsPerBox convierte cajas a unidades de venta (m² por caja) y debe ser > 0 para
// cualquier conversión. DepositQuantity y FloorQuantity son contadores agregados por
// producto que solo mueven finalizar/reabrir lista; los caminos de lectura de stock
// suman las filas vivas del ledger y las vagas, ignorando estos contadores.
type Product struct {
	ID              string
	SupplierID      string
	Name            string
	UnitsPerBox     decimal.Decimal // m² por caja, > 0
	DepositQuantity decimal.Decimal // agregado legado: unidades en depósito
	FloorQuantity   decimal.Decimal // agregado legado: unidades en piso
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
