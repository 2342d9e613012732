package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FloorStockItem es una fila del ledger de stock de piso: cantidad suelta (en unidades
// de venta) de una variante. Única por (producto, lote, tonalidad, calibre).
//
// Se crea en la primera transferencia depósito→piso, se consume en retiros y se
// elimina al llegar exactamente a cero; nunca se persiste con cantidad cero o negativa.
// CreatedAt define el orden FIFO de consumo.
type FloorStockItem struct {
	ID        string
	ProductID string
	Lot       string
	Tonality  string
	Gauge     string
	Quantity  decimal.Decimal
	CreatedAt time.Time
}

// Variant devuelve la clave de variante de la fila.
func (i *FloorStockItem) Variant() VariantKey {
	return VariantKey{ProductID: i.ProductID, Tonality: i.Tonality, Gauge: i.Gauge, Lot: i.Lot}
}
