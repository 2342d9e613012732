package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WarehouseSlot es stock direccionado: cajas de un producto asignadas a una vaga
// física dentro de una obra/galpón, opcionalmente agrupadas en una List.
//
// Solo cuenta para la capacidad mientras Available sea true; finalizar la lista lo
// marca no disponible y reabrirla lo revierte. Solo puede eliminarse desvinculado.
type WarehouseSlot struct {
	ID         string
	ProductID  string
	BuildingID string
	Tonality   string
	Gauge      string
	Lot        *string          // opcional
	BoxCount   *decimal.Decimal // opcional, >= 0
	Available  bool
	ListID     *string // nil = sin lista
	CreatedAt  time.Time
}

// Variant devuelve la clave de variante de la vaga (lote vacío si no tiene).
func (s *WarehouseSlot) Variant() VariantKey {
	lot := ""
	if s.Lot != nil {
		lot = *s.Lot
	}
	return VariantKey{ProductID: s.ProductID, Tonality: s.Tonality, Gauge: s.Gauge, Lot: lot}
}

// Capacity devuelve la capacidad en unidades de venta (cajas × unidades por caja).
// Cero si la vaga no registra cajas.
func (s *WarehouseSlot) Capacity(unitsPerBox decimal.Decimal) decimal.Decimal {
	if s.BoxCount == nil {
		return decimal.Zero
	}
	return s.BoxCount.Mul(unitsPerBox)
}
