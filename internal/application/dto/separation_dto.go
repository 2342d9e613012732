package dto

import "github.com/shopspring/decimal"

// DemandLineRequest línea de demanda de separación, en unidades de venta.
type DemandLineRequest struct {
	ProductID string          `json:"product_id"`
	Tonality  string          `json:"tonality"`
	Gauge     string          `json:"gauge"`
	Lot       string          `json:"lot"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// SeparationPlanRequest body para POST /api/separations/plan.
type SeparationPlanRequest struct {
	Lines []DemandLineRequest `json:"lines"`
}

// AllocationDetailDTO una asignación dentro de una línea, en orden de consumo.
type AllocationDetailDTO struct {
	Source   string          `json:"source"`
	Lot      string          `json:"lot"`
	Tonality string          `json:"tonality"`
	Quantity decimal.Decimal `json:"quantity"`
	SlotID   string          `json:"slot_id,omitempty"`
}

// LinePlanDTO resultado por línea de demanda.
type LinePlanDTO struct {
	ProductID string                `json:"product_id"`
	Tonality  string                `json:"tonality"`
	Gauge     string                `json:"gauge"`
	Lot       string                `json:"lot"`
	Requested decimal.Decimal       `json:"requested"`
	Status    string                `json:"status"`
	Consumed  decimal.Decimal       `json:"consumed"`
	Remainder decimal.Decimal       `json:"remainder"`
	Reason    string                `json:"reason,omitempty"`
	Details   []AllocationDetailDTO `json:"details"`
}

// SlotUsageDTO uso agregado de una vaga para la confirmación posterior.
type SlotUsageDTO struct {
	SlotID    string          `json:"slot_id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// SeparationPlanResponse plan completo de una corrida.
type SeparationPlanResponse struct {
	Lines      []LinePlanDTO  `json:"lines"`
	SlotUsages []SlotUsageDTO `json:"slot_usages"`
}
