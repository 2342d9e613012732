package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateListRequest body para POST /api/lists.
type CreateListRequest struct {
	Name string `json:"name"`
}

// ListResponse representación de una lista de vagas.
type ListResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Open      bool      `json:"open"`
	CreatedAt time.Time `json:"created_at"`
}

// SlotTemplateRequest plantilla de vaga para creación unitaria o masiva.
type SlotTemplateRequest struct {
	ProductID  string           `json:"product_id"`
	BuildingID string           `json:"building_id"`
	Tonality   string           `json:"tonality"`
	Gauge      string           `json:"gauge"`
	Lot        *string          `json:"lot,omitempty"`
	BoxCount   *decimal.Decimal `json:"box_count,omitempty"`
	ListID     *string          `json:"list_id,omitempty"`
}

// BulkSlotsRequest body para POST /api/slots/bulk.
type BulkSlotsRequest struct {
	Template SlotTemplateRequest `json:"template"`
	Count    int                 `json:"count"`
}

// SlotResponse representación de una vaga.
type SlotResponse struct {
	ID         string           `json:"id"`
	ProductID  string           `json:"product_id"`
	BuildingID string           `json:"building_id"`
	Tonality   string           `json:"tonality"`
	Gauge      string           `json:"gauge"`
	Lot        *string          `json:"lot,omitempty"`
	BoxCount   *decimal.Decimal `json:"box_count,omitempty"`
	Available  bool             `json:"available"`
	ListID     *string          `json:"list_id,omitempty"`
}
