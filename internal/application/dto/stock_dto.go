package dto

import "github.com/shopspring/decimal"

// TransferRequest body para POST /api/stock/transfers (depósito → piso).
type TransferRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Lot       string          `json:"lot"`
	Tonality  string          `json:"tonality"`
	Gauge     string          `json:"gauge"`
}

// WithdrawRequest body para POST /api/stock/withdrawals. Con lot, tonality y gauge
// informados el retiro es por variante exacta; con los tres vacíos es FIFO.
type WithdrawRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Lot       string          `json:"lot,omitempty"`
	Tonality  string          `json:"tonality,omitempty"`
	Gauge     string          `json:"gauge,omitempty"`
}

// StockSummaryResponse totales de stock de un producto.
type StockSummaryResponse struct {
	ProductID    string          `json:"product_id"`
	FloorTotal   decimal.Decimal `json:"floor_total"`
	DepositTotal decimal.Decimal `json:"deposit_total"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
}

// StockDetailRowDTO fila de detalle por variante.
type StockDetailRowDTO struct {
	Source   string          `json:"source"` // floor | slot
	Lot      string          `json:"lot"`
	Tonality string          `json:"tonality"`
	Gauge    string          `json:"gauge"`
	Quantity decimal.Decimal `json:"quantity"`
	Units    decimal.Decimal `json:"units"`
	SlotID   string          `json:"slot_id,omitempty"`
}
