package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	SupplierID  string          `json:"supplier_id,omitempty"`
	UnitsPerBox decimal.Decimal `json:"units_per_box"`
}

// ProductResponse representación de un producto del catálogo.
type ProductResponse struct {
	ID              string          `json:"id"`
	SupplierID      string          `json:"supplier_id,omitempty"`
	Name            string          `json:"name"`
	UnitsPerBox     decimal.Decimal `json:"units_per_box"`
	DepositQuantity decimal.Decimal `json:"deposit_quantity"`
	FloorQuantity   decimal.Decimal `json:"floor_quantity"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CreateBuildingRequest body para POST /api/buildings.
type CreateBuildingRequest struct {
	Name string `json:"name"`
}

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id,omitempty"`
}
