package entity

import "time"

// Supplier es un proveedor de materiales del catálogo.
type Supplier struct {
	ID        string
	Name      string
	TaxID     string // CNPJ/NIT
	CreatedAt time.Time
}
