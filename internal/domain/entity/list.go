package entity

import "time"

// List es un lote de vagas definido por el operador. Open=true significa editable
// (no finalizada); finalizar y reabrir alternan el estado cuantas veces haga falta.
// No puede eliminarse mientras alguna vaga la referencie.
type List struct {
	ID        string
	Name      string // único
	Open      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
