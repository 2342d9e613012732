package entity

import "time"

// Building es un galpón/obra física donde viven las vagas direccionadas.
type Building struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
