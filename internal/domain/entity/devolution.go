package entity

import "time"

// Devolution registra una devolución asociada a una entrada.
type Devolution struct {
	ID          int64
	EntranceID  int64
	Description string
	Quantity    int64
	Date        time.Time
}
