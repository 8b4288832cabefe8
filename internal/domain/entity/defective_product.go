package entity

import "time"

// DefectiveProduct registra unidades defectuosas de una entrada.
type DefectiveProduct struct {
	ID          int64
	EntranceID  int64
	Description string
	Quantity    int64
	CreatedAt   time.Time
}
