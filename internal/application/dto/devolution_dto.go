package dto

import "time"

// CreateDevolutionRequest entrada para registrar una devolución.
type CreateDevolutionRequest struct {
	Description string `json:"description" validate:"required,min=5,max=500"`
	Quantity    int64  `json:"quantity" validate:"min=1,max=1000000"`
	EntranceID  int64  `json:"entrance_id" validate:"min=1"`
}

// UpdateDevolutionRequest entrada para actualizar una devolución.
// Sin entrance_id se conserva la entrada vinculada.
type UpdateDevolutionRequest struct {
	Description string `json:"description" validate:"required,min=5,max=500"`
	Quantity    int64  `json:"quantity" validate:"min=1,max=1000000"`
	EntranceID  *int64 `json:"entrance_id" validate:"omitempty,min=1"`
}

// DevolutionResponse salida de una devolución.
type DevolutionResponse struct {
	ID          int64     `json:"id"`
	EntranceID  int64     `json:"entrance_id"`
	Description string    `json:"description"`
	Quantity    int64     `json:"quantity"`
	Date        time.Time `json:"date"`
}

// DevolutionListResponse lista paginada de devoluciones.
type DevolutionListResponse struct {
	Items []DevolutionResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
