package dto

import "time"

// CreateDefectiveProductRequest entrada para reportar unidades defectuosas.
type CreateDefectiveProductRequest struct {
	Description string `json:"description" validate:"required,min=2,max=500"`
	Quantity    int64  `json:"quantity" validate:"min=1,max=1000000"`
	EntranceID  int64  `json:"entrance_id" validate:"min=1"`
}

// UpdateDefectiveProductRequest entrada para actualizar un reporte.
type UpdateDefectiveProductRequest struct {
	Description string `json:"description" validate:"required,min=2,max=500"`
	Quantity    int64  `json:"quantity" validate:"min=1,max=1000000"`
	EntranceID  *int64 `json:"entrance_id" validate:"omitempty,min=1"`
}

// DefectiveProductResponse salida de un reporte de producto defectuoso.
type DefectiveProductResponse struct {
	ID          int64     `json:"id"`
	EntranceID  int64     `json:"entrance_id"`
	Description string    `json:"description"`
	Quantity    int64     `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
}

// DefectiveProductListResponse lista paginada de reportes.
type DefectiveProductListResponse struct {
	Items []DefectiveProductResponse `json:"items"`
	Page  PageResponse               `json:"page"`
}
