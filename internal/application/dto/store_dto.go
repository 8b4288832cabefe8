package dto

import "time"

// RegisterStoreRequest entrada para registrar una tienda.
type RegisterStoreRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5,max=72"`
}

// UpdateStoreRequest entrada para actualizar una tienda. Password es opcional.
type UpdateStoreRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=200"`
	Password *string `json:"password" validate:"omitempty,min=5,max=72"`
}

// StoreResponse salida de una tienda (nunca incluye el hash).
type StoreResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoreDetailResponse tienda con sus productos y stock calculado.
type StoreDetailResponse struct {
	StoreResponse
	Products []ProductResponse `json:"products"`
}

// StoreListResponse lista paginada de tiendas.
type StoreListResponse struct {
	Items []StoreResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// StockReport datos del reporte PDF de stock de una tienda.
type StockReport struct {
	Store       StoreResponse
	Products    []ProductResponse
	GeneratedAt time.Time
}
