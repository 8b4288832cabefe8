package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntranceRequest entrada para crear o actualizar una entrada de stock.
type EntranceRequest struct {
	SupplierName string          `json:"supplier_name" validate:"required,min=2,max=200"`
	Quantity     int64           `json:"quantity" validate:"min=1,max=1000000"`
	TotalPrice   decimal.Decimal `json:"total_price" swaggertype:"string" validate:"min=0.05"`
	ProductID    int64           `json:"product_id" validate:"min=1"`
}

// EntranceResponse salida de una entrada de stock.
type EntranceResponse struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"product_id"`
	SupplierName string          `json:"supplier_name"`
	Quantity     int64           `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"total_price" swaggertype:"string"`
	Date         time.Time       `json:"date"`
}

// EntranceDetailResponse entrada con sus devoluciones y reportes de defectuosos.
type EntranceDetailResponse struct {
	EntranceResponse
	Devolutions       []DevolutionResponse       `json:"devolutions"`
	DefectiveProducts []DefectiveProductResponse `json:"defective_products"`
}

// EntranceListResponse lista paginada de entradas.
type EntranceListResponse struct {
	Items []EntranceResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
