package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entrance es una entrada de stock (compra a proveedor) de un producto.
type Entrance struct {
	ID           int64
	ProductID    int64
	SupplierName string
	Quantity     int64
	TotalPrice   decimal.Decimal
	Date         time.Time
}
