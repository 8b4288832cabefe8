package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto de una tienda. El nombre es único entre todas las tiendas.
// StockQuantity no se persiste: se calcula desde entradas y salidas en cada lectura.
type Product struct {
	ID            int64
	StoreID       int64
	Name          string
	UnitPrice     decimal.Decimal
	StockQuantity int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OwnedBy indica si la tienda es dueña del producto.
func (p *Product) OwnedBy(storeID int64) bool {
	return p != nil && p.StoreID == storeID
}
