package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier proveedor de una tienda.
type Supplier struct {
	ID            string
	StoreID       string
	Name          string
	Rating        decimal.NullDecimal // 1..5, opcional
	ProductIDs    []string
	TotalBusiness decimal.Decimal // volumen acumulado con el proveedor
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
