package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto publicado por una tienda.
// El stock por registro de inventario vive en InventoryRecord; Stock aquí es el valor declarado al publicar.
type Product struct {
	ID         string
	StoreID    string
	Name       string
	Price      decimal.Decimal // precio de venta
	Stock      int64
	CategoryID string
	Thumbnail  string // URL de la imagen
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
