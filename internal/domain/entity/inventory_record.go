package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryAlerts indica qué tipos de alerta están habilitados para un registro.
// No es estado calculado: son banderas estáticas que el usuario configura.
type InventoryAlerts struct {
	LowStock                bool
	HighTimeWithoutMovement bool
}

// InventoryRecord representa el stock rastreado de un producto.
// Quantity >= 0; LastMovement se actualiza en cada modificación; CreatedAt es inmutable
// y es la clave de agrupación de las estadísticas.
type InventoryRecord struct {
	ID           string
	ProductID    string
	Quantity     int64
	StorageCost  decimal.Decimal
	LastMovement time.Time
	Alerts       InventoryAlerts
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Product se llena por lectura (LEFT JOIN); nil si la referencia no resuelve.
	Product *ProductSummary
}

// ProductSummary campos del producto que acompañan a un registro de inventario.
type ProductSummary struct {
	Name       string
	Price      decimal.Decimal
	CategoryID string
}
