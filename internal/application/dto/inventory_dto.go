package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AlertsDTO banderas de alerta habilitadas para un registro.
type AlertsDTO struct {
	LowStock                bool `json:"lowStock"`
	HighTimeWithoutMovement bool `json:"highTimeWithoutMovement"`
}

// AlertsPatch actualización parcial de las banderas de alerta.
type AlertsPatch struct {
	LowStock                *bool `json:"lowStock"`
	HighTimeWithoutMovement *bool `json:"highTimeWithoutMovement"`
}

// CreateInventoryRequest body para POST /api/inventory.
type CreateInventoryRequest struct {
	Product     string           `json:"product"`
	Quantity    *int64           `json:"quantity"`
	StorageCost *decimal.Decimal `json:"storageCost,omitempty"`
	Alerts      *AlertsDTO       `json:"alerts,omitempty"`
}

// UpdateInventoryRequest body para PUT /api/inventory/:id. Solo se aplican los campos presentes.
type UpdateInventoryRequest struct {
	Product     *string          `json:"product,omitempty"`
	Quantity    *int64           `json:"quantity,omitempty"`
	StorageCost *decimal.Decimal `json:"storageCost,omitempty"`
	Alerts      *AlertsPatch     `json:"alerts,omitempty"`
}

// ProductSummaryResponse datos del producto embebidos en un registro de inventario.
type ProductSummaryResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

// InventoryResponse salida de un registro de inventario.
// Product es null cuando la referencia al producto no resuelve.
type InventoryResponse struct {
	ID           string                  `json:"id"`
	ProductID    string                  `json:"productId"`
	Product      *ProductSummaryResponse `json:"product"`
	Quantity     int64                   `json:"quantity"`
	StorageCost  decimal.Decimal         `json:"storageCost"`
	LastMovement time.Time               `json:"lastMovement"`
	Alerts       AlertsDTO               `json:"alerts"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
}

// InventoryEnvelope respuesta de un solo registro.
type InventoryEnvelope struct {
	Success   bool               `json:"success"`
	Message   string             `json:"message,omitempty"`
	Inventory *InventoryResponse `json:"inventory"`
}

// InventoryListResponse respuesta de GET /api/inventory.
type InventoryListResponse struct {
	Success          bool                `json:"success"`
	InventoryRecords []InventoryResponse `json:"inventoryRecords"`
	Page             PageResponse        `json:"page"`
}

// InventoryAlertsResponse respuesta de GET /api/inventory/alerts.
type InventoryAlertsResponse struct {
	Success         bool                `json:"success"`
	InventoryAlerts []InventoryResponse `json:"inventoryAlerts"`
}
