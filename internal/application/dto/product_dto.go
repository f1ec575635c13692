package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Store     string          `json:"store"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int64           `json:"stock"`
	Category  string          `json:"category"`
	Thumbnail string          `json:"thumbnail"`
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	Name      *string          `json:"name"`
	Price     *decimal.Decimal `json:"price"`
	Stock     *int64           `json:"stock"`
	Category  *string          `json:"category"`
	Thumbnail *string          `json:"thumbnail"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Store     string          `json:"store"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int64           `json:"stock"`
	Category  string          `json:"category"`
	Thumbnail string          `json:"thumbnail,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Success  bool              `json:"success"`
	Products []ProductResponse `json:"products"`
	Page     PageResponse      `json:"page"`
}
