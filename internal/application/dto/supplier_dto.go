package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest body para POST /api/suppliers. Store vacío toma la tienda del token.
type CreateSupplierRequest struct {
	Store         string           `json:"store"`
	Name          string           `json:"name"`
	Rating        *decimal.Decimal `json:"rating,omitempty"`
	Products      []string         `json:"products"`
	TotalBusiness *decimal.Decimal `json:"totalBusiness,omitempty"`
}

// UpdateSupplierRequest body para PUT /api/suppliers/:id. Solo se aplican los campos presentes.
type UpdateSupplierRequest struct {
	Name          *string          `json:"name,omitempty"`
	Rating        *decimal.Decimal `json:"rating,omitempty"`
	Products      *[]string        `json:"products,omitempty"`
	TotalBusiness *decimal.Decimal `json:"totalBusiness,omitempty"`
}

// SupplierResponse salida de un proveedor. Rating es null si no fue calificado.
type SupplierResponse struct {
	ID            string           `json:"id"`
	Store         string           `json:"store"`
	Name          string           `json:"name"`
	Rating        *decimal.Decimal `json:"rating"`
	Products      []string         `json:"products"`
	TotalBusiness decimal.Decimal  `json:"totalBusiness"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// SupplierEnvelope respuesta de un solo proveedor.
type SupplierEnvelope struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Supplier SupplierResponse `json:"supplier"`
}

// SupplierListResponse proveedores de una tienda.
type SupplierListResponse struct {
	Success   bool               `json:"success"`
	Suppliers []SupplierResponse `json:"suppliers"`
}
