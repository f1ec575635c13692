package dto

import "github.com/shopspring/decimal"

func init() {
	// Montos como número JSON: los clientes de gráficos esperan un punto numérico por bucket.
	decimal.MarshalJSONWithoutQuotes = true
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta de éxito sin payload (p. ej. DELETE).
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
