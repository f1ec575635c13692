package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatisticsBucketDTO un punto de la serie de estadísticas.
type StatisticsBucketDTO struct {
	Key              string          `json:"key"`
	Label            string          `json:"label"`
	TotalQuantity    int64           `json:"totalQuantity"`
	TotalStorageCost decimal.Decimal `json:"totalStorageCost"`
}

// WindowDTO ventana de consulta usada para la serie.
type WindowDTO struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// StatisticsResponse respuesta de GET /api/inventory/statistics.
// Statistics tiene siempre el largo canónico del timeframe (7, 12 o 6).
type StatisticsResponse struct {
	Success    bool                  `json:"success"`
	Timeframe  string                `json:"timeframe"`
	Window     WindowDTO             `json:"window"`
	Statistics []StatisticsBucketDTO `json:"statistics"`
}
