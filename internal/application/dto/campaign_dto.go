package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DurationDTO vigencia de una campaña.
type DurationDTO struct {
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// PerformanceDTO métricas de una campaña.
type PerformanceDTO struct {
	Clicks int64 `json:"clicks"`
	Sales  int64 `json:"sales"`
}

// CreateCampaignRequest body para POST /api/campaigns. Status vacío → "drafts".
type CreateCampaignRequest struct {
	Store          string           `json:"store"`
	Name           string           `json:"name"`
	Budget         *decimal.Decimal `json:"budget"`
	Duration       *DurationDTO     `json:"duration,omitempty"`
	Status         string           `json:"status,omitempty"`
	Products       []string         `json:"products"`
	TargetAudience string           `json:"targetAudience"`
	TargetLocation string           `json:"targetLocation"`
}

// UpdateCampaignRequest body para PUT /api/campaigns/:id. Solo se aplican los campos presentes.
type UpdateCampaignRequest struct {
	Name           *string          `json:"name,omitempty"`
	Budget         *decimal.Decimal `json:"budget,omitempty"`
	Duration       *DurationDTO     `json:"duration,omitempty"`
	Status         *string          `json:"status,omitempty"`
	Products       *[]string        `json:"products,omitempty"`
	TargetAudience *string          `json:"targetAudience,omitempty"`
	TargetLocation *string          `json:"targetLocation,omitempty"`
	Performance    *PerformanceDTO  `json:"performance,omitempty"`
}

// ChangeCampaignStatusRequest body para PATCH /api/campaigns/:id/status.
type ChangeCampaignStatusRequest struct {
	Status string `json:"status"`
}

// CampaignResponse salida de una campaña. DurationDays es null si falta alguna fecha.
type CampaignResponse struct {
	ID             string          `json:"id"`
	Store          string          `json:"store"`
	Name           string          `json:"name"`
	Budget         decimal.Decimal `json:"budget"`
	Duration       DurationDTO     `json:"duration"`
	DurationDays   *int            `json:"durationDays"`
	Status         string          `json:"status"`
	Products       []string        `json:"products"`
	TargetAudience string          `json:"targetAudience,omitempty"`
	TargetLocation string          `json:"targetLocation,omitempty"`
	Performance    PerformanceDTO  `json:"performance"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// CampaignEnvelope respuesta de una sola campaña.
type CampaignEnvelope struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Campaign CampaignResponse `json:"campaign"`
}

// CampaignListResponse lista paginada de campañas.
type CampaignListResponse struct {
	Success   bool               `json:"success"`
	Campaigns []CampaignResponse `json:"campaigns"`
	Page      PageResponse       `json:"page"`
}

// HomeStatisticsResponse tablero de inicio del back-office.
type HomeStatisticsResponse struct {
	Success             bool   `json:"success"`
	Message             string `json:"message"`
	ActiveCampaignCount int64  `json:"activeCampaignCount"`
}
