package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignStatus estado de una campaña de marketing.
type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
	CampaignPaused    CampaignStatus = "paused"
	CampaignDrafts    CampaignStatus = "drafts"
)

// CampaignStatuses estados aceptados, en el orden en que se listan al cliente.
var CampaignStatuses = []CampaignStatus{CampaignActive, CampaignCompleted, CampaignPaused, CampaignDrafts}

// Valid indica si s es uno de los estados aceptados.
func (s CampaignStatus) Valid() bool {
	for _, v := range CampaignStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// CampaignDuration vigencia de la campaña; ambos extremos son opcionales.
type CampaignDuration struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// Days días de calendario entre inicio y fin, ambos incluidos. ok=false si falta un extremo.
func (d CampaignDuration) Days() (days int, ok bool) {
	if d.StartDate == nil || d.EndDate == nil {
		return 0, false
	}
	start := truncateDay(*d.StartDate)
	end := truncateDay(*d.EndDate)
	return int(end.Sub(start).Hours()/24) + 1, true
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CampaignPerformance métricas acumuladas de la campaña.
type CampaignPerformance struct {
	Clicks int64
	Sales  int64
}

// Campaign campaña de marketing de una tienda.
type Campaign struct {
	ID             string
	StoreID        string
	Name           string
	Budget         decimal.Decimal
	Duration       CampaignDuration
	Status         CampaignStatus
	ProductIDs     []string
	TargetAudience string
	TargetLocation string
	Performance    CampaignPerformance
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
