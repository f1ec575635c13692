package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// CampaignRepository define el puerto de persistencia para Campaign (DIP).
type CampaignRepository interface {
	Create(ctx context.Context, campaign *entity.Campaign) error
	GetByID(ctx context.Context, id string) (*entity.Campaign, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Campaign, error)
	Update(ctx context.Context, campaign *entity.Campaign) error
	Delete(ctx context.Context, id string) (bool, error)
	// CountByStatus cuenta campañas en el estado dado, de todas las tiendas.
	CountByStatus(ctx context.Context, status entity.CampaignStatus) (int64, error)
}
