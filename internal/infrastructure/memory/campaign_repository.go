package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.CampaignRepository = (*CampaignRepo)(nil)

// CampaignRepo implementación en memoria de CampaignRepository.
type CampaignRepo struct {
	s *Store
}

// NewCampaignRepository construye el repositorio sobre s.
func NewCampaignRepository(s *Store) *CampaignRepo {
	return &CampaignRepo{s: s}
}

func (r *CampaignRepo) Create(_ context.Context, c *entity.Campaign) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.campaigns[c.ID] = cloneCampaign(*c)
	return nil
}

func (r *CampaignRepo) GetByID(_ context.Context, id string) (*entity.Campaign, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.campaigns[id]
	if !ok {
		return nil, nil
	}
	out := cloneCampaign(c)
	return &out, nil
}

func (r *CampaignRepo) List(_ context.Context, limit, offset int) ([]*entity.Campaign, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]*entity.Campaign, 0, len(r.s.campaigns))
	for _, c := range r.s.campaigns {
		c := cloneCampaign(c)
		all = append(all, &c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if offset >= len(all) {
		return []*entity.Campaign{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *CampaignRepo) Update(_ context.Context, c *entity.Campaign) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.campaigns[c.ID]; ok {
		r.s.campaigns[c.ID] = cloneCampaign(*c)
	}
	return nil
}

func (r *CampaignRepo) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.campaigns[id]; !ok {
		return false, nil
	}
	delete(r.s.campaigns, id)
	return true, nil
}

func (r *CampaignRepo) CountByStatus(_ context.Context, status entity.CampaignStatus) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, c := range r.s.campaigns {
		if c.Status == status {
			n++
		}
	}
	return n, nil
}

func cloneCampaign(c entity.Campaign) entity.Campaign {
	c.ProductIDs = slices.Clone(c.ProductIDs)
	return c
}
