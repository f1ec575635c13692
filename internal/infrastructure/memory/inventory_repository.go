package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/inventory"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/internal/domain/statistics"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación en memoria de InventoryRepository.
type InventoryRepo struct {
	s *Store
}

// NewInventoryRepository construye el repositorio sobre s.
func NewInventoryRepository(s *Store) *InventoryRepo {
	return &InventoryRepo{s: s}
}

func (r *InventoryRepo) Create(_ context.Context, rec *entity.InventoryRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := *rec
	stored.Product = nil
	r.s.inventory[rec.ID] = stored
	return nil
}

func (r *InventoryRepo) GetByID(_ context.Context, id string) (*entity.InventoryRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.inventory[id]
	if !ok {
		return nil, nil
	}
	return r.s.withProduct(rec), nil
}

func (r *InventoryRepo) List(_ context.Context, limit, offset int) ([]*entity.InventoryRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]*entity.InventoryRecord, 0, len(r.s.inventory))
	for _, rec := range r.s.inventory {
		all = append(all, r.s.withProduct(rec))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if offset >= len(all) {
		return []*entity.InventoryRecord{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *InventoryRepo) Update(_ context.Context, rec *entity.InventoryRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.inventory[rec.ID]
	if !ok {
		return nil
	}
	created := stored.CreatedAt
	stored = *rec
	stored.CreatedAt = created
	stored.Product = nil
	r.s.inventory[rec.ID] = stored
	return nil
}

func (r *InventoryRepo) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.inventory[id]; !ok {
		return false, nil
	}
	delete(r.s.inventory, id)
	return true, nil
}

func (r *InventoryRepo) FindAlerts(_ context.Context, th inventory.Thresholds) ([]*entity.InventoryRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.InventoryRecord, 0)
	for _, rec := range r.s.inventory {
		rec := rec
		if th.Matches(&rec) {
			out = append(out, r.s.withProduct(rec))
		}
	}
	return out, nil
}

func (r *InventoryRepo) SumByBucket(_ context.Context, from, to time.Time, unit statistics.BucketUnit) (map[string]statistics.Totals, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[string]statistics.Totals)
	for _, rec := range r.s.inventory {
		if rec.CreatedAt.Before(from) || rec.CreatedAt.After(to) {
			continue
		}
		key := unit.KeyOf(rec.CreatedAt)
		t := out[key]
		t.Quantity += rec.Quantity
		t.StorageCost = t.StorageCost.Add(rec.StorageCost)
		out[key] = t
	}
	return out, nil
}
