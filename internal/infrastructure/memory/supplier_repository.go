package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación en memoria de SupplierRepository.
type SupplierRepo struct {
	s *Store
}

// NewSupplierRepository construye el repositorio sobre s.
func NewSupplierRepository(s *Store) *SupplierRepo {
	return &SupplierRepo{s: s}
}

func (r *SupplierRepo) Create(_ context.Context, sup *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.suppliers[sup.ID] = cloneSupplier(*sup)
	return nil
}

func (r *SupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sup, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	out := cloneSupplier(sup)
	return &out, nil
}

func (r *SupplierRepo) ListByStore(_ context.Context, storeID string) ([]*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Supplier, 0)
	for _, sup := range r.s.suppliers {
		if sup.StoreID != storeID {
			continue
		}
		sup := cloneSupplier(sup)
		out = append(out, &sup)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *SupplierRepo) Update(_ context.Context, sup *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suppliers[sup.ID]; ok {
		r.s.suppliers[sup.ID] = cloneSupplier(*sup)
	}
	return nil
}

func (r *SupplierRepo) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suppliers[id]; !ok {
		return false, nil
	}
	delete(r.s.suppliers, id)
	return true, nil
}

// cloneSupplier evita compartir el slice de productos con el llamador.
func cloneSupplier(sup entity.Supplier) entity.Supplier {
	sup.ProductIDs = slices.Clone(sup.ProductIDs)
	return sup
}
