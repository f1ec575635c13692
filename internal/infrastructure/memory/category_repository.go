package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación en memoria de CategoryRepository. Name es único.
type CategoryRepo struct {
	s *Store
}

// NewCategoryRepository construye el repositorio sobre s.
func NewCategoryRepository(s *Store) *CategoryRepo {
	return &CategoryRepo{s: s}
}

func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(c.Name, c.ID) {
		return domain.ErrDuplicate
	}
	r.s.categories[c.ID] = *c
	return nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.categories {
		if c.Name == name {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r *CategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(c.Name, c.ID) {
		return domain.ErrDuplicate
	}
	if _, ok := r.s.categories[c.ID]; ok {
		r.s.categories[c.ID] = *c
	}
	return nil
}

func (r *CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CategoryRepo) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[id]; !ok {
		return false, nil
	}
	delete(r.s.categories, id)
	return true, nil
}

// nameTaken se llama con el lock tomado.
func (r *CategoryRepo) nameTaken(name, exceptID string) bool {
	for id, c := range r.s.categories {
		if c.Name == name && id != exceptID {
			return true
		}
	}
	return false
}
