package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ProductUseCase casos de uso CRUD para productos. Es también el lookup que usa el inventario.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := time.Now().UTC()
	product := &entity.Product{
		ID:         uuid.New().String(),
		StoreID:    strings.TrimSpace(in.Store),
		Name:       strings.TrimSpace(in.Name),
		Price:      in.Price,
		Stock:      in.Stock,
		CategoryID: strings.TrimSpace(in.Category),
		Thumbnail:  in.Thumbnail,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto (campos presentes en la petición).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Category != nil {
		product.CategoryID = strings.TrimSpace(*in.Category)
	}
	if in.Thumbnail != nil {
		product.Thumbnail = *in.Thumbnail
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	limit, offset = clampPage(limit, offset)
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Success:  true,
		Products: out,
		Page:     dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto. No toca los registros de inventario que lo referencian.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotFound
	}
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *ProductUseCase) find(ctx context.Context, id string) (*entity.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func validateProduct(p *entity.Product) error {
	if p.Name == "" || p.Price.IsNegative() || p.Stock < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Store:     p.StoreID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		Category:  p.CategoryID,
		Thumbnail: p.Thumbnail,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
