package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var (
	minRating = decimal.NewFromInt(1)
	maxRating = decimal.NewFromInt(5)
)

// SupplierUseCase CRUD de proveedores por tienda.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create registra un proveedor. Requiere tienda y nombre; rating en 1..5 si viene.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	now := time.Now().UTC()
	s := &entity.Supplier{
		ID:         uuid.New().String(),
		StoreID:    strings.TrimSpace(in.Store),
		Name:       strings.TrimSpace(in.Name),
		ProductIDs: normalizeIDs(in.Products),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if in.Rating != nil {
		s.Rating = decimal.NewNullDecimal(*in.Rating)
	}
	if in.TotalBusiness != nil {
		s.TotalBusiness = *in.TotalBusiness
	}
	if err := validateSupplier(s); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// GetByID obtiene un proveedor.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	s, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// ListByStore proveedores de una tienda; tienda sin proveedores → lista vacía.
func (uc *SupplierUseCase) ListByStore(ctx context.Context, storeID string) ([]dto.SupplierResponse, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSupplierResponse(s))
	}
	return out, nil
}

// Update aplica los campos presentes. La tienda no cambia.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	s, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		s.Name = strings.TrimSpace(*in.Name)
	}
	if in.Rating != nil {
		s.Rating = decimal.NewNullDecimal(*in.Rating)
	}
	if in.Products != nil {
		s.ProductIDs = normalizeIDs(*in.Products)
	}
	if in.TotalBusiness != nil {
		s.TotalBusiness = *in.TotalBusiness
	}
	if err := validateSupplier(s); err != nil {
		return nil, err
	}
	s.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
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

func (uc *SupplierUseCase) find(ctx context.Context, id string) (*entity.Supplier, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func validateSupplier(s *entity.Supplier) error {
	if s.StoreID == "" || s.Name == "" || s.TotalBusiness.IsNegative() {
		return domain.ErrInvalidInput
	}
	if s.Rating.Valid && (s.Rating.Decimal.LessThan(minRating) || s.Rating.Decimal.GreaterThan(maxRating)) {
		return domain.ErrInvalidInput
	}
	return validIDs(s.ProductIDs)
}

// normalizeIDs recorta espacios y nunca devuelve nil.
func normalizeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, strings.TrimSpace(id))
	}
	return out
}

// validIDs exige que cada referencia a producto sea un UUID.
func validIDs(ids []string) error {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	out := &dto.SupplierResponse{
		ID:            s.ID,
		Store:         s.StoreID,
		Name:          s.Name,
		Products:      s.ProductIDs,
		TotalBusiness: s.TotalBusiness,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	if out.Products == nil {
		out.Products = []string{}
	}
	if s.Rating.Valid {
		r := s.Rating.Decimal
		out.Rating = &r
	}
	return out
}
