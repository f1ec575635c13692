package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// ErrInvalidCampaignStatus estado fuera de active|completed|paused|drafts.
var ErrInvalidCampaignStatus = fmt.Errorf("%w: estado inválido, permitidos: active, completed, paused, drafts", domain.ErrInvalidInput)

// CampaignUseCase CRUD de campañas, cambio de estado y conteo para el tablero de inicio.
type CampaignUseCase struct {
	repo repository.CampaignRepository
}

// NewCampaignUseCase construye el caso de uso.
func NewCampaignUseCase(repo repository.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo}
}

// Create crea una campaña; sin estado queda en "drafts".
func (uc *CampaignUseCase) Create(ctx context.Context, in dto.CreateCampaignRequest) (*dto.CampaignResponse, error) {
	if in.Budget == nil {
		return nil, domain.ErrInvalidInput
	}
	status, err := parseCampaignStatus(in.Status, entity.CampaignDrafts)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	c := &entity.Campaign{
		ID:             uuid.New().String(),
		StoreID:        strings.TrimSpace(in.Store),
		Name:           strings.TrimSpace(in.Name),
		Budget:         *in.Budget,
		Status:         status,
		ProductIDs:     normalizeIDs(in.Products),
		TargetAudience: in.TargetAudience,
		TargetLocation: in.TargetLocation,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.Duration != nil {
		c.Duration = entity.CampaignDuration{StartDate: in.Duration.StartDate, EndDate: in.Duration.EndDate}
	}
	if err := validateCampaign(c); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCampaignResponse(c), nil
}

// GetByID obtiene una campaña.
func (uc *CampaignUseCase) GetByID(ctx context.Context, id string) (*dto.CampaignResponse, error) {
	c, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCampaignResponse(c), nil
}

// List campañas de todas las tiendas con paginación.
func (uc *CampaignUseCase) List(ctx context.Context, limit, offset int) (*dto.CampaignListResponse, error) {
	limit, offset = clampPage(limit, offset)
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CampaignResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCampaignResponse(c))
	}
	return &dto.CampaignListResponse{
		Success:   true,
		Campaigns: out,
		Page:      dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica los campos presentes. Duration reemplaza ambas fechas.
func (uc *CampaignUseCase) Update(ctx context.Context, id string, in dto.UpdateCampaignRequest) (*dto.CampaignResponse, error) {
	c, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Status != nil {
		if c.Status, err = parseCampaignStatus(*in.Status, ""); err != nil {
			return nil, err
		}
	}
	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Budget != nil {
		c.Budget = *in.Budget
	}
	if in.Duration != nil {
		c.Duration = entity.CampaignDuration{StartDate: in.Duration.StartDate, EndDate: in.Duration.EndDate}
	}
	if in.Products != nil {
		c.ProductIDs = normalizeIDs(*in.Products)
	}
	if in.TargetAudience != nil {
		c.TargetAudience = *in.TargetAudience
	}
	if in.TargetLocation != nil {
		c.TargetLocation = *in.TargetLocation
	}
	if in.Performance != nil {
		c.Performance = entity.CampaignPerformance{Clicks: in.Performance.Clicks, Sales: in.Performance.Sales}
	}
	if err := validateCampaign(c); err != nil {
		return nil, err
	}
	return uc.save(ctx, c)
}

// ChangeStatus cambia solo el estado. El estado se valida antes de buscar la campaña.
func (uc *CampaignUseCase) ChangeStatus(ctx context.Context, id, status string) (*dto.CampaignResponse, error) {
	st, err := parseCampaignStatus(status, "")
	if err != nil {
		return nil, err
	}
	c, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Status = st
	return uc.save(ctx, c)
}

// Delete elimina una campaña.
func (uc *CampaignUseCase) Delete(ctx context.Context, id string) error {
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

// HomeStatistics cuenta las campañas activas de todas las tiendas.
func (uc *CampaignUseCase) HomeStatistics(ctx context.Context) (*dto.HomeStatisticsResponse, error) {
	n, err := uc.repo.CountByStatus(ctx, entity.CampaignActive)
	if err != nil {
		return nil, err
	}
	return &dto.HomeStatisticsResponse{
		Success:             true,
		Message:             "conteo de campañas activas obtenido",
		ActiveCampaignCount: n,
	}, nil
}

func (uc *CampaignUseCase) save(ctx context.Context, c *entity.Campaign) (*dto.CampaignResponse, error) {
	c.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCampaignResponse(c), nil
}

func (uc *CampaignUseCase) find(ctx context.Context, id string) (*entity.Campaign, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// parseCampaignStatus valida el estado literal; vacío toma def (o falla si def es "").
func parseCampaignStatus(raw string, def entity.CampaignStatus) (entity.CampaignStatus, error) {
	if raw == "" && def != "" {
		return def, nil
	}
	st := entity.CampaignStatus(raw)
	if !st.Valid() {
		return "", ErrInvalidCampaignStatus
	}
	return st, nil
}

func validateCampaign(c *entity.Campaign) error {
	if c.StoreID == "" || c.Name == "" || c.Budget.IsNegative() {
		return domain.ErrInvalidInput
	}
	if c.Performance.Clicks < 0 || c.Performance.Sales < 0 {
		return domain.ErrInvalidInput
	}
	d := c.Duration
	if d.StartDate != nil && d.EndDate != nil && d.EndDate.Before(*d.StartDate) {
		return fmt.Errorf("%w: endDate anterior a startDate", domain.ErrInvalidInput)
	}
	return validIDs(c.ProductIDs)
}

func toCampaignResponse(c *entity.Campaign) *dto.CampaignResponse {
	out := &dto.CampaignResponse{
		ID:             c.ID,
		Store:          c.StoreID,
		Name:           c.Name,
		Budget:         c.Budget,
		Duration:       dto.DurationDTO{StartDate: c.Duration.StartDate, EndDate: c.Duration.EndDate},
		Status:         string(c.Status),
		Products:       c.ProductIDs,
		TargetAudience: c.TargetAudience,
		TargetLocation: c.TargetLocation,
		Performance:    dto.PerformanceDTO{Clicks: c.Performance.Clicks, Sales: c.Performance.Sales},
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	if out.Products == nil {
		out.Products = []string{}
	}
	if days, ok := c.Duration.Days(); ok {
		out.DurationDays = &days
	}
	return out
}
