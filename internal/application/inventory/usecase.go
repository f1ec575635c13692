package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	invdomain "github.com/jhoicas/backoffice-api/internal/domain/inventory"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/internal/domain/statistics"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// InventoryUseCase CRUD de registros de inventario, monitoreo de alertas y estadísticas por calendario.
// Todas las operaciones son de una sola petición y sin estado compartido.
type InventoryUseCase struct {
	repo        repository.InventoryRepository
	productRepo repository.ProductRepository
	reports     AlertReportGenerator
	now         Clock
}

// NewInventoryUseCase construye el caso de uso. clock nil usa time.Now.
func NewInventoryUseCase(
	repo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	reports AlertReportGenerator,
	clock Clock,
) *InventoryUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &InventoryUseCase{
		repo:        repo,
		productRepo: productRepo,
		reports:     reports,
		now:         clock,
	}
}

// Create registra el stock de un producto existente.
// quantity es obligatorio; storageCost y alerts toman sus defaults (0, false/false).
func (uc *InventoryUseCase) Create(ctx context.Context, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if in.Quantity == nil || !validID(in.Product) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.Product)
	if err != nil {
		return nil, fmt.Errorf("lookup product: %w", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := uc.now()
	rec := &entity.InventoryRecord{
		ID:           uuid.New().String(),
		ProductID:    product.ID,
		Quantity:     *in.Quantity,
		StorageCost:  decimal.Zero,
		LastMovement: now,
		CreatedAt:    now,
		UpdatedAt:    now,
		Product:      summaryOf(product),
	}
	if in.StorageCost != nil {
		rec.StorageCost = *in.StorageCost
	}
	if in.Alerts != nil {
		rec.Alerts = entity.InventoryAlerts{
			LowStock:                in.Alerts.LowStock,
			HighTimeWithoutMovement: in.Alerts.HighTimeWithoutMovement,
		}
	}
	if err := validateRecord(rec); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return toInventoryResponse(rec), nil
}

// GetByID obtiene un registro con los datos de su producto.
func (uc *InventoryUseCase) GetByID(ctx context.Context, id string) (*dto.InventoryResponse, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	rec, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return toInventoryResponse(rec), nil
}

// List lista registros, más recientes primero.
func (uc *InventoryUseCase) List(ctx context.Context, limit, offset int) (*dto.InventoryListResponse, error) {
	limit, offset = clampPage(limit, offset)
	recs, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.InventoryListResponse{
		Success:          true,
		InventoryRecords: toInventoryResponses(recs),
		Page:             dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica los campos presentes y marca lastMovement = ahora.
func (uc *InventoryUseCase) Update(ctx context.Context, id string, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	rec, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}

	if in.Product != nil && *in.Product != rec.ProductID {
		if !validID(*in.Product) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(ctx, *in.Product)
		if err != nil {
			return nil, fmt.Errorf("lookup product: %w", err)
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		rec.ProductID = product.ID
		rec.Product = summaryOf(product)
	}
	if in.Quantity != nil {
		rec.Quantity = *in.Quantity
	}
	if in.StorageCost != nil {
		rec.StorageCost = *in.StorageCost
	}
	if in.Alerts != nil {
		if in.Alerts.LowStock != nil {
			rec.Alerts.LowStock = *in.Alerts.LowStock
		}
		if in.Alerts.HighTimeWithoutMovement != nil {
			rec.Alerts.HighTimeWithoutMovement = *in.Alerts.HighTimeWithoutMovement
		}
	}
	if err := validateRecord(rec); err != nil {
		return nil, err
	}

	now := uc.now()
	rec.LastMovement = now
	rec.UpdatedAt = now
	if err := uc.repo.Update(ctx, rec); err != nil {
		return nil, err
	}
	return toInventoryResponse(rec), nil
}

// Delete elimina físicamente el registro.
func (uc *InventoryUseCase) Delete(ctx context.Context, id string) error {
	if !validID(id) {
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

// Alerts devuelve los registros en stock bajo o sin movimiento según los umbrales del request.
// Un resultado vacío no es error.
func (uc *InventoryUseCase) Alerts(ctx context.Context, lowStockRaw, staleDaysRaw string) ([]dto.InventoryResponse, error) {
	th := invdomain.ResolveThresholds(uc.now(), lowStockRaw, staleDaysRaw)
	recs, err := uc.repo.FindAlerts(ctx, th)
	if err != nil {
		return nil, fmt.Errorf("inventory alerts: %w", err)
	}
	return toInventoryResponses(recs), nil
}

// AlertsReport genera el PDF del mismo listado que Alerts.
func (uc *InventoryUseCase) AlertsReport(ctx context.Context, lowStockRaw, staleDaysRaw string) ([]byte, error) {
	now := uc.now()
	th := invdomain.ResolveThresholds(now, lowStockRaw, staleDaysRaw)
	recs, err := uc.repo.FindAlerts(ctx, th)
	if err != nil {
		return nil, fmt.Errorf("inventory alerts: %w", err)
	}
	return uc.reports.GenerateAlertReport(ctx, AlertReport{
		GeneratedAt: now,
		Thresholds:  th,
		Records:     recs,
	})
}

// Statistics agrega cantidad y costo de almacenamiento por bucket de calendario.
//
// Flujo: timeframe → plan (ventana, unidad, secuencia) → SumByBucket → Assemble.
// La serie siempre tiene el largo canónico; los buckets sin datos van en cero.
func (uc *InventoryUseCase) Statistics(ctx context.Context, timeframeRaw string) (*dto.StatisticsResponse, error) {
	tf, err := statistics.ParseTimeframe(timeframeRaw)
	if err != nil {
		return nil, err
	}
	plan, err := statistics.PlanBuckets(tf, uc.now())
	if err != nil {
		return nil, err
	}
	totals, err := uc.repo.SumByBucket(ctx, plan.WindowStart, plan.WindowEnd, plan.Unit)
	if err != nil {
		return nil, fmt.Errorf("inventory statistics: %w", err)
	}

	buckets := statistics.Assemble(plan.Sequence, totals)
	out := make([]dto.StatisticsBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.StatisticsBucketDTO{
			Key:              b.Key,
			Label:            b.Label,
			TotalQuantity:    b.TotalQuantity,
			TotalStorageCost: b.TotalStorageCost,
		})
	}
	return &dto.StatisticsResponse{
		Success:    true,
		Timeframe:  string(plan.Timeframe),
		Window:     dto.WindowDTO{Start: plan.WindowStart, End: plan.WindowEnd},
		Statistics: out,
	}, nil
}

func validateRecord(rec *entity.InventoryRecord) error {
	if rec.Quantity < 0 || rec.StorageCost.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
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

func summaryOf(p *entity.Product) *entity.ProductSummary {
	return &entity.ProductSummary{Name: p.Name, Price: p.Price, CategoryID: p.CategoryID}
}

func toInventoryResponses(recs []*entity.InventoryRecord) []dto.InventoryResponse {
	out := make([]dto.InventoryResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, *toInventoryResponse(r))
	}
	return out
}

func toInventoryResponse(r *entity.InventoryRecord) *dto.InventoryResponse {
	resp := &dto.InventoryResponse{
		ID:           r.ID,
		ProductID:    r.ProductID,
		Quantity:     r.Quantity,
		StorageCost:  r.StorageCost,
		LastMovement: r.LastMovement,
		Alerts: dto.AlertsDTO{
			LowStock:                r.Alerts.LowStock,
			HighTimeWithoutMovement: r.Alerts.HighTimeWithoutMovement,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Product != nil {
		resp.Product = &dto.ProductSummaryResponse{
			ID:       r.ProductID,
			Name:     r.Product.Name,
			Price:    r.Product.Price,
			Category: r.Product.CategoryID,
		}
	}
	return resp
}
