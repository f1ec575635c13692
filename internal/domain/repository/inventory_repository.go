package repository

import (
	"context"
	"time"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/inventory"
	"github.com/jhoicas/backoffice-api/internal/domain/statistics"
)

// InventoryRepository define el puerto de persistencia para InventoryRecord (DIP).
// Las lecturas devuelven el registro con su ProductSummary cuando la referencia resuelve.
type InventoryRepository interface {
	Create(ctx context.Context, rec *entity.InventoryRecord) error
	GetByID(ctx context.Context, id string) (*entity.InventoryRecord, error)
	List(ctx context.Context, limit, offset int) ([]*entity.InventoryRecord, error)
	Update(ctx context.Context, rec *entity.InventoryRecord) error
	// Delete devuelve false si el registro no existía.
	Delete(ctx context.Context, id string) (bool, error)

	// FindAlerts devuelve, una sola vez cada uno, los registros que cumplen
	// th.Matches. Lectura pura; no hay orden garantizado.
	FindAlerts(ctx context.Context, th inventory.Thresholds) ([]*entity.InventoryRecord, error)

	// SumByBucket suma quantity y storage_cost de los registros con created_at en [from, to],
	// agrupados por unit.KeyOf(created_at). Solo aparecen las claves con datos.
	SumByBucket(ctx context.Context, from, to time.Time, unit statistics.BucketUnit) (map[string]statistics.Totals, error)
}
