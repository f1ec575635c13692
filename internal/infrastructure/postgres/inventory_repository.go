package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/inventory"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/internal/domain/statistics"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// selectInventory lee el registro con los campos del producto (LEFT JOIN: una referencia
// colgante devuelve NULL en p.* y el registro no se descarta).
const selectInventory = `
	SELECT i.id::text, i.product_id::text, i.quantity, i.storage_cost, i.last_movement,
	       i.alert_low_stock, i.alert_high_time_without_movement, i.created_at, i.updated_at,
	       p.name, p.price, p.category_id
	FROM inventory i
	LEFT JOIN products p ON p.id = i.product_id`

// bucketKeyExpr expresión SQL de la clave de bucket; debe producir exactamente BucketUnit.KeyOf.
var bucketKeyExpr = map[statistics.BucketUnit]string{
	statistics.UnitWeekday: `EXTRACT(DOW FROM created_at AT TIME ZONE 'UTC')::int::text`,
	statistics.UnitMonth:   `to_char(created_at AT TIME ZONE 'UTC', 'MM')`,
	statistics.UnitYear:    `to_char(created_at AT TIME ZONE 'UTC', 'YYYY')`,
}

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

func (r *InventoryRepo) Create(ctx context.Context, rec *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory (id, product_id, quantity, storage_cost, last_movement,
		                       alert_low_stock, alert_high_time_without_movement, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.ProductID, rec.Quantity, rec.StorageCost, rec.LastMovement,
		rec.Alerts.LowStock, rec.Alerts.HighTimeWithoutMovement, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.InventoryRecord, error) {
	rec, err := scanInventory(r.q.QueryRow(ctx, selectInventory+` WHERE i.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return rec, nil
}

func (r *InventoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.InventoryRecord, error) {
	rows, err := r.q.Query(ctx, selectInventory+` ORDER BY i.created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return collectInventory(rows)
}

// Update no modifica created_at.
func (r *InventoryRepo) Update(ctx context.Context, rec *entity.InventoryRecord) error {
	query := `
		UPDATE inventory
		SET product_id = $2, quantity = $3, storage_cost = $4, last_movement = $5,
		    alert_low_stock = $6, alert_high_time_without_movement = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.ProductID, rec.Quantity, rec.StorageCost, rec.LastMovement,
		rec.Alerts.LowStock, rec.Alerts.HighTimeWithoutMovement, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}

func (r *InventoryRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete inventory: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// FindAlerts un único WHERE con OR: un registro que cumple ambas condiciones sale una vez.
func (r *InventoryRepo) FindAlerts(ctx context.Context, th inventory.Thresholds) ([]*entity.InventoryRecord, error) {
	query := selectInventory + `
		WHERE (i.alert_low_stock AND i.quantity < $1)
		   OR (i.alert_high_time_without_movement AND i.last_movement < $2)`
	rows, err := r.q.Query(ctx, query, th.LowStock, th.StaleDate)
	if err != nil {
		return nil, fmt.Errorf("find inventory alerts: %w", err)
	}
	return collectInventory(rows)
}

// SumByBucket agrupa en la base con la expresión de clave de la unidad.
func (r *InventoryRepo) SumByBucket(
	ctx context.Context,
	from, to time.Time,
	unit statistics.BucketUnit,
) (map[string]statistics.Totals, error) {
	expr, ok := bucketKeyExpr[unit]
	if !ok {
		return nil, fmt.Errorf("sum by bucket: unidad %s sin expresión SQL", unit)
	}
	query := fmt.Sprintf(`
	SELECT
	    %s                                          AS bucket,
	    COALESCE(SUM(quantity), 0)::bigint          AS total_quantity,
	    COALESCE(SUM(COALESCE(storage_cost, 0)), 0) AS total_storage_cost
	FROM inventory
	WHERE created_at BETWEEN $1 AND $2
	GROUP BY bucket`, expr)

	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("sum by bucket: %w", err)
	}
	defer rows.Close()

	out := make(map[string]statistics.Totals)
	for rows.Next() {
		var (
			key string
			t   statistics.Totals
		)
		if err := rows.Scan(&key, &t.Quantity, &t.StorageCost); err != nil {
			return nil, fmt.Errorf("sum by bucket scan: %w", err)
		}
		out[key] = t
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sum by bucket rows: %w", err)
	}
	return out, nil
}

func collectInventory(rows pgx.Rows) ([]*entity.InventoryRecord, error) {
	defer rows.Close()
	list := make([]*entity.InventoryRecord, 0)
	for rows.Next() {
		rec, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

func scanInventory(row pgx.Row) (*entity.InventoryRecord, error) {
	var (
		rec         entity.InventoryRecord
		productName *string
		price       decimal.NullDecimal
		categoryID  *string
	)
	err := row.Scan(
		&rec.ID, &rec.ProductID, &rec.Quantity, &rec.StorageCost, &rec.LastMovement,
		&rec.Alerts.LowStock, &rec.Alerts.HighTimeWithoutMovement, &rec.CreatedAt, &rec.UpdatedAt,
		&productName, &price, &categoryID,
	)
	if err != nil {
		return nil, err
	}
	if productName != nil {
		rec.Product = &entity.ProductSummary{
			Name:       *productName,
			Price:      price.Decimal,
			CategoryID: nullableString(categoryID),
		}
	}
	return &rec, nil
}
