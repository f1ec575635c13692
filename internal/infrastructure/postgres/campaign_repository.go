package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.CampaignRepository = (*CampaignRepo)(nil)

const selectCampaign = `
	SELECT id::text, store_id, name, budget, start_date, end_date, status, product_ids,
	       target_audience, target_location, clicks, sales, created_at, updated_at
	FROM campaigns`

// CampaignRepo implementación de CampaignRepository sobre PostgreSQL.
type CampaignRepo struct {
	q Querier
}

// NewCampaignRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCampaignRepository(q Querier) *CampaignRepo {
	return &CampaignRepo{q: q}
}

func (r *CampaignRepo) Create(ctx context.Context, c *entity.Campaign) error {
	query := `
		INSERT INTO campaigns (id, store_id, name, budget, start_date, end_date, status, product_ids,
		                       target_audience, target_location, clicks, sales, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.StoreID, c.Name, c.Budget, c.Duration.StartDate, c.Duration.EndDate, string(c.Status),
		textArray(c.ProductIDs), c.TargetAudience, c.TargetLocation, c.Performance.Clicks, c.Performance.Sales,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// GetByID (nil, nil) si no existe.
func (r *CampaignRepo) GetByID(ctx context.Context, id string) (*entity.Campaign, error) {
	c, err := scanCampaign(r.q.QueryRow(ctx, selectCampaign+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return c, nil
}

// List campañas de todas las tiendas, más recientes primero.
func (r *CampaignRepo) List(ctx context.Context, limit, offset int) ([]*entity.Campaign, error) {
	rows, err := r.q.Query(ctx, selectCampaign+` ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Campaign, 0)
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CampaignRepo) Update(ctx context.Context, c *entity.Campaign) error {
	query := `
		UPDATE campaigns SET name = $2, budget = $3, start_date = $4, end_date = $5, status = $6,
		       product_ids = $7, target_audience = $8, target_location = $9, clicks = $10, sales = $11,
		       updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Budget, c.Duration.StartDate, c.Duration.EndDate, string(c.Status),
		textArray(c.ProductIDs), c.TargetAudience, c.TargetLocation, c.Performance.Clicks, c.Performance.Sales,
		c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	return nil
}

func (r *CampaignRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete campaign: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *CampaignRepo) CountByStatus(ctx context.Context, status entity.CampaignStatus) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM campaigns WHERE status = $1`, string(status)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count campaigns: %w", err)
	}
	return n, nil
}

func scanCampaign(row pgx.Row) (*entity.Campaign, error) {
	var (
		c      entity.Campaign
		status string
	)
	if err := row.Scan(&c.ID, &c.StoreID, &c.Name, &c.Budget, &c.Duration.StartDate, &c.Duration.EndDate, &status,
		&c.ProductIDs, &c.TargetAudience, &c.TargetLocation, &c.Performance.Clicks, &c.Performance.Sales,
		&c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Status = entity.CampaignStatus(status)
	return &c, nil
}
