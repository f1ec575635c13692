package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/jhoicas/backoffice-api/internal/application/inventory"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/inventory"
)

func TestGenerateAlertReport(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	th := inventory.ResolveThresholds(now, "", "")
	records := []*entity.InventoryRecord{
		{
			ID: "a", ProductID: "p1", Quantity: 2, StorageCost: decimal.NewFromInt(10),
			LastMovement: now, Alerts: entity.InventoryAlerts{LowStock: true},
			Product: &entity.ProductSummary{Name: "Camiseta", Price: decimal.NewFromInt(20)},
		},
		{
			ID: "b", ProductID: "p2", Quantity: 50, StorageCost: decimal.Zero,
			LastMovement: now.AddDate(0, -3, 0), Alerts: entity.InventoryAlerts{HighTimeWithoutMovement: true},
		},
	}

	out, err := NewMarotoPDFGenerator("backoffice").GenerateAlertReport(context.Background(), appinventory.AlertReport{
		GeneratedAt: now,
		Thresholds:  th,
		Records:     records,
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateAlertReport_SinRegistros(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	out, err := NewMarotoPDFGenerator("").GenerateAlertReport(context.Background(), appinventory.AlertReport{
		GeneratedAt: now,
		Thresholds:  inventory.ResolveThresholds(now, "", ""),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestTriggered(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	th := inventory.ResolveThresholds(now, "5", "30")
	rec := &entity.InventoryRecord{
		Quantity:     1,
		LastMovement: now.AddDate(0, 0, -40),
		Alerts:       entity.InventoryAlerts{LowStock: true, HighTimeWithoutMovement: true},
	}
	assert.Equal(t, "stock bajo, sin movimiento", triggered(rec, th))

	rec.Quantity = 9
	assert.Equal(t, "sin movimiento", triggered(rec, th))
}
