package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/inventory"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	invdomain "github.com/jhoicas/backoffice-api/internal/domain/inventory"
	"github.com/jhoicas/backoffice-api/internal/domain/statistics"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/memory"
)

// jueves 15 de octubre de 2026, 12:00 UTC
var fixedNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	uc       *inventory.InventoryUseCase
	inv      *memory.InventoryRepo
	products *memory.ProductRepo
	reports  *fakeReports
}

type fakeReports struct {
	got *inventory.AlertReport
	err error
}

func (f *fakeReports) GenerateAlertReport(_ context.Context, r inventory.AlertReport) ([]byte, error) {
	f.got = &r
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.3"), nil
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	f := &fixture{
		inv:      memory.NewInventoryRepository(store),
		products: memory.NewProductRepository(store),
		reports:  &fakeReports{},
	}
	f.uc = inventory.NewInventoryUseCase(f.inv, f.products, f.reports, func() time.Time { return fixedNow })
	return f
}

func (f *fixture) product(t *testing.T, name string, price int64) *entity.Product {
	t.Helper()
	p := &entity.Product{
		ID:         uuid.New().String(),
		StoreID:    "store-1",
		Name:       name,
		Price:      decimal.NewFromInt(price),
		CategoryID: "cat-1",
		CreatedAt:  fixedNow,
		UpdatedAt:  fixedNow,
	}
	require.NoError(t, f.products.Create(context.Background(), p))
	return p
}

func (f *fixture) record(t *testing.T, productID string, qty int64, cost string, createdAt, lastMovement time.Time, alerts entity.InventoryAlerts) *entity.InventoryRecord {
	t.Helper()
	rec := &entity.InventoryRecord{
		ID:           uuid.New().String(),
		ProductID:    productID,
		Quantity:     qty,
		StorageCost:  decimal.RequireFromString(cost),
		LastMovement: lastMovement,
		Alerts:       alerts,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	require.NoError(t, f.inv.Create(context.Background(), rec))
	return rec
}

func ptr[T any](v T) *T { return &v }

// ── Alerts ────────────────────────────────────────────────────────────────────

func TestAlerts_SeleccionaPorUmbrales(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Camiseta", 20)
	ctx := context.Background()

	low := f.record(t, p.ID, 2, "0", fixedNow, fixedNow, entity.InventoryAlerts{LowStock: true})
	f.record(t, p.ID, 2, "0", fixedNow, fixedNow, entity.InventoryAlerts{}) // alerta desactivada
	f.record(t, p.ID, 8, "0", fixedNow, fixedNow, entity.InventoryAlerts{LowStock: true})
	stale := f.record(t, p.ID, 100, "0", fixedNow, fixedNow.AddDate(0, 0, -45),
		entity.InventoryAlerts{HighTimeWithoutMovement: true})

	out, err := f.uc.Alerts(ctx, "", "")
	require.NoError(t, err)

	ids := make([]string, 0, len(out))
	for _, r := range out {
		ids = append(ids, r.ID)
	}
	assert.ElementsMatch(t, []string{low.ID, stale.ID}, ids)
}

func TestAlerts_UmbralesDelRequest(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Gorra", 10)

	rec := f.record(t, p.ID, 8, "0", fixedNow, fixedNow, entity.InventoryAlerts{LowStock: true})

	out, err := f.uc.Alerts(context.Background(), "10", "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, rec.ID, out[0].ID)

	out, err = f.uc.Alerts(context.Background(), "0", "")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestAlerts_AmbasCondicionesApareceUnaVez(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Buzo", 50)
	f.record(t, p.ID, 1, "0", fixedNow, fixedNow.AddDate(0, -2, 0),
		entity.InventoryAlerts{LowStock: true, HighTimeWithoutMovement: true})

	out, err := f.uc.Alerts(context.Background(), "5", "30")
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestAlerts_UmbralMalformadoUsaDefault(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Medias", 5)
	f.record(t, p.ID, 4, "0", fixedNow, fixedNow, entity.InventoryAlerts{LowStock: true})

	out, err := f.uc.Alerts(context.Background(), "abc", "-3")
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestAlerts_SinResultadosDevuelveSliceVacio(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.Alerts(context.Background(), "", "")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestAlerts_ProductoEliminadoDevuelveProductNull(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.product(t, "Chaqueta", 80)
	rec := f.record(t, p.ID, 1, "0", fixedNow, fixedNow, entity.InventoryAlerts{LowStock: true})
	_, err := f.products.Delete(ctx, p.ID)
	require.NoError(t, err)

	out, err := f.uc.Alerts(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, rec.ID, out[0].ID)
	assert.Equal(t, p.ID, out[0].ProductID)
	assert.Nil(t, out[0].Product)
}

func TestAlerts_EnriqueceConProducto(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Pantalón", 35)
	f.record(t, p.ID, 1, "0", fixedNow, fixedNow, entity.InventoryAlerts{LowStock: true})

	out, err := f.uc.Alerts(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Product)
	assert.Equal(t, "Pantalón", out[0].Product.Name)
	assert.True(t, decimal.NewFromInt(35).Equal(out[0].Product.Price))
	assert.Equal(t, "cat-1", out[0].Product.Category)
}

func TestAlertsReport_UsaMismaSeleccion(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Camiseta", 20)
	f.record(t, p.ID, 1, "0", fixedNow, fixedNow, entity.InventoryAlerts{LowStock: true})
	f.record(t, p.ID, 90, "0", fixedNow, fixedNow, entity.InventoryAlerts{LowStock: true})

	pdf, err := f.uc.AlertsReport(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(pdf))
	require.NotNil(t, f.reports.got)
	assert.Len(t, f.reports.got.Records, 1)
	assert.Equal(t, fixedNow, f.reports.got.GeneratedAt)
	assert.Equal(t, invdomain.DefaultLowStockThreshold, f.reports.got.Thresholds.LowStock)
}

func TestAlertsReport_ErrorDelGenerador(t *testing.T) {
	f := newFixture(t)
	f.reports.err = errors.New("sin fuentes")
	_, err := f.uc.AlertsReport(context.Background(), "", "")
	assert.Error(t, err)
}

// ── Statistics ────────────────────────────────────────────────────────────────

func TestStatistics_MensualAgrupaYRellena(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Camiseta", 20)
	f.record(t, p.ID, 10, "1.5", time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC), fixedNow, entity.InventoryAlerts{})
	f.record(t, p.ID, 20, "2", time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC), fixedNow, entity.InventoryAlerts{})
	f.record(t, p.ID, 30, "3", time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC), fixedNow, entity.InventoryAlerts{})
	// fuera de la ventana (año anterior)
	f.record(t, p.ID, 999, "9", time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC), fixedNow, entity.InventoryAlerts{})

	out, err := f.uc.Statistics(context.Background(), "monthly")
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, "monthly", out.Timeframe)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), out.Window.Start)
	assert.Equal(t, fixedNow, out.Window.End)
	require.Len(t, out.Statistics, 12)

	assert.Equal(t, "01", out.Statistics[0].Key)
	assert.Equal(t, "January", out.Statistics[0].Label)
	assert.Equal(t, int64(10), out.Statistics[0].TotalQuantity)
	assert.True(t, decimal.RequireFromString("1.5").Equal(out.Statistics[0].TotalStorageCost))

	assert.Equal(t, "02", out.Statistics[1].Key)
	assert.Equal(t, int64(50), out.Statistics[1].TotalQuantity)
	assert.True(t, decimal.NewFromInt(5).Equal(out.Statistics[1].TotalStorageCost))

	for _, b := range out.Statistics[2:] {
		assert.Zero(t, b.TotalQuantity, b.Key)
		assert.True(t, b.TotalStorageCost.IsZero(), b.Key)
	}
}

func TestStatistics_LargoCanonico(t *testing.T) {
	f := newFixture(t)
	cases := map[string]int{"weekly": 7, "monthly": 12, "yearly": 6}
	for tf, want := range cases {
		out, err := f.uc.Statistics(context.Background(), tf)
		require.NoError(t, err, tf)
		assert.Len(t, out.Statistics, want, tf)
	}
}

func TestStatistics_SemanalPorDiaDeSemana(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Camiseta", 20)
	// lunes 12 y miércoles 14 de octubre de 2026
	f.record(t, p.ID, 4, "0", time.Date(2026, 10, 12, 8, 0, 0, 0, time.UTC), fixedNow, entity.InventoryAlerts{})
	f.record(t, p.ID, 6, "0", time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC), fixedNow, entity.InventoryAlerts{})
	// domingo 11: semana anterior
	f.record(t, p.ID, 50, "0", time.Date(2026, 10, 11, 8, 0, 0, 0, time.UTC), fixedNow, entity.InventoryAlerts{})

	out, err := f.uc.Statistics(context.Background(), "weekly")
	require.NoError(t, err)
	require.Len(t, out.Statistics, 7)

	byKey := map[string]int64{}
	for _, b := range out.Statistics {
		byKey[b.Key] = b.TotalQuantity
	}
	assert.Equal(t, "0", out.Statistics[0].Key)
	assert.Equal(t, "Sunday", out.Statistics[0].Label)
	assert.Equal(t, int64(0), byKey["0"])
	assert.Equal(t, int64(4), byKey["1"])
	assert.Equal(t, int64(6), byKey["3"])
}

func TestStatistics_AnualSeisAnios(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Camiseta", 20)
	f.record(t, p.ID, 7, "1", time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC), fixedNow, entity.InventoryAlerts{})
	f.record(t, p.ID, 3, "1", time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC), fixedNow, entity.InventoryAlerts{})

	out, err := f.uc.Statistics(context.Background(), "yearly")
	require.NoError(t, err)
	require.Len(t, out.Statistics, 6)
	assert.Equal(t, "2021", out.Statistics[0].Key)
	assert.Equal(t, int64(7), out.Statistics[0].TotalQuantity)
	assert.Equal(t, "2026", out.Statistics[5].Key)
}

func TestStatistics_TimeframeInvalido(t *testing.T) {
	f := newFixture(t)
	for _, tf := range []string{"", "xyz", "Weekly", "  weekly "} {
		_, err := f.uc.Statistics(context.Background(), tf)
		assert.ErrorIs(t, err, statistics.ErrUnsupportedTimeframe, tf)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, tf)
	}
}

// ── CRUD ──────────────────────────────────────────────────────────────────────

func TestCreate(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Camiseta", 20)

	out, err := f.uc.Create(context.Background(), dto.CreateInventoryRequest{
		Product:  p.ID,
		Quantity: ptr(int64(12)),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), out.Quantity)
	assert.True(t, out.StorageCost.IsZero())
	assert.False(t, out.Alerts.LowStock)
	assert.Equal(t, fixedNow, out.LastMovement)
	assert.Equal(t, fixedNow, out.CreatedAt)
	require.NotNil(t, out.Product)
	assert.Equal(t, "Camiseta", out.Product.Name)
}

func TestCreate_Validaciones(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Camiseta", 20)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, dto.CreateInventoryRequest{Product: p.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantity obligatorio")

	_, err = f.uc.Create(ctx, dto.CreateInventoryRequest{Product: p.ID, Quantity: ptr(int64(-1))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantity negativo")

	neg := decimal.NewFromInt(-5)
	_, err = f.uc.Create(ctx, dto.CreateInventoryRequest{Product: p.ID, Quantity: ptr(int64(1)), StorageCost: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "storageCost negativo")

	_, err = f.uc.Create(ctx, dto.CreateInventoryRequest{Product: "no-uuid", Quantity: ptr(int64(1))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(ctx, dto.CreateInventoryRequest{Product: uuid.New().String(), Quantity: ptr(int64(1))})
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inexistente")
}

func TestUpdate_ActualizaLastMovement(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Camiseta", 20)
	created := fixedNow.AddDate(0, -1, 0)
	rec := f.record(t, p.ID, 5, "1", created, created, entity.InventoryAlerts{})

	out, err := f.uc.Update(context.Background(), rec.ID, dto.UpdateInventoryRequest{
		Quantity: ptr(int64(9)),
		Alerts:   &dto.AlertsPatch{LowStock: ptr(true)},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), out.Quantity)
	assert.True(t, out.Alerts.LowStock)
	assert.False(t, out.Alerts.HighTimeWithoutMovement)
	assert.Equal(t, fixedNow, out.LastMovement)

	got, err := f.uc.GetByID(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got.CreatedAt)
	assert.Equal(t, fixedNow, got.LastMovement)
}

func TestUpdate_Errores(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Camiseta", 20)
	rec := f.record(t, p.ID, 5, "1", fixedNow, fixedNow, entity.InventoryAlerts{})
	ctx := context.Background()

	_, err := f.uc.Update(ctx, uuid.New().String(), dto.UpdateInventoryRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Update(ctx, rec.ID, dto.UpdateInventoryRequest{Quantity: ptr(int64(-2))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Update(ctx, rec.ID, dto.UpdateInventoryRequest{Product: ptr(uuid.New().String())})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetListDelete(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Camiseta", 20)
	ctx := context.Background()
	older := f.record(t, p.ID, 1, "0", fixedNow.Add(-time.Hour), fixedNow, entity.InventoryAlerts{})
	newer := f.record(t, p.ID, 2, "0", fixedNow, fixedNow, entity.InventoryAlerts{})

	list, err := f.uc.List(ctx, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, 20, list.Page.Limit)
	assert.Equal(t, 0, list.Page.Offset)
	require.Len(t, list.InventoryRecords, 2)
	assert.Equal(t, newer.ID, list.InventoryRecords[0].ID)

	_, err = f.uc.GetByID(ctx, "no-uuid")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, f.uc.Delete(ctx, older.ID))
	assert.ErrorIs(t, f.uc.Delete(ctx, older.ID), domain.ErrNotFound)
	_, err = f.uc.GetByID(ctx, older.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
