package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/memory"
)

func newCampaignUC() *usecase.CampaignUseCase {
	return usecase.NewCampaignUseCase(memory.NewCampaignRepository(memory.NewStore()))
}

func campaignRequest(name string) dto.CreateCampaignRequest {
	return dto.CreateCampaignRequest{Store: "store-1", Name: name, Budget: ptr(decimal.NewFromInt(500))}
}

func TestCampaignUseCase_EstadoPorDefectoDrafts(t *testing.T) {
	uc := newCampaignUC()
	out, err := uc.Create(context.Background(), campaignRequest("Verano"))
	require.NoError(t, err)
	assert.Equal(t, "drafts", out.Status)
	assert.Nil(t, out.DurationDays)
	assert.NotNil(t, out.Products)
}

func TestCampaignUseCase_DuracionEnDias(t *testing.T) {
	uc := newCampaignUC()
	in := campaignRequest("Navidad")
	in.Duration = &dto.DurationDTO{
		StartDate: ptr(time.Date(2026, 12, 1, 15, 0, 0, 0, time.UTC)),
		EndDate:   ptr(time.Date(2026, 12, 31, 9, 0, 0, 0, time.UTC)),
	}
	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, out.DurationDays)
	assert.Equal(t, 31, *out.DurationDays, "ambos extremos incluidos")

	in.Duration = &dto.DurationDTO{StartDate: in.Duration.EndDate, EndDate: in.Duration.StartDate}
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCampaignUseCase_Validacion(t *testing.T) {
	uc := newCampaignUC()
	ctx := context.Background()

	noBudget := campaignRequest("X")
	noBudget.Budget = nil
	negative := campaignRequest("X")
	negative.Budget = ptr(decimal.NewFromInt(-1))
	badStatus := campaignRequest("X")
	badStatus.Status = "archived"
	noStore := campaignRequest("X")
	noStore.Store = ""
	badProduct := campaignRequest("X")
	badProduct.Products = []string{"p1"}

	for name, in := range map[string]dto.CreateCampaignRequest{
		"sin presupuesto": noBudget, "presupuesto negativo": negative, "estado inválido": badStatus,
		"sin tienda": noStore, "sin nombre": campaignRequest(" "), "producto no uuid": badProduct,
	} {
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}
}

func TestCampaignUseCase_ChangeStatusYHome(t *testing.T) {
	uc := newCampaignUC()
	ctx := context.Background()

	a, err := uc.Create(ctx, campaignRequest("A"))
	require.NoError(t, err)
	b, err := uc.Create(ctx, campaignRequest("B"))
	require.NoError(t, err)

	home, err := uc.HomeStatistics(ctx)
	require.NoError(t, err)
	assert.True(t, home.Success)
	assert.Zero(t, home.ActiveCampaignCount)

	out, err := uc.ChangeStatus(ctx, a.ID, "active")
	require.NoError(t, err)
	assert.Equal(t, "active", out.Status)
	_, err = uc.Update(ctx, b.ID, dto.UpdateCampaignRequest{Status: ptr("active")})
	require.NoError(t, err)

	home, err = uc.HomeStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), home.ActiveCampaignCount)

	_, err = uc.ChangeStatus(ctx, a.ID, "Active")
	assert.ErrorIs(t, err, usecase.ErrInvalidCampaignStatus)
	_, err = uc.ChangeStatus(ctx, a.ID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.ChangeStatus(ctx, uuid.New().String(), "paused")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Update(ctx, b.ID, dto.UpdateCampaignRequest{Status: ptr("")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCampaignUseCase_UpdateYDelete(t *testing.T) {
	uc := newCampaignUC()
	ctx := context.Background()
	created, err := uc.Create(ctx, campaignRequest("A"))
	require.NoError(t, err)

	out, err := uc.Update(ctx, created.ID, dto.UpdateCampaignRequest{
		Budget:      ptr(decimal.NewFromInt(900)),
		Performance: &dto.PerformanceDTO{Clicks: 10, Sales: 2},
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(900).Equal(out.Budget))
	assert.Equal(t, int64(10), out.Performance.Clicks)
	assert.Equal(t, "A", out.Name)

	_, err = uc.Update(ctx, created.ID, dto.UpdateCampaignRequest{Performance: &dto.PerformanceDTO{Clicks: -1}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := uc.List(ctx, 0, -5)
	require.NoError(t, err)
	assert.Len(t, list.Campaigns, 1)
	assert.Equal(t, 20, list.Page.Limit)
	assert.Equal(t, 0, list.Page.Offset)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.ErrorIs(t, uc.Delete(ctx, created.ID), domain.ErrNotFound)
}
