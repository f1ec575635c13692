package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/memory"
)

func newSupplierUC() *usecase.SupplierUseCase {
	return usecase.NewSupplierUseCase(memory.NewSupplierRepository(memory.NewStore()))
}

func TestSupplierUseCase_CreateListUpdate(t *testing.T) {
	uc := newSupplierUC()
	ctx := context.Background()
	productID := uuid.New().String()

	created, err := uc.Create(ctx, dto.CreateSupplierRequest{
		Store: "store-1", Name: " Textiles SA ", Rating: ptr(decimal.RequireFromString("4.5")),
		Products: []string{productID}, TotalBusiness: ptr(decimal.NewFromInt(1200)),
	})
	require.NoError(t, err)
	assert.Equal(t, "Textiles SA", created.Name)
	require.NotNil(t, created.Rating)
	assert.True(t, decimal.RequireFromString("4.5").Equal(*created.Rating))
	assert.Equal(t, []string{productID}, created.Products)

	_, err = uc.Create(ctx, dto.CreateSupplierRequest{Store: "store-2", Name: "Otro"})
	require.NoError(t, err)

	list, err := uc.ListByStore(ctx, "store-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	empty, err := uc.ListByStore(ctx, "store-9")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	updated, err := uc.Update(ctx, created.ID, dto.UpdateSupplierRequest{Rating: ptr(decimal.NewFromInt(2))})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(2).Equal(*updated.Rating))
	assert.Equal(t, "Textiles SA", updated.Name, "campos ausentes no cambian")
	assert.Equal(t, "store-1", updated.Store)
}

func TestSupplierUseCase_SinRatingEsNull(t *testing.T) {
	uc := newSupplierUC()
	out, err := uc.Create(context.Background(), dto.CreateSupplierRequest{Store: "store-1", Name: "Sin calificar"})
	require.NoError(t, err)
	assert.Nil(t, out.Rating)
	assert.NotNil(t, out.Products)
	assert.True(t, out.TotalBusiness.IsZero())
}

func TestSupplierUseCase_Validacion(t *testing.T) {
	uc := newSupplierUC()
	ctx := context.Background()
	cases := map[string]dto.CreateSupplierRequest{
		"sin tienda":       {Name: "X"},
		"sin nombre":       {Store: "store-1", Name: "  "},
		"rating bajo":      {Store: "store-1", Name: "X", Rating: ptr(decimal.RequireFromString("0.5"))},
		"rating alto":      {Store: "store-1", Name: "X", Rating: ptr(decimal.RequireFromString("5.01"))},
		"negocio negativo": {Store: "store-1", Name: "X", TotalBusiness: ptr(decimal.NewFromInt(-1))},
		"producto no uuid": {Store: "store-1", Name: "X", Products: []string{"abc"}},
	}
	for name, in := range cases {
		_, err := uc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}

	list, err := uc.ListByStore(ctx, " ")
	assert.Nil(t, list)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSupplierUseCase_Delete(t *testing.T) {
	uc := newSupplierUC()
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.CreateSupplierRequest{Store: "store-1", Name: "X"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.ErrorIs(t, uc.Delete(ctx, created.ID), domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, "no-uuid"), domain.ErrNotFound)

	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
