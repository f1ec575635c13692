package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse(t *testing.T) {
	tok, err := Generate("secret", "user-1", "store-1", RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := Parse("secret", tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "store-1", claims.StoreID)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := Generate("secret", "user-1", "", RoleStaff, time.Hour)
	require.NoError(t, err)

	_, err = Parse("otro", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := Generate("secret", "user-1", "", RoleStaff, -time.Minute)
	require.NoError(t, err)

	_, err = Parse("secret", tok)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := Generate("", "u", "", RoleStaff, time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
	_, err = Parse("", "x.y.z")
	assert.ErrorIs(t, err, ErrEmptySecret)
}
