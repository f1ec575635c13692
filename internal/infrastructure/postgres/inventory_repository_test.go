package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/backoffice-api/internal/domain/statistics"
)

func TestBucketKeyExpr_CubreTodasLasUnidades(t *testing.T) {
	for _, u := range []statistics.BucketUnit{statistics.UnitWeekday, statistics.UnitMonth, statistics.UnitYear} {
		expr, ok := bucketKeyExpr[u]
		assert.True(t, ok, u.String())
		assert.Contains(t, expr, "AT TIME ZONE 'UTC'", u.String())
	}
}

func TestSchema_DeclaraTablas(t *testing.T) {
	for _, table := range []string{"categories", "products", "inventory", "suppliers", "campaigns"} {
		assert.True(t, strings.Contains(schemaSQL, "CREATE TABLE IF NOT EXISTS "+table), table)
	}
}

func TestNullableString(t *testing.T) {
	s := "cat"
	assert.Equal(t, "cat", nullableString(&s))
	assert.Equal(t, "", nullableString(nil))
}

func TestTextArray_NuncaNil(t *testing.T) {
	assert.NotNil(t, textArray(nil))
	assert.Equal(t, []string{"a"}, textArray([]string{"a"}))
}
