// Package inventory contiene las reglas de dominio del monitoreo de inventario:
// resolución de umbrales y el predicado de alerta.
package inventory

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

const (
	// DefaultLowStockThreshold cantidad por debajo de la cual un registro está en stock bajo.
	DefaultLowStockThreshold = 5
	// DefaultStaleDays días sin movimiento a partir de los cuales un registro se considera estancado.
	DefaultStaleDays = 30
	// MaxStaleDays tope de días sin movimiento (100 años); por encima la fecha de corte
	// sale del rango de TIMESTAMPTZ.
	MaxStaleDays = 36500
	// MaxLowStockThreshold tope del umbral de stock bajo; cabe en BIGINT y en int de 32 bits.
	MaxLowStockThreshold = math.MaxInt32
)

// Thresholds umbrales efectivos de una consulta de alertas.
type Thresholds struct {
	LowStock  int
	StaleDays int
	StaleDate time.Time // now menos StaleDays días de calendario
}

// ResolveThresholds resuelve los umbrales a partir de los valores crudos del request.
// Un valor vacío, no entero, negativo o por encima del tope cae al default sin error.
func ResolveThresholds(now time.Time, lowStockRaw, staleDaysRaw string) Thresholds {
	low := parseBounded(lowStockRaw, DefaultLowStockThreshold, MaxLowStockThreshold)
	days := parseBounded(staleDaysRaw, DefaultStaleDays, MaxStaleDays)
	return Thresholds{
		LowStock:  low,
		StaleDays: days,
		// AddDate resta días de calendario, estable ante cambios de horario.
		StaleDate: now.AddDate(0, 0, -days),
	}
}

// parseBounded acepta enteros en [0, limit]; cualquier otra cosa devuelve def.
func parseBounded(raw string, def, limit int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > limit {
		return def
	}
	return n
}

// Matches indica si el registro viola alguno de los umbrales habilitados.
// Es el mismo predicado que ejecuta la consulta SQL de FindAlerts.
func (t Thresholds) Matches(rec *entity.InventoryRecord) bool {
	if rec == nil {
		return false
	}
	if rec.Alerts.LowStock && rec.Quantity < int64(t.LowStock) {
		return true
	}
	return rec.Alerts.HighTimeWithoutMovement && rec.LastMovement.Before(t.StaleDate)
}
