// Package statistics agrupa registros de inventario en series de calendario
// (semana, mes, año) con relleno de buckets vacíos.
package statistics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/backoffice-api/internal/domain"
)

// ErrUnsupportedTimeframe timeframe ausente o fuera de weekly|monthly|yearly.
var ErrUnsupportedTimeframe = fmt.Errorf("%w: timeframe debe ser weekly, monthly o yearly", domain.ErrInvalidInput)

// Timeframe selector de la serie temporal.
type Timeframe string

const (
	Weekly  Timeframe = "weekly"
	Monthly Timeframe = "monthly"
	Yearly  Timeframe = "yearly"
)

// ParseTimeframe valida el selector recibido en el request. Solo acepta los literales exactos.
func ParseTimeframe(s string) (Timeframe, error) {
	switch tf := Timeframe(s); tf {
	case Weekly, Monthly, Yearly:
		return tf, nil
	default:
		return "", ErrUnsupportedTimeframe
	}
}

// BucketUnit unidad de calendario que define la clave de agrupación.
type BucketUnit int

const (
	UnitWeekday BucketUnit = iota // "0" (domingo) .. "6" (sábado)
	UnitMonth                     // "01" .. "12"
	UnitYear                      // "2024"
)

// KeyOf devuelve la clave de bucket de t, siempre evaluada en UTC.
func (u BucketUnit) KeyOf(t time.Time) string {
	t = t.UTC()
	switch u {
	case UnitWeekday:
		return strconv.Itoa(int(t.Weekday()))
	case UnitMonth:
		return fmt.Sprintf("%02d", int(t.Month()))
	default:
		return fmt.Sprintf("%04d", t.Year())
	}
}

func (u BucketUnit) String() string {
	switch u {
	case UnitWeekday:
		return "weekday"
	case UnitMonth:
		return "month"
	case UnitYear:
		return "year"
	default:
		return "unknown"
	}
}
