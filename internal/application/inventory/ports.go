package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	invdomain "github.com/jhoicas/backoffice-api/internal/domain/inventory"
)

// Clock devuelve la hora actual. Se inyecta para fijar "ahora" en los tests.
type Clock func() time.Time

// AlertReport datos de entrada del reporte imprimible de alertas.
type AlertReport struct {
	GeneratedAt time.Time
	Thresholds  invdomain.Thresholds
	Records     []*entity.InventoryRecord
}

// AlertReportGenerator genera la representación PDF del listado de alertas.
type AlertReportGenerator interface {
	GenerateAlertReport(ctx context.Context, report AlertReport) ([]byte, error)
}
