package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/inventory"
	"github.com/jhoicas/backoffice-api/pkg/logger"
)

// InventoryHandler maneja registros de inventario, alertas y estadísticas (protegido).
type InventoryHandler struct {
	uc  *inventory.InventoryUseCase
	log *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.InventoryUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log}
}

// Alerts godoc
// @Summary      Registros en alerta
// @Description  Stock bajo (quantity < lowStockThreshold) o sin movimiento por más de highTimeWithoutMovement días, entre los registros que tienen la alerta activada.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        lowStockThreshold        query  int  false  "Umbral de stock bajo"      default(5)
// @Param        highTimeWithoutMovement  query  int  false  "Días sin movimiento"       default(30)
// @Success      200  {object}  dto.InventoryAlertsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/alerts [get]
func (h *InventoryHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.uc.Alerts(c.UserContext(), c.Query("lowStockThreshold"), c.Query("highTimeWithoutMovement"))
	if err != nil {
		return fail(c, h.log, "inventory.alerts", err)
	}
	return c.JSON(dto.InventoryAlertsResponse{Success: true, InventoryAlerts: out})
}

// AlertsReport godoc
// @Summary      Reporte PDF de alertas
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Param        lowStockThreshold        query  int  false  "Umbral de stock bajo"  default(5)
// @Param        highTimeWithoutMovement  query  int  false  "Días sin movimiento"   default(30)
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/alerts/report [get]
func (h *InventoryHandler) AlertsReport(c *fiber.Ctx) error {
	pdf, err := h.uc.AlertsReport(c.UserContext(), c.Query("lowStockThreshold"), c.Query("highTimeWithoutMovement"))
	if err != nil {
		return fail(c, h.log, "inventory.alerts_report", err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="alertas-inventario.pdf"`)
	return c.Send(pdf)
}

// Statistics godoc
// @Summary      Estadísticas de inventario por calendario
// @Description  weekly: domingo..sábado de la semana actual (desde el lunes); monthly: enero..diciembre del año actual; yearly: los últimos 6 años.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        timeframe  query  string  true  "weekly | monthly | yearly"
// @Success      200  {object}  dto.StatisticsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/statistics [get]
func (h *InventoryHandler) Statistics(c *fiber.Ctx) error {
	out, err := h.uc.Statistics(c.UserContext(), c.Query("timeframe"))
	if err != nil {
		return fail(c, h.log, "inventory.statistics", err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear registro de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryRequest  true  "Producto, cantidad, costo y alertas"
// @Success      201   {object}  dto.InventoryEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, h.log, "inventory.create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.InventoryEnvelope{
		Success:   true,
		Message:   "registro de inventario creado",
		Inventory: out,
	})
}

// List godoc
// @Summary      Listar registros de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.InventoryListResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return fail(c, h.log, "inventory.list", err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.InventoryEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, h.log, "inventory.get", err)
	}
	return c.JSON(dto.InventoryEnvelope{Success: true, Inventory: out})
}

// Update godoc
// @Summary      Actualizar registro de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.UpdateInventoryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.InventoryEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return fail(c, h.log, "inventory.update", err)
	}
	return c.JSON(dto.InventoryEnvelope{
		Success:   true,
		Message:   "registro de inventario actualizado",
		Inventory: out,
	})
}

// Delete godoc
// @Summary      Eliminar registro de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, h.log, "inventory.delete", err)
	}
	logDeleted(c, h.log, "inventory.delete")
	return c.JSON(dto.MessageResponse{Success: true, Message: "registro de inventario eliminado"})
}
