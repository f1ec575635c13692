package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/pkg/logger"
)

// CampaignHandler campañas de marketing y tablero de inicio (protegido).
type CampaignHandler struct {
	uc  *usecase.CampaignUseCase
	log *logger.Logger
}

// NewCampaignHandler construye el handler.
func NewCampaignHandler(uc *usecase.CampaignUseCase, log *logger.Logger) *CampaignHandler {
	return &CampaignHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear campaña
// @Description  Sin status la campaña queda en drafts. Sin store se usa la tienda del token.
// @Tags         campaigns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCampaignRequest  true  "Datos de la campaña"
// @Success      201   {object}  dto.CampaignEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/campaigns [post]
func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCampaignRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Store == "" {
		in.Store = GetStoreID(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, h.log, "campaigns.create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CampaignEnvelope{Success: true, Message: "campaña creada", Campaign: *out})
}

// List godoc
// @Summary      Listar campañas
// @Tags         campaigns
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.CampaignListResponse
// @Router       /api/campaigns [get]
func (h *CampaignHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return fail(c, h.log, "campaigns.list", err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener campaña
// @Tags         campaigns
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la campaña"
// @Success      200  {object}  dto.CampaignEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/campaigns/{id} [get]
func (h *CampaignHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, h.log, "campaigns.get", err)
	}
	return c.JSON(dto.CampaignEnvelope{Success: true, Campaign: *out})
}

// Update godoc
// @Summary      Actualizar campaña
// @Tags         campaigns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la campaña"
// @Param        body  body  dto.UpdateCampaignRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CampaignEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/campaigns/{id} [put]
func (h *CampaignHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCampaignRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return fail(c, h.log, "campaigns.update", err)
	}
	return c.JSON(dto.CampaignEnvelope{Success: true, Message: "campaña actualizada", Campaign: *out})
}

// ChangeStatus godoc
// @Summary      Cambiar estado de la campaña
// @Description  Estados: active, completed, paused, drafts.
// @Tags         campaigns
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la campaña"
// @Param        body  body  dto.ChangeCampaignStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.CampaignEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/campaigns/{id}/status [patch]
func (h *CampaignHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeCampaignStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ChangeStatus(c.UserContext(), c.Params("id"), in.Status)
	if err != nil {
		return fail(c, h.log, "campaigns.status", err)
	}
	return c.JSON(dto.CampaignEnvelope{Success: true, Message: "estado de la campaña actualizado", Campaign: *out})
}

// Delete godoc
// @Summary      Eliminar campaña (admin)
// @Tags         campaigns
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la campaña"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/campaigns/{id} [delete]
func (h *CampaignHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, h.log, "campaigns.delete", err)
	}
	logDeleted(c, h.log, "campaigns.delete")
	return c.JSON(dto.MessageResponse{Success: true, Message: "campaña eliminada"})
}

// HomeStatistics godoc
// @Summary      Estadísticas del tablero de inicio
// @Description  Cantidad de campañas en estado active, de todas las tiendas.
// @Tags         statistics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.HomeStatisticsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/statistics/home [get]
func (h *CampaignHandler) HomeStatistics(c *fiber.Ctx) error {
	out, err := h.uc.HomeStatistics(c.UserContext())
	if err != nil {
		return fail(c, h.log, "statistics.home", err)
	}
	return c.JSON(out)
}
