package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/pkg/logger"
)

// SupplierHandler CRUD de proveedores (protegido).
type SupplierHandler struct {
	uc  *usecase.SupplierUseCase
	log *logger.Logger
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase, log *logger.Logger) *SupplierHandler {
	return &SupplierHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Registrar proveedor
// @Description  Sin store en el body se usa la tienda del token.
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.SupplierEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Store == "" {
		in.Store = GetStoreID(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, h.log, "suppliers.create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SupplierEnvelope{Success: true, Message: "proveedor registrado", Supplier: *out})
}

// ListByStore godoc
// @Summary      Listar proveedores de una tienda
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        storeId  path  string  true  "ID de la tienda"
// @Success      200      {object}  dto.SupplierListResponse
// @Router       /api/suppliers/store/{storeId} [get]
func (h *SupplierHandler) ListByStore(c *fiber.Ctx) error {
	out, err := h.uc.ListByStore(c.UserContext(), c.Params("storeId"))
	if err != nil {
		return fail(c, h.log, "suppliers.list", err)
	}
	return c.JSON(dto.SupplierListResponse{Success: true, Suppliers: out})
}

// GetByID godoc
// @Summary      Obtener proveedor
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.SupplierEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, h.log, "suppliers.get", err)
	}
	return c.JSON(dto.SupplierEnvelope{Success: true, Supplier: *out})
}

// Update godoc
// @Summary      Actualizar proveedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proveedor"
// @Param        body  body  dto.UpdateSupplierRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SupplierEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return fail(c, h.log, "suppliers.update", err)
	}
	return c.JSON(dto.SupplierEnvelope{Success: true, Message: "proveedor actualizado", Supplier: *out})
}

// Delete godoc
// @Summary      Eliminar proveedor (admin)
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, h.log, "suppliers.delete", err)
	}
	logDeleted(c, h.log, "suppliers.delete")
	return c.JSON(dto.MessageResponse{Success: true, Message: "proveedor eliminado"})
}
