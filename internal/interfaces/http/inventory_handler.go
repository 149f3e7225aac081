package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
)

// InventoryHandler maneja entradas, salidas y el libro de movimientos (protegido).
type InventoryHandler struct {
	register *inventory.RegisterMovementUseCase
	consult  *inventory.ConsultUseCase
	relink   *inventory.RelinkUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(register *inventory.RegisterMovementUseCase, consult *inventory.ConsultUseCase, relink *inventory.RelinkUseCase) *InventoryHandler {
	return &InventoryHandler{register: register, consult: consult, relink: relink}
}

// RegisterEntry godoc
// @Summary      Registrar entrada de mercadería
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterEntryRequest  true  "product_id, quantity, unit_price, ..."
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/entries [post]
func (h *InventoryHandler) RegisterEntry(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.register.RegisterEntry(c.Context(), userID, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mov)
}

// RegisterExit godoc
// @Summary      Registrar salida de mercadería
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterExitRequest  true  "product_id, quantity, exit_type_id, ..."
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock o piezas insuficientes"
// @Router       /api/inventory/exits [post]
func (h *InventoryHandler) RegisterExit(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterExitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.register.RegisterExit(c.Context(), userID, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mov)
}

// ListMovements godoc
// @Summary      Listar el libro de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	movs, err := h.consult.ListMovements(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(movs)
}

// Relink godoc
// @Summary      Migración de religado de referencias legadas
// @Description  Corrige movimientos que guardaron el código visible del producto
//
//	o un ID con espacios en lugar del ID. Usar ?dry_run=true primero.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        dry_run  query  bool  false  "reportar sin escribir"
// @Success      200  {object}  dto.RelinkReportResponse
// @Router       /api/inventory/relink-refs [post]
func (h *InventoryHandler) Relink(c *fiber.Ctx) error {
	dryRun := c.QueryBool("dry_run", false)
	report, err := h.relink.Run(c.Context(), dryRun)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(report)
}
