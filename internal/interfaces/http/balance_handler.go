package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
)

// BalanceHandler sirve las vistas de saldo proyectado y el reporte PDF (protegido).
type BalanceHandler struct {
	consult *inventory.ConsultUseCase
	report  inventory.BalanceReportGenerator
}

// NewBalanceHandler construye el handler de saldos.
func NewBalanceHandler(consult *inventory.ConsultUseCase, report inventory.BalanceReportGenerator) *BalanceHandler {
	return &BalanceHandler{consult: consult, report: report}
}

// List godoc
// @Summary      Saldos proyectados de todos los productos
// @Description  Recalcula cada saldo plegando el libro de movimientos. Incluye
//
//	movimientos huérfanos como diagnóstico y el valor total del stock.
//
// @Tags         balances
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BalanceListResponse
// @Router       /api/inventory/balances [get]
func (h *BalanceHandler) List(c *fiber.Ctx) error {
	out, err := h.consult.ConsultBalances(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByProduct godoc
// @Summary      Saldo proyectado de un producto
// @Tags         balances
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductBalanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/balances/{id} [get]
func (h *BalanceHandler) GetByProduct(c *fiber.Ctx) error {
	out, err := h.consult.ConsultProduct(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Orphans godoc
// @Summary      Movimientos huérfanos
// @Description  Movimientos cuyo product_ref no resuelve a ningún producto del catálogo.
// @Tags         balances
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrphanMovementResponse
// @Router       /api/inventory/orphans [get]
func (h *BalanceHandler) Orphans(c *fiber.Ctx) error {
	out, err := h.consult.Orphans(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF de valorización de stock
// @Tags         balances
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/inventory/report [get]
func (h *BalanceHandler) Report(c *fiber.Ctx) error {
	balances, err := h.consult.ConsultBalances(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	pdfBytes, err := h.report.GenerateBalanceReport(c.Context(), balances)
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="valorizacion-stock.pdf"`)
	return c.Send(pdfBytes)
}
