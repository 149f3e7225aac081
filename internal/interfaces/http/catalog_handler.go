package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// CatalogHandler maneja las tablas de configuración simples, discriminadas por
// :kind en la ruta (grupos, aplicacoes, conjuntos, locais, tipos_entrada,
// tipos_saida, obras).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler de configuración.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func catalogKind(c *fiber.Ctx) entity.CatalogKind {
	return entity.CatalogKind(c.Params("kind"))
}

// Create godoc
// @Summary      Crear elemento de configuración
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        kind  path  string  true  "colección (grupos, locais, ...)"
// @Param        body  body  dto.CatalogItemRequest  true  "name"
// @Success      201   {object}  dto.CatalogItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/catalog/{kind} [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.CatalogItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Create(catalogKind(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// List godoc
// @Summary      Listar elementos de una colección
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        kind  path  string  true  "colección (grupos, locais, ...)"
// @Success      200   {array}  dto.CatalogItemResponse
// @Router       /api/catalog/{kind} [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(catalogKind(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(items)
}

// Update godoc
// @Summary      Renombrar elemento de configuración
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        kind  path  string  true  "colección"
// @Param        id    path  string  true  "ID del elemento"
// @Param        body  body  dto.CatalogItemRequest  true  "name"
// @Success      200   {object}  dto.CatalogItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/catalog/{kind}/{id} [put]
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	var in dto.CatalogItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Update(catalogKind(c), c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(item)
}

// Delete godoc
// @Summary      Eliminar elemento de configuración
// @Tags         catalog
// @Security     Bearer
// @Param        kind  path  string  true  "colección"
// @Param        id    path  string  true  "ID del elemento"
// @Success      204
// @Router       /api/catalog/{kind}/{id} [delete]
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(catalogKind(c), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
