package inventory

import (
	"strings"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// CatalogIndex resuelve referencias de movimiento a productos con UNA sola
// estrategia, elegida de antemano y aplicada uniformemente: búsqueda exacta por
// identidad. Nada de cadenas de fallback silenciosas (ID, luego código, luego
// trim...): esas reglas inconsistentes hacen inauditable el saldo derivado.
type CatalogIndex struct {
	byID   map[string]*entity.Product
	byCode map[string]*entity.Product
}

// NewCatalogIndex construye el índice a partir de un snapshot inmutable del
// catálogo. El snapshot se pasa como argumento; el índice no observa cambios
// posteriores.
func NewCatalogIndex(products []*entity.Product) *CatalogIndex {
	ix := &CatalogIndex{
		byID:   make(map[string]*entity.Product, len(products)),
		byCode: make(map[string]*entity.Product, len(products)),
	}
	for _, p := range products {
		ix.byID[p.ID] = p
		if p.Code != "" {
			ix.byCode[p.Code] = p
		}
	}
	return ix
}

// Resolution es el resultado etiquetado de resolver un product_ref.
type Resolution struct {
	Product *entity.Product
	Orphan  bool
	Reason  string
}

// Resolve busca el producto por identidad exacta. Cualquier otra cosa —código en
// lugar de ID, espacios accidentales, producto borrado— produce un huérfano con
// motivo, para que el operador lo corrija vía la migración de religado.
func (ix *CatalogIndex) Resolve(ref string) Resolution {
	if p, ok := ix.byID[ref]; ok {
		return Resolution{Product: p}
	}
	return Resolution{Orphan: true, Reason: orphanReason(ix, ref)}
}

// RelinkCandidate devuelve el producto cuyo código (o ID, tras recortar espacios)
// coincide con la referencia. SOLO lo usa la migración explícita de religado:
// es la excepción única y auditada a la política de resolución por identidad.
func (ix *CatalogIndex) RelinkCandidate(ref string) *entity.Product {
	trimmed := strings.TrimSpace(ref)
	if p, ok := ix.byID[trimmed]; ok {
		return p
	}
	if p, ok := ix.byCode[trimmed]; ok {
		return p
	}
	return nil
}

func orphanReason(ix *CatalogIndex, ref string) string {
	trimmed := strings.TrimSpace(ref)
	if trimmed != ref {
		if _, ok := ix.byID[trimmed]; ok {
			return "referencia con espacios accidentales"
		}
	}
	if _, ok := ix.byCode[trimmed]; ok {
		return "referencia por código visible en lugar de ID"
	}
	return "referencia sin producto en el catálogo"
}

// OrphanMovement documenta un movimiento que no pudo ligarse a ningún producto.
// Se excluye de la proyección pero jamás desaparece en silencio.
type OrphanMovement struct {
	MovementID string
	ProductRef string
	Kind       string
	Quantity   string
	Reason     string
}
