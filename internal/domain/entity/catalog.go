package entity

// CatalogKind identifica cada tabla de configuración simple (id + nombre).
// Todas comparten forma y CRUD; los nombres de colección conservan los de los
// datos históricos.
type CatalogKind string

const (
	CatalogGroups       CatalogKind = "grupos"
	CatalogApplications CatalogKind = "aplicacoes"
	CatalogSets         CatalogKind = "conjuntos"
	CatalogLocations    CatalogKind = "locais"
	CatalogEntryTypes   CatalogKind = "tipos_entrada"
	CatalogExitTypes    CatalogKind = "tipos_saida"
	CatalogWorks        CatalogKind = "obras"
)

// CatalogKinds lista los kinds válidos para validación en handlers.
var CatalogKinds = []CatalogKind{
	CatalogGroups, CatalogApplications, CatalogSets, CatalogLocations,
	CatalogEntryTypes, CatalogExitTypes, CatalogWorks,
}

// CatalogItem es un elemento de una tabla de configuración simple.
type CatalogItem struct {
	ID   string
	Kind CatalogKind
	Name string
}

// ValidCatalogKind indica si el kind corresponde a una colección conocida.
func ValidCatalogKind(k CatalogKind) bool {
	for _, known := range CatalogKinds {
		if known == k {
			return true
		}
	}
	return false
}
