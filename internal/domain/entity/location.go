package entity

// Addressing es un endereçamiento: la posición codificada dentro de un local
// (ej. código "03-A-12-B" en el local "Galpón 2"). LocationID referencia un
// CatalogItem de kind "locais".
type Addressing struct {
	ID         string
	Code       string
	LocationID string
}
