package pricing

import "github.com/jhoicas/melo-compras/internal/domain/entity"

// Catalog búsqueda síncrona por descripción exacta (sin normalizar, sin fuzzy).
type Catalog interface {
	FindByDescription(description string) (entity.CatalogItem, bool)
}

// CatalogIndex índice en memoria del catálogo, armado a partir del listado de la API.
type CatalogIndex map[string]entity.CatalogItem

// NewCatalogIndex indexa por descripción. Si dos ítems comparten descripción gana el primero.
func NewCatalogIndex(items []*entity.CatalogItem) CatalogIndex {
	idx := make(CatalogIndex, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		if _, dup := idx[it.Description]; dup {
			continue
		}
		idx[it.Description] = *it
	}
	return idx
}

// FindByDescription implementa Catalog.
func (c CatalogIndex) FindByDescription(description string) (entity.CatalogItem, bool) {
	it, ok := c[description]
	return it, ok
}
