package catalog

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// ReferenceSet de-duplica las referencias de un catálogo. Solo importa la pertenencia.
func ReferenceSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// ProductIndex índice por ID construido a partir de un único barrido de productos.
type ProductIndex struct {
	order []string
	byID  map[string]*entity.Product
}

// NewProductIndex indexa los productos; ante IDs repetidos gana el primero.
func NewProductIndex(products []*entity.Product) *ProductIndex {
	ix := &ProductIndex{
		order: make([]string, 0, len(products)),
		byID:  make(map[string]*entity.Product, len(products)),
	}
	for _, p := range products {
		if p == nil {
			continue
		}
		if _, ok := ix.byID[p.ID]; ok {
			continue
		}
		ix.byID[p.ID] = p
		ix.order = append(ix.order, p.ID)
	}
	return ix
}

// Resolve filtra el índice al conjunto de referencias. Las referencias colgantes
// (productos eliminados) se descartan en silencio; el orden es el del índice.
func (ix *ProductIndex) Resolve(ids []string) []*entity.Product {
	set := ReferenceSet(ids)
	out := make([]*entity.Product, 0, len(set))
	for _, id := range ix.order {
		if _, ok := set[id]; ok {
			out = append(out, ix.byID[id])
		}
	}
	return out
}

// Missing devuelve las referencias que no están en el índice, sin repetir.
func (ix *ProductIndex) Missing(ids []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := ix.byID[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
