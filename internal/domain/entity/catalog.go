package entity

// Catalog agrupa productos por referencia (IDs). No embebe datos de producto:
// las referencias se resuelven al leer y las que ya no existen se descartan.
type Catalog struct {
	ID       string
	Title    string
	Products []string
}

// Contains informa si el catálogo referencia el producto.
func (c *Catalog) Contains(productID string) bool {
	for _, id := range c.Products {
		if id == productID {
			return true
		}
	}
	return false
}

// Clone devuelve una copia del catálogo con su propia lista de referencias.
func (c *Catalog) Clone() *Catalog {
	if c == nil {
		return nil
	}
	out := *c
	if c.Products != nil {
		out.Products = append([]string(nil), c.Products...)
	}
	return &out
}
