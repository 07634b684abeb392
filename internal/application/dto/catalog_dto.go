package dto

// CatalogRequest entrada para crear o reemplazar un catálogo.
type CatalogRequest struct {
	ID       string   `json:"-"`
	Title    string   `json:"title"`
	Products []string `json:"products"`
}

// CatalogResponse catálogo con sus productos resueltos.
type CatalogResponse struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Products []ProductView `json:"products"`
}
