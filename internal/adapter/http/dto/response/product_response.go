package response

import (
	"time"

	"smartsales365/internal/domain/entities"
)

type ProductResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"nombre"`
	Description    string    `json:"descripcion,omitempty"`
	Price          float64   `json:"precio"`
	Stock          int       `json:"stock"`
	BrandID        string    `json:"marca_id,omitempty"`
	BrandName      string    `json:"marca,omitempty"`
	CategoryID     string    `json:"categoria_id,omitempty"`
	CategoryName   string    `json:"categoria,omitempty"`
	ImageURL       string    `json:"imagen,omitempty"`
	WarrantyMonths int       `json:"garantia,omitempty"`
	Active         bool      `json:"estado"`
	CreatedAt      time.Time `json:"fecha_creacion"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		Stock:          p.Stock,
		BrandID:        p.BrandID,
		BrandName:      p.BrandName,
		CategoryID:     p.CategoryID,
		CategoryName:   p.CategoryName,
		ImageURL:       p.ImageURL,
		WarrantyMonths: p.WarrantyMonths,
		Active:         p.Active,
		CreatedAt:      p.CreatedAt,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}
