package request

import "smartsales365/internal/domain/entities"

// ProductRequest is the create/update payload for catalog products.
type ProductRequest struct {
	Name           string  `json:"nombre"`
	Description    string  `json:"descripcion"`
	Price          float64 `json:"precio"`
	Stock          int     `json:"stock"`
	BrandID        string  `json:"marca_id"`
	BrandName      string  `json:"marca"`
	CategoryID     string  `json:"categoria_id"`
	CategoryName   string  `json:"categoria"`
	ImageURL       string  `json:"imagen"`
	WarrantyMonths int     `json:"garantia"`
}

func (r ProductRequest) ToEntity(id string) entities.Product {
	return entities.Product{
		ID:             id,
		Name:           r.Name,
		Description:    r.Description,
		Price:          r.Price,
		Stock:          r.Stock,
		BrandID:        r.BrandID,
		BrandName:      r.BrandName,
		CategoryID:     r.CategoryID,
		CategoryName:   r.CategoryName,
		ImageURL:       r.ImageURL,
		WarrantyMonths: r.WarrantyMonths,
		Active:         true,
	}
}
