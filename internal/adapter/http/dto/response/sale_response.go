package response

import (
	"time"

	"smartsales365/internal/domain/entities"
)

type SaleItemResponse struct {
	ProductID   string  `json:"producto_id"`
	ProductName string  `json:"producto"`
	Quantity    int     `json:"cantidad"`
	UnitPrice   float64 `json:"precio_unitario"`
	Subtotal    float64 `json:"subtotal"`
}

type SaleResponse struct {
	ID       string             `json:"id"`
	UserID   string             `json:"usuario_id"`
	Username string             `json:"usuario,omitempty"`
	Date     time.Time          `json:"fecha"`
	Total    float64            `json:"total"`
	Status   string             `json:"estado"`
	Items    []SaleItemResponse `json:"detalles"`
}

func FromSale(s entities.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return SaleResponse{
		ID:       s.ID,
		UserID:   s.UserID,
		Username: s.Username,
		Date:     s.Date,
		Total:    s.Total,
		Status:   string(s.Status),
		Items:    items,
	}
}

func FromSales(sales []entities.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, FromSale(s))
	}
	return out
}

type WarrantyResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"producto_id"`
	SaleID    string    `json:"venta_id"`
	Start     time.Time `json:"fecha_inicio"`
	End       time.Time `json:"fecha_fin"`
	Status    string    `json:"estado"`
}

func FromWarranties(ws []entities.Warranty) []WarrantyResponse {
	out := make([]WarrantyResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, WarrantyResponse{
			ID:        w.ID,
			ProductID: w.ProductID,
			SaleID:    w.SaleID,
			Start:     w.Start,
			End:       w.End,
			Status:    string(w.Status),
		})
	}
	return out
}
