package response

import (
	"time"

	"smartsales365/internal/domain/entities"
)

type CartItemResponse struct {
	ProductID   string  `json:"producto_id"`
	ProductName string  `json:"producto"`
	Quantity    int     `json:"cantidad"`
	UnitPrice   float64 `json:"precio_unitario"`
	Subtotal    float64 `json:"subtotal"`
}

type CartResponse struct {
	ID        string             `json:"id"`
	UserID    string             `json:"usuario_id"`
	Items     []CartItemResponse `json:"detalles"`
	Total     float64            `json:"total"`
	Active    bool               `json:"activo"`
	UpdatedAt time.Time          `json:"fecha_actualizacion"`
}

func FromCart(c entities.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, CartItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal(),
		})
	}
	return CartResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		Items:     items,
		Total:     c.Total(),
		Active:    c.Active,
		UpdatedAt: c.UpdatedAt,
	}
}
