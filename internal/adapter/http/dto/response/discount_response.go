package response

import "smartsales365/internal/domain/entities"

type DiscountResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"producto_id,omitempty"`
	Percentage  float64 `json:"porcentaje"`
	Start       string  `json:"fecha_inicio"`
	End         string  `json:"fecha_fin"`
	Description string  `json:"descripcion,omitempty"`
	Active      bool    `json:"activo"`
}

func FromDiscount(d entities.Discount) DiscountResponse {
	return DiscountResponse{
		ID:          d.ID,
		ProductID:   d.ProductID,
		Percentage:  d.Percentage,
		Start:       d.Start.Format("2006-01-02"),
		End:         d.End.Format("2006-01-02"),
		Description: d.Description,
		Active:      d.Active,
	}
}

func FromDiscounts(discounts []entities.Discount) []DiscountResponse {
	out := make([]DiscountResponse, 0, len(discounts))
	for _, d := range discounts {
		out = append(out, FromDiscount(d))
	}
	return out
}
