package request

import (
	"time"

	"smartsales365/internal/domain/entities"
)

// DiscountRequest is the create/update payload for promotions. Dates arrive
// as YYYY-MM-DD.
type DiscountRequest struct {
	ProductID   string  `json:"producto_id"`
	Percentage  float64 `json:"porcentaje"`
	Start       string  `json:"fecha_inicio"`
	End         string  `json:"fecha_fin"`
	Description string  `json:"descripcion"`
}

func (r DiscountRequest) ToEntity(id string) (entities.Discount, error) {
	start, err := time.Parse("2006-01-02", r.Start)
	if err != nil {
		return entities.Discount{}, err
	}
	end, err := time.Parse("2006-01-02", r.End)
	if err != nil {
		return entities.Discount{}, err
	}
	return entities.Discount{
		ID:          id,
		ProductID:   r.ProductID,
		Percentage:  r.Percentage,
		Start:       start,
		End:         end,
		Description: r.Description,
	}, nil
}
