package entities

import "time"

// Discount (descuento) is a percentage promotion, optionally bound to a single
// product. A nil/empty ProductID means a storewide promotion.
type Discount struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"producto_id,omitempty"`
	Percentage  float64   `json:"porcentaje"`
	Start       time.Time `json:"fecha_inicio"`
	End         time.Time `json:"fecha_fin"`
	Description string    `json:"descripcion,omitempty"`
	Active      bool      `json:"activo"`
	CreatedAt   time.Time `json:"fecha_creacion"`
}

// CurrentAt reports whether the promotion applies on the given day.
func (d Discount) CurrentAt(day time.Time) bool {
	if !d.Active {
		return false
	}
	return !day.Before(d.Start) && !day.After(d.End)
}

// Apply returns the discounted price.
func (d Discount) Apply(price float64) float64 {
	return price - price*d.Percentage/100
}
