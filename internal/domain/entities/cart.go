package entities

import "time"

// CartItem is one line of a shopping cart.
type CartItem struct {
	ProductID   string  `json:"producto_id"`
	ProductName string  `json:"producto"`
	Quantity    int     `json:"cantidad"`
	UnitPrice   float64 `json:"precio_unitario"`
}

// Subtotal is quantity times the unit price captured when the item was added.
func (i CartItem) Subtotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// Cart is the active shopping cart of a user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - at most one active cart per user; checkout deactivates it
type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"usuario_id"`
	Items     []CartItem `json:"detalles"`
	Active    bool       `json:"activo"`
	CreatedAt time.Time  `json:"fecha_creacion"`
	UpdatedAt time.Time  `json:"fecha_actualizacion"`
}

// Total sums the item subtotals.
func (c Cart) Total() float64 {
	total := 0.0
	for _, it := range c.Items {
		total += it.Subtotal()
	}
	return total
}
