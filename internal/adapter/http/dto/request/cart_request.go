package request

// CartItemRequest adds or updates one product line of the active cart.
type CartItemRequest struct {
	ProductID string `json:"producto_id"`
	Quantity  int    `json:"cantidad"`
}
