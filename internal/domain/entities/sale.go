package entities

import "time"

// SaleStatus follows the lifecycle of a sale (venta) from checkout to delivery.
//
// Domain notes:
//   - A sale is created "pendiente" from the active cart.
//   - The payment confirmation (gateway webhook) moves it to "pagado".
//   - Reports only count "pagado" sales in their aggregates.

type SaleStatus string

const (
	SaleStatusPendiente SaleStatus = "pendiente"
	SaleStatusPagado    SaleStatus = "pagado"
	SaleStatusCancelado SaleStatus = "cancelado"
	SaleStatusEntregado SaleStatus = "entregado"
)

// Label returns the human display form used by reports ("Pagado", ...).
func (s SaleStatus) Label() string {
	switch s {
	case SaleStatusPendiente:
		return "Pendiente"
	case SaleStatusPagado:
		return "Pagado"
	case SaleStatusCancelado:
		return "Cancelado"
	case SaleStatusEntregado:
		return "Entregado"
	}
	return string(s)
}

// SaleItem is one line of a sale (detalle de venta).
type SaleItem struct {
	ProductID   string  `json:"producto_id"`
	ProductName string  `json:"producto"`
	Quantity    int     `json:"cantidad"`
	UnitPrice   float64 `json:"precio_unitario"`
	Subtotal    float64 `json:"subtotal"`
}

// Sale is the order entity persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - report queries scan by date range and status
type Sale struct {
	ID       string     `json:"id"`
	UserID   string     `json:"usuario_id"`
	Username string     `json:"usuario"`
	Date     time.Time  `json:"fecha"`
	Total    float64    `json:"total"`
	Status   SaleStatus `json:"estado"`
	Items    []SaleItem `json:"detalles"`
}

// UnitsSold sums the quantities across all line items.
func (s Sale) UnitsSold() int {
	total := 0
	for _, it := range s.Items {
		total += it.Quantity
	}
	return total
}

// WarrantyStatus of a product warranty attached to a sale.

type WarrantyStatus string

const (
	WarrantyStatusActiva   WarrantyStatus = "activa"
	WarrantyStatusCaducada WarrantyStatus = "caducada"
)

// Warranty (garantia) covers one product of one sale. The end date is the sale
// date plus the product's warranty months; the status derives from it.
type Warranty struct {
	ID        string         `json:"id"`
	ProductID string         `json:"producto_id"`
	SaleID    string         `json:"venta_id"`
	Start     time.Time      `json:"fecha_inicio"`
	End       time.Time      `json:"fecha_fin"`
	Status    WarrantyStatus `json:"estado"`
}

// Resolve recomputes the status against the given instant.
func (w *Warranty) Resolve(now time.Time) {
	if w.End.Before(now) {
		w.Status = WarrantyStatusCaducada
		return
	}
	w.Status = WarrantyStatusActiva
}
