package request

import "encoding/json"

// CheckoutRequest starts a sale from the user's active cart.
type CheckoutRequest struct {
	UserID string `json:"usuario_id"`
}

// SalePaymentRequest is the payload for paying a pending sale.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas.
type SalePaymentRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

// PaymentWebhookRequest is the provider notification. external_reference
// carries the sale id the payment was created with.
type PaymentWebhookRequest struct {
	ExternalReference string `json:"external_reference"`
	Status            string `json:"status"`
}
