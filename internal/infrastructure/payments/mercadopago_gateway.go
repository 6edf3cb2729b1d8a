package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges pending sales through Mercado Pago. The sale
// flow only consumes the provider status it returns; the final state of a
// non-approved payment arrives later through the webhook.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

// NewMercadoPagoGateway builds the gateway from MERCADOPAGO_ACCESS_TOKEN.
// With PAYMENT_GATEWAY_MOCK/MERCADOPAGO_MOCK set, payments are approved
// locally without touching the provider (local checkout testing).
func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payments][mercadopago] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payments][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payments][mercadopago] sdk config failed err=%v", err)
		return nil, err
	}
	log.Printf("[payments][mercadopago] client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

// CreatePayment submits the checkout payload (already stamped with the sale's
// external_reference and amount) and reports the provider's payment id and
// status.
func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, err error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payments][mercadopago] mock charge approved provider_payment_id=%s payload_len=%d", id, len(requestPayload))
		return id, "approved", nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payments][mercadopago] gateway not configured")
		return "", "", ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payments][mercadopago] charge start payload_len=%d", len(requestPayload))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[payments][mercadopago] payload unmarshal failed err=%v", err)
		return "", "", err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payments][mercadopago] sdk create failed err=%v", err)
		return "", "", err
	}
	log.Printf("[payments][mercadopago] charge accepted provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
