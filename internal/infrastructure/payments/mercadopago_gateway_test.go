package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token is rejected", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")

		_, err := NewMercadoPagoGateway("")
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

		g, err := NewMercadoPagoGateway("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		id, status, err := g.CreatePayment(context.Background(), json.RawMessage(`{"external_reference":"v1"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != "approved" {
			t.Fatalf("expected approved, got %q", status)
		}
		if id == "" {
			t.Fatal("expected a provider payment id")
		}
	})

	t.Run("unconfigured gateway refuses charges", func(t *testing.T) {
		var g *MercadoPagoGateway
		_, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
		if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})
}

func TestIsPaymentGatewayMockEnabled(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
	if isPaymentGatewayMockEnabled() {
		t.Fatal("expected mock mode off by default")
	}

	t.Setenv("MERCADOPAGO_MOCK", "on")
	if !isPaymentGatewayMockEnabled() {
		t.Fatal("expected MERCADOPAGO_MOCK=on to enable mock mode")
	}
}
