package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	appconfig "taller_central/internal/config"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("mock mode needs no token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway(appconfig.MercadoPagoConfig{Mock: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g == nil || !g.mockMode {
			t.Fatalf("expected a mock-mode gateway, got %+v", g)
		}
	})

	t.Run("real mode without token fails", func(t *testing.T) {
		_, err := NewMercadoPagoGateway(appconfig.MercadoPagoConfig{})
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected missing token error, got %v", err)
		}
	})
}

func TestMercadoPagoGateway_CreatePaymentMock(t *testing.T) {
	g, err := NewMercadoPagoGateway(appconfig.MercadoPagoConfig{Mock: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	payload := json.RawMessage(`{"transaction_amount":150,"external_reference":"3"}`)
	id, status, body, err := g.CreatePayment(context.Background(), payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated payment id")
	}
	if status != "approved" {
		t.Fatalf("expected approved, got %q", status)
	}

	var resp map[string]any
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp["transaction_amount"] != float64(150) || resp["external_reference"] != "3" {
		t.Fatalf("request fields not echoed back: %v", resp)
	}
	if resp["status_detail"] != "accredited" || resp["date_approved"] == nil {
		t.Fatalf("approval fields missing: %v", resp)
	}
}

func TestMercadoPagoGateway_CreatePaymentUnconfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected not-configured error, got %v", err)
	}
}
