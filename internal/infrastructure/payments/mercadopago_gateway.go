package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	appconfig "taller_central/internal/config"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing mercado pago access token")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges budgets through the Mercado Pago payments API.
// In mock mode every payment is approved locally without touching the API.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

func NewMercadoPagoGateway(cfg appconfig.MercadoPagoConfig) (*MercadoPagoGateway, error) {
	if cfg.Mock {
		log.Printf("[payment][gateway] running in mock mode, charges are approved locally")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if cfg.AccessToken == "" {
		log.Printf("[payment][gateway] no access token configured")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		log.Printf("[payment][gateway] sdk config rejected err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client ready")

	return &MercadoPagoGateway{client: payment.NewClient(sdkCfg)}, nil
}

// CreatePayment submits the charge and returns the provider's payment id,
// status and raw response body.
func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.approveLocally(requestPayload)
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] charge refused, gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[payment][gateway] charge payload rejected err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[payment][gateway] charge submitted payload_len=%d", len(requestPayload))

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] charge failed err=%v", err)
		return "", "", nil, err
	}

	body, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] charge response not serializable err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[payment][gateway] charge done payment_id=%d status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, body, nil
}

// approveLocally fabricates an approved provider response so the payment flow
// can run end to end without credentials. The request payload is echoed back
// so tests see the fields they sent.
func (g *MercadoPagoGateway) approveLocally(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	echo := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &echo); err != nil {
			echo = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := time.Now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	echo["id"] = id
	echo["status"] = "approved"
	echo["status_detail"] = "accredited"
	if _, ok := echo["date_created"]; !ok {
		echo["date_created"] = now.Format(time.RFC3339Nano)
	}
	if _, ok := echo["date_approved"]; !ok {
		echo["date_approved"] = now.Format(time.RFC3339Nano)
	}

	body, err := json.Marshal(echo)
	if err != nil {
		log.Printf("[payment][gateway] mock response not serializable err=%v", err)
		return "", "", nil, err
	}

	log.Printf("[payment][gateway] mock charge approved payment_id=%s", id)
	return id, "approved", body, nil
}
