package request

import "encoding/json"

// BudgetPaymentCreateRequest is the payload for charging an accepted budget.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas; the charged amount is always taken from the stored budget total.
type BudgetPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
