package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPendiente PaymentStatus = "pendiente"
	PaymentStatusAprobado  PaymentStatus = "aprobado"
	PaymentStatusRechazado PaymentStatus = "rechazado"
)

// BudgetPayment records a charge against an accepted budget.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id, string)
//   - GSI1 (budget_id-index): budget_id
//
// Provider payload:
//   - RawPayload keeps the original provider response (JSON) for traceability.
//   - Payload is an optional parsed representation, useful for debugging.

type BudgetPayment struct {
	ID       string        `json:"id"`
	BudgetID int           `json:"budget_id"`
	Amount   int           `json:"amount"`
	Date     time.Time     `json:"date"`
	Status   PaymentStatus `json:"status"`

	RawPayload json.RawMessage        `json:"raw_payload,omitempty"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
}
