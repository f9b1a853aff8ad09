package response

import (
	"time"

	"taller_central/internal/domain/entities"
)

type BudgetPaymentResponse struct {
	ID       string    `json:"id"`
	BudgetID int       `json:"budget_id"`
	Amount   int       `json:"amount"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromBudgetPayment(p entities.BudgetPayment) BudgetPaymentResponse {
	return BudgetPaymentResponse{
		ID:           p.ID,
		BudgetID:     p.BudgetID,
		Amount:       p.Amount,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.RawPayload),
		MPPayload:    p.Payload,
	}
}

func FromBudgetPayments(payments []entities.BudgetPayment) []BudgetPaymentResponse {
	out := make([]BudgetPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromBudgetPayment(p))
	}
	return out
}
