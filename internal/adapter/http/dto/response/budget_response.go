package response

import (
	"taller_central/internal/domain/entities"
	"taller_central/internal/usecase"
)

type BudgetResponse struct {
	ID             int    `json:"id"`
	ServiceOrderID int    `json:"service_order_id"`
	Cost           int    `json:"cost"`
	Labor          int    `json:"labor"`
	Total          int    `json:"total"`
	Status         string `json:"status"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	return BudgetResponse{
		ID:             b.ID,
		ServiceOrderID: b.OrderID,
		Cost:           b.Cost,
		Labor:          b.Labor,
		Total:          b.Total(),
		Status:         string(b.Status()),
	}
}

func FromBudgets(budgets []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, FromBudget(b))
	}
	return out
}

// BudgetDetailResponse adds the live view next to the stored snapshot so the
// client can see when the order's parts drifted after the budget was drawn up.
type BudgetDetailResponse struct {
	BudgetResponse
	LiveParts int `json:"live_parts"`
	LiveTotal int `json:"live_total"`
}

func FromBudgetView(v usecase.BudgetView) BudgetDetailResponse {
	return BudgetDetailResponse{
		BudgetResponse: FromBudget(v.Budget),
		LiveParts:      v.LiveParts,
		LiveTotal:      v.LiveTotal,
	}
}

type EarningsResponse struct {
	Total int `json:"total"`
}
