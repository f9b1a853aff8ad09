package request

import "taller_central/internal/usecase"

// CreateBudgetRequest opens a budget for a service order. A missing cost means
// "start from the order's repair estimate".
type CreateBudgetRequest struct {
	ServiceOrderID int  `json:"service_order_id" binding:"required"`
	Cost           *int `json:"cost"`
	Labor          *int `json:"labor"`
}

func (r CreateBudgetRequest) ToInput() usecase.BudgetInput {
	return usecase.BudgetInput{
		OrderID: r.ServiceOrderID,
		Cost:    r.Cost,
		Labor:   r.Labor,
	}
}

type UpdateBudgetRequest struct {
	Cost  *int `json:"cost"`
	Labor *int `json:"labor"`
}

func (r UpdateBudgetRequest) ToPatch() usecase.BudgetPatch {
	return usecase.BudgetPatch{
		Cost:  r.Cost,
		Labor: r.Labor,
	}
}
