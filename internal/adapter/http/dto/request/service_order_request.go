package request

import "taller_central/internal/usecase"

type CreateServiceOrderRequest struct {
	CustomerID  int    `json:"customer_id" binding:"required"`
	Product     string `json:"product" binding:"required"`
	Model       string `json:"model"`
	Description string `json:"description"`
	Fault       string `json:"fault"`
}

func (r CreateServiceOrderRequest) ToInput() usecase.ServiceOrderInput {
	return usecase.ServiceOrderInput{
		CustomerID:  r.CustomerID,
		Product:     r.Product,
		Model:       r.Model,
		Description: r.Description,
		Fault:       r.Fault,
	}
}

// UpdateServiceOrderRequest carries partial updates. Lifecycle flags are not
// accepted here; they only move through the review/repair/deliver routes.
type UpdateServiceOrderRequest struct {
	Product       *string `json:"product"`
	Model         *string `json:"model"`
	Description   *string `json:"description"`
	Fault         *string `json:"fault"`
	Notes         *string `json:"notes"`
	EstimatedCost *int    `json:"estimated_cost"`
}

func (r UpdateServiceOrderRequest) ToPatch() usecase.ServiceOrderPatch {
	return usecase.ServiceOrderPatch{
		Product:       r.Product,
		Model:         r.Model,
		Description:   r.Description,
		Fault:         r.Fault,
		Notes:         r.Notes,
		EstimatedCost: r.EstimatedCost,
	}
}

// ReviewServiceOrderRequest records the mechanic's diagnosis. Both fields are
// optional: an empty review still marks the order as reviewed.
type ReviewServiceOrderRequest struct {
	Notes         string `json:"notes"`
	EstimatedCost int    `json:"estimated_cost"`
}
