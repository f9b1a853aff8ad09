package response

import (
	"time"

	"taller_central/internal/domain/entities"
	"taller_central/internal/usecase"
)

type ServiceOrderResponse struct {
	ID            int       `json:"id"`
	CustomerID    int       `json:"customer_id"`
	Date          time.Time `json:"date"`
	Product       string    `json:"product"`
	Model         string    `json:"model"`
	Description   string    `json:"description"`
	Fault         string    `json:"fault"`
	Notes         string    `json:"notes"`
	EstimatedCost int       `json:"estimated_cost"`
	Reviewed      bool      `json:"reviewed"`
	Repaired      bool      `json:"repaired"`
	Delivered     bool      `json:"delivered"`
	Status        string    `json:"status"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	return ServiceOrderResponse{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		Date:          o.Date,
		Product:       o.Product,
		Model:         o.Model,
		Description:   o.Description,
		Fault:         o.Fault,
		Notes:         o.Notes,
		EstimatedCost: o.EstimatedCost,
		Reviewed:      o.Reviewed,
		Repaired:      o.Repaired,
		Delivered:     o.Delivered,
		Status:        string(o.Status()),
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}

// ServiceOrderDetailResponse extends the order with its spare parts, their
// running sum and whether a budget is already attached.
type ServiceOrderDetailResponse struct {
	ServiceOrderResponse
	Parts      []SparePartResponse `json:"parts"`
	PartsTotal int                 `json:"parts_total"`
	HasBudget  bool                `json:"has_budget"`
}

func FromServiceOrderView(v usecase.ServiceOrderView) ServiceOrderDetailResponse {
	return ServiceOrderDetailResponse{
		ServiceOrderResponse: FromServiceOrder(v.Order),
		Parts:                FromSpareParts(v.Parts),
		PartsTotal:           v.PartsTotal,
		HasBudget:            v.HasBudget,
	}
}

type OrderStatsResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Reviewed  int `json:"reviewed"`
	Repaired  int `json:"repaired"`
	Delivered int `json:"delivered"`
}

func FromOrderStats(s entities.OrderStats) OrderStatsResponse {
	return OrderStatsResponse{
		Total:     s.Total,
		Pending:   s.Pending,
		Reviewed:  s.Reviewed,
		Repaired:  s.Repaired,
		Delivered: s.Delivered,
	}
}
