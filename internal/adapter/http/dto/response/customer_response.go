package response

import (
	"taller_central/internal/domain/entities"
	"taller_central/internal/usecase"
)

type CustomerResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`

	TotalOrders   int `json:"total_orders"`
	PendingOrders int `json:"pending_orders"`
}

func FromCustomerView(v usecase.CustomerView) CustomerResponse {
	return CustomerResponse{
		ID:            v.Customer.ID,
		Name:          v.Customer.Name,
		Address:       v.Customer.Address,
		Phone:         v.Customer.Phone,
		Email:         v.Customer.Email,
		TotalOrders:   v.TotalOrders,
		PendingOrders: v.PendingOrders,
	}
}

// FromCustomer is used on write paths where the order counts were not loaded.
func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
		Email:   c.Email,
	}
}

func FromCustomerViews(views []usecase.CustomerView) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromCustomerView(v))
	}
	return out
}
