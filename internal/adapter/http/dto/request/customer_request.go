package request

import "taller_central/internal/usecase"

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func (r CreateCustomerRequest) ToInput() usecase.CustomerInput {
	return usecase.CustomerInput{
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
	}
}

// UpdateCustomerRequest carries partial updates. Absent fields stay untouched.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

func (r UpdateCustomerRequest) ToPatch() usecase.CustomerPatch {
	return usecase.CustomerPatch{
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
	}
}
