package request

import "taller_central/internal/usecase"

type CreateSparePartRequest struct {
	Name string `json:"name" binding:"required"`
	Cost int    `json:"cost"`
}

func (r CreateSparePartRequest) ToInput() usecase.SparePartInput {
	return usecase.SparePartInput{Name: r.Name, Cost: r.Cost}
}

type UpdateSparePartRequest struct {
	Name *string `json:"name"`
	Cost *int    `json:"cost"`
}

func (r UpdateSparePartRequest) ToPatch() usecase.SparePartPatch {
	return usecase.SparePartPatch{Name: r.Name, Cost: r.Cost}
}
