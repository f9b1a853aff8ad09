package response

import (
	"taller_central/internal/domain/entities"
	"taller_central/internal/usecase"
)

type SparePartResponse struct {
	ID      int    `json:"id"`
	OrderID int    `json:"service_order_id"`
	Name    string `json:"name"`
	Cost    int    `json:"cost"`
}

func FromSparePart(p entities.SparePart) SparePartResponse {
	return SparePartResponse{
		ID:      p.ID,
		OrderID: p.OrderID,
		Name:    p.Name,
		Cost:    p.Cost,
	}
}

func FromSpareParts(parts []entities.SparePart) []SparePartResponse {
	out := make([]SparePartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, FromSparePart(p))
	}
	return out
}

type SparePartListResponse struct {
	Parts []SparePartResponse `json:"parts"`
	Total int                 `json:"total"`
}

func FromSparePartListView(v usecase.SparePartListView) SparePartListResponse {
	return SparePartListResponse{
		Parts: FromSpareParts(v.Parts),
		Total: v.Total,
	}
}
