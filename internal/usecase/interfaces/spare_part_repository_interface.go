package interfaces

import (
	"context"

	"taller_central/internal/domain/entities"
)

// ISparePartRepository abstracts DynamoDB persistence for SparePart.

type ISparePartRepository interface {
	Create(ctx context.Context, p entities.SparePart) (entities.SparePart, error)
	GetByID(ctx context.Context, id int) (entities.SparePart, error)
	ListByOrder(ctx context.Context, orderID int) ([]entities.SparePart, error)
	Update(ctx context.Context, p entities.SparePart) (entities.SparePart, error)
	Delete(ctx context.Context, id int) error
}
