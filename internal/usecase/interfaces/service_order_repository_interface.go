package interfaces

import (
	"context"

	"taller_central/internal/domain/entities"
)

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// The filtered listings mirror the workshop queues:
//   - ListPendingReview: reviewed=false, oldest first (the review queue)
//   - ListInProgress: reviewed=true, repaired=false, oldest first
//   - ListReadyForDelivery: repaired=true, delivered=false, oldest first
//   - ListDelivered: delivered=true

type IServiceOrderRepository interface {
	Create(ctx context.Context, s entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id int) (entities.ServiceOrder, error)
	ListAll(ctx context.Context) ([]entities.ServiceOrder, error)
	ListByCustomer(ctx context.Context, customerID int) ([]entities.ServiceOrder, error)
	ListPendingReview(ctx context.Context) ([]entities.ServiceOrder, error)
	ListInProgress(ctx context.Context) ([]entities.ServiceOrder, error)
	ListReadyForDelivery(ctx context.Context) ([]entities.ServiceOrder, error)
	ListDelivered(ctx context.Context) ([]entities.ServiceOrder, error)
	Update(ctx context.Context, s entities.ServiceOrder) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id int) error
}
