package interfaces

import (
	"context"

	"taller_central/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// FindByOrder resolves the at-most-one budget of a service order; the
// one-per-order constraint itself is enforced by the budget use case before
// Create.

type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id int) (entities.Budget, error)
	FindByOrder(ctx context.Context, orderID int) (entities.Budget, error)
	ListAll(ctx context.Context) ([]entities.Budget, error)
	ListPending(ctx context.Context) ([]entities.Budget, error)
	ListAccepted(ctx context.Context) ([]entities.Budget, error)
	Update(ctx context.Context, b entities.Budget) (entities.Budget, error)
	Delete(ctx context.Context, id int) error
}
