package interfaces

import (
	"context"

	"taller_central/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.
//
// Lookups return the zero value with a nil error when nothing matches; the
// use cases translate that into their not-found errors. Create assigns the
// identifier; Update requires one (no save-style dispatch on id presence).

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id int) (entities.Customer, error)
	FindByEmail(ctx context.Context, email string) (entities.Customer, error)
	FindByName(ctx context.Context, name string) ([]entities.Customer, error)
	ListAll(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id int) error
}
