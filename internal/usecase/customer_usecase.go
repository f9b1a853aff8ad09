package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taller_central/internal/domain/entities"
	"taller_central/internal/usecase/interfaces"
)

var (
	ErrCustomerNameRequired     = errors.New("customer name is required")
	ErrCustomerEmailTaken       = errors.New("a customer with this email already exists")
	ErrCustomerNotFound         = errors.New("customer not found")
	ErrCustomerHasPendingOrders = errors.New("customer cannot be deleted while it has undelivered service orders")
)

// CustomerInput carries the fields accepted when creating a customer.
type CustomerInput struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// CustomerPatch carries partial-update fields. Nil pointers leave the stored
// value untouched; they are never treated as "clear this field".
type CustomerPatch struct {
	Name    *string
	Address *string
	Phone   *string
	Email   *string
}

// CustomerView pairs a customer with its derived order counts. The counts are
// computed from the owned orders on every read, never persisted.
type CustomerView struct {
	Customer      entities.Customer
	TotalOrders   int
	PendingOrders int
}

type ICustomerUseCase interface {
	Create(ctx context.Context, in CustomerInput) (entities.Customer, error)
	GetByID(ctx context.Context, id int) (CustomerView, error)
	List(ctx context.Context, nameFilter string) ([]CustomerView, error)
	Update(ctx context.Context, id int, patch CustomerPatch) (entities.Customer, error)
	Delete(ctx context.Context, id int) error
}

type CustomerUseCase struct {
	repo    interfaces.ICustomerRepository
	orders  interfaces.IServiceOrderRepository
	budgets interfaces.IBudgetRepository
	parts   interfaces.ISparePartRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(
	repo interfaces.ICustomerRepository,
	orders interfaces.IServiceOrderRepository,
	budgets interfaces.IBudgetRepository,
	parts interfaces.ISparePartRepository,
) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, orders: orders, budgets: budgets, parts: parts}
}

func (u *CustomerUseCase) Create(ctx context.Context, in CustomerInput) (entities.Customer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Customer{}, ErrCustomerNameRequired
	}

	email := strings.TrimSpace(in.Email)
	if email != "" {
		existing, err := u.repo.FindByEmail(ctx, email)
		if err != nil {
			return entities.Customer{}, err
		}
		if existing.ID != 0 {
			return entities.Customer{}, fmt.Errorf("%w: %s", ErrCustomerEmailTaken, email)
		}
	}

	c := entities.Customer{
		Name:    name,
		Address: in.Address,
		Phone:   in.Phone,
		Email:   email,
	}
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id int) (CustomerView, error) {
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return CustomerView{}, err
	}
	if c.ID == 0 {
		return CustomerView{}, fmt.Errorf("%w: %d", ErrCustomerNotFound, id)
	}
	return u.buildView(ctx, c)
}

func (u *CustomerUseCase) List(ctx context.Context, nameFilter string) ([]CustomerView, error) {
	var (
		customers []entities.Customer
		err       error
	)
	if f := strings.TrimSpace(nameFilter); f != "" {
		customers, err = u.repo.FindByName(ctx, f)
	} else {
		customers, err = u.repo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	// One pass over all orders instead of a lookup per customer.
	orders, err := u.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	total := make(map[int]int, len(customers))
	pending := make(map[int]int, len(customers))
	for _, o := range orders {
		total[o.CustomerID]++
		if !o.Delivered {
			pending[o.CustomerID]++
		}
	}

	views := make([]CustomerView, 0, len(customers))
	for _, c := range customers {
		views = append(views, CustomerView{
			Customer:      c,
			TotalOrders:   total[c.ID],
			PendingOrders: pending[c.ID],
		})
	}
	return views, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id int, patch CustomerPatch) (entities.Customer, error) {
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == 0 {
		return entities.Customer{}, fmt.Errorf("%w: %d", ErrCustomerNotFound, id)
	}

	if patch.Email != nil {
		email := strings.TrimSpace(*patch.Email)
		if email != "" && email != c.Email {
			existing, err := u.repo.FindByEmail(ctx, email)
			if err != nil {
				return entities.Customer{}, err
			}
			if existing.ID != 0 && existing.ID != id {
				return entities.Customer{}, fmt.Errorf("%w: %s", ErrCustomerEmailTaken, email)
			}
		}
		c.Email = email
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return entities.Customer{}, ErrCustomerNameRequired
		}
		c.Name = name
	}
	if patch.Address != nil {
		c.Address = *patch.Address
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	if updated.ID == 0 {
		return entities.Customer{}, fmt.Errorf("%w: %d", ErrCustomerNotFound, id)
	}
	return updated, nil
}

// Delete removes a customer and cascades to its orders, their budgets and
// spare parts. It is refused while any owned order is undelivered.
func (u *CustomerUseCase) Delete(ctx context.Context, id int) error {
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.ID == 0 {
		return fmt.Errorf("%w: %d", ErrCustomerNotFound, id)
	}

	orders, err := u.orders.ListByCustomer(ctx, id)
	if err != nil {
		return err
	}
	pending := 0
	for _, o := range orders {
		if !o.Delivered {
			pending++
		}
	}
	if pending > 0 {
		return fmt.Errorf("%w: %d pending", ErrCustomerHasPendingOrders, pending)
	}

	for _, o := range orders {
		if err := u.cascadeDeleteOrder(ctx, o.ID); err != nil {
			return err
		}
	}
	return u.repo.Delete(ctx, id)
}

func (u *CustomerUseCase) cascadeDeleteOrder(ctx context.Context, orderID int) error {
	b, err := u.budgets.FindByOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if b.ID != 0 {
		if err := u.budgets.Delete(ctx, b.ID); err != nil {
			return err
		}
	}

	parts, err := u.parts.ListByOrder(ctx, orderID)
	if err != nil {
		return err
	}
	for _, p := range parts {
		if err := u.parts.Delete(ctx, p.ID); err != nil {
			return err
		}
	}
	return u.orders.Delete(ctx, orderID)
}

func (u *CustomerUseCase) buildView(ctx context.Context, c entities.Customer) (CustomerView, error) {
	orders, err := u.orders.ListByCustomer(ctx, c.ID)
	if err != nil {
		return CustomerView{}, err
	}
	view := CustomerView{Customer: c, TotalOrders: len(orders)}
	for _, o := range orders {
		if !o.Delivered {
			view.PendingOrders++
		}
	}
	return view, nil
}
