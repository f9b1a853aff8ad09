package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taller_central/internal/domain/entities"
	"taller_central/internal/usecase/interfaces"
)

var (
	ErrOrderCustomerRequired = errors.New("customer id is required")
	ErrOrderProductRequired  = errors.New("product name is required")
	ErrOrderNotFound         = errors.New("service order not found")
	ErrOrderDelivered        = errors.New("service order already delivered and can no longer be edited")
)

// ServiceOrderInput carries the fields accepted at intake.
type ServiceOrderInput struct {
	CustomerID  int
	Product     string
	Model       string
	Description string
	Fault       string
}

// ServiceOrderPatch carries partial-update fields for an order that has not
// been delivered yet. The creation date and the lifecycle flags are not
// updatable here; flags only move through the Mark* transitions.
type ServiceOrderPatch struct {
	Product       *string
	Model         *string
	Description   *string
	Fault         *string
	Notes         *string
	EstimatedCost *int
}

// ServiceOrderView is the detail projection: the order plus its spare parts,
// their live sum and whether a budget is attached.
type ServiceOrderView struct {
	Order      entities.ServiceOrder
	Parts      []entities.SparePart
	PartsTotal int
	HasBudget  bool
}

type IServiceOrderUseCase interface {
	Create(ctx context.Context, in ServiceOrderInput) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id int) (ServiceOrderView, error)
	Update(ctx context.Context, id int, patch ServiceOrderPatch) (entities.ServiceOrder, error)
	MarkReviewed(ctx context.Context, id int, notes string, estimatedCost int) (entities.ServiceOrder, error)
	MarkRepaired(ctx context.Context, id int) (entities.ServiceOrder, error)
	MarkDelivered(ctx context.Context, id int) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id int) error
	ListAll(ctx context.Context) ([]entities.ServiceOrder, error)
	ListByCustomer(ctx context.Context, customerID int) ([]entities.ServiceOrder, error)
	ListPendingReview(ctx context.Context) ([]entities.ServiceOrder, error)
	ListInProgress(ctx context.Context) ([]entities.ServiceOrder, error)
	ListReadyForDelivery(ctx context.Context) ([]entities.ServiceOrder, error)
	ListDelivered(ctx context.Context) ([]entities.ServiceOrder, error)
	Stats(ctx context.Context) (entities.OrderStats, error)
}

type ServiceOrderUseCase struct {
	repo      interfaces.IServiceOrderRepository
	customers interfaces.ICustomerRepository
	budgets   interfaces.IBudgetRepository
	parts     interfaces.ISparePartRepository

	transitions keyedMutex
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	repo interfaces.IServiceOrderRepository,
	customers interfaces.ICustomerRepository,
	budgets interfaces.IBudgetRepository,
	parts interfaces.ISparePartRepository,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{repo: repo, customers: customers, budgets: budgets, parts: parts}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, in ServiceOrderInput) (entities.ServiceOrder, error) {
	if in.CustomerID == 0 {
		return entities.ServiceOrder{}, ErrOrderCustomerRequired
	}
	product := strings.TrimSpace(in.Product)
	if product == "" {
		return entities.ServiceOrder{}, ErrOrderProductRequired
	}

	customer, err := u.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if customer.ID == 0 {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %d", ErrCustomerNotFound, in.CustomerID)
	}

	s := entities.ServiceOrder{
		CustomerID:  in.CustomerID,
		Date:        time.Now().UTC(),
		Product:     product,
		Model:       in.Model,
		Description: in.Description,
		Fault:       in.Fault,
	}
	return u.repo.Create(ctx, s)
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id int) (ServiceOrderView, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return ServiceOrderView{}, err
	}

	parts, err := u.parts.ListByOrder(ctx, id)
	if err != nil {
		return ServiceOrderView{}, err
	}
	b, err := u.budgets.FindByOrder(ctx, id)
	if err != nil {
		return ServiceOrderView{}, err
	}

	return ServiceOrderView{
		Order:      s,
		Parts:      parts,
		PartsTotal: entities.SparePartsTotal(parts),
		HasBudget:  b.ID != 0,
	}, nil
}

func (u *ServiceOrderUseCase) Update(ctx context.Context, id int, patch ServiceOrderPatch) (entities.ServiceOrder, error) {
	unlock := u.transitions.Lock(id)
	defer unlock()

	s, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if s.Delivered {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %d", ErrOrderDelivered, id)
	}

	if patch.Product != nil {
		product := strings.TrimSpace(*patch.Product)
		if product == "" {
			return entities.ServiceOrder{}, ErrOrderProductRequired
		}
		s.Product = product
	}
	if patch.Model != nil {
		s.Model = *patch.Model
	}
	if patch.Description != nil {
		s.Description = *patch.Description
	}
	if patch.Fault != nil {
		s.Fault = *patch.Fault
	}
	if patch.Notes != nil {
		s.Notes = *patch.Notes
	}
	if patch.EstimatedCost != nil {
		s.EstimatedCost = *patch.EstimatedCost
	}

	return u.persist(ctx, s)
}

// MarkReviewed sets the reviewed flag. It has no precondition and may be
// called again to refresh the review notes and cost estimate.
func (u *ServiceOrderUseCase) MarkReviewed(ctx context.Context, id int, notes string, estimatedCost int) (entities.ServiceOrder, error) {
	unlock := u.transitions.Lock(id)
	defer unlock()

	s, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	s.MarkReviewed(notes, estimatedCost)
	return u.persist(ctx, s)
}

func (u *ServiceOrderUseCase) MarkRepaired(ctx context.Context, id int) (entities.ServiceOrder, error) {
	unlock := u.transitions.Lock(id)
	defer unlock()

	s, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := s.MarkRepaired(); err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.persist(ctx, s)
}

func (u *ServiceOrderUseCase) MarkDelivered(ctx context.Context, id int) (entities.ServiceOrder, error) {
	unlock := u.transitions.Lock(id)
	defer unlock()

	s, err := u.load(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := s.MarkDelivered(); err != nil {
		return entities.ServiceOrder{}, err
	}
	return u.persist(ctx, s)
}

// Delete removes the order and cascades to its budget and spare parts. It
// takes the transition lock so the cascade cannot interleave with a racing
// lifecycle change on the same order.
func (u *ServiceOrderUseCase) Delete(ctx context.Context, id int) error {
	unlock := u.transitions.Lock(id)
	defer unlock()

	if _, err := u.load(ctx, id); err != nil {
		return err
	}

	b, err := u.budgets.FindByOrder(ctx, id)
	if err != nil {
		return err
	}
	if b.ID != 0 {
		if err := u.budgets.Delete(ctx, b.ID); err != nil {
			return err
		}
	}
	parts, err := u.parts.ListByOrder(ctx, id)
	if err != nil {
		return err
	}
	for _, p := range parts {
		if err := u.parts.Delete(ctx, p.ID); err != nil {
			return err
		}
	}
	return u.repo.Delete(ctx, id)
}

func (u *ServiceOrderUseCase) ListAll(ctx context.Context) ([]entities.ServiceOrder, error) {
	return u.repo.ListAll(ctx)
}

func (u *ServiceOrderUseCase) ListByCustomer(ctx context.Context, customerID int) ([]entities.ServiceOrder, error) {
	return u.repo.ListByCustomer(ctx, customerID)
}

func (u *ServiceOrderUseCase) ListPendingReview(ctx context.Context) ([]entities.ServiceOrder, error) {
	return u.repo.ListPendingReview(ctx)
}

func (u *ServiceOrderUseCase) ListInProgress(ctx context.Context) ([]entities.ServiceOrder, error) {
	return u.repo.ListInProgress(ctx)
}

func (u *ServiceOrderUseCase) ListReadyForDelivery(ctx context.Context) ([]entities.ServiceOrder, error) {
	return u.repo.ListReadyForDelivery(ctx)
}

func (u *ServiceOrderUseCase) ListDelivered(ctx context.Context) ([]entities.ServiceOrder, error) {
	return u.repo.ListDelivered(ctx)
}

// Stats buckets every order into exactly one lifecycle state.
func (u *ServiceOrderUseCase) Stats(ctx context.Context) (entities.OrderStats, error) {
	orders, err := u.repo.ListAll(ctx)
	if err != nil {
		return entities.OrderStats{}, err
	}

	stats := entities.OrderStats{Total: len(orders)}
	for _, o := range orders {
		switch o.Status() {
		case entities.OrderStatusPendiente:
			stats.Pending++
		case entities.OrderStatusRevisado:
			stats.Reviewed++
		case entities.OrderStatusReparado:
			stats.Repaired++
		case entities.OrderStatusEntregado:
			stats.Delivered++
		}
	}
	return stats, nil
}

func (u *ServiceOrderUseCase) load(ctx context.Context, id int) (entities.ServiceOrder, error) {
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if s.ID == 0 {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %d", ErrOrderNotFound, id)
	}
	return s, nil
}

func (u *ServiceOrderUseCase) persist(ctx context.Context, s entities.ServiceOrder) (entities.ServiceOrder, error) {
	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == 0 {
		return entities.ServiceOrder{}, fmt.Errorf("%w: %d", ErrOrderNotFound, s.ID)
	}
	return updated, nil
}
