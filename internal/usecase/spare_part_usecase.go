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
	ErrPartNameRequired = errors.New("spare part name is required")
	ErrPartNotFound     = errors.New("spare part not found")
	ErrPartNegativeCost = errors.New("spare part cost must be non-negative")
)

type SparePartInput struct {
	Name string
	Cost int
}

type SparePartPatch struct {
	Name *string
	Cost *int
}

// SparePartListView is a part listing with its running sum.
type SparePartListView struct {
	Parts []entities.SparePart
	Total int
}

// ISparePartUseCase exposes spare-part CRUD, always scoped to the owning
// order: a part id that exists but belongs to a different order is treated as
// not found.
type ISparePartUseCase interface {
	Add(ctx context.Context, orderID int, in SparePartInput) (entities.SparePart, error)
	ListByOrder(ctx context.Context, orderID int) (SparePartListView, error)
	Update(ctx context.Context, orderID, partID int, patch SparePartPatch) (entities.SparePart, error)
	Remove(ctx context.Context, orderID, partID int) error
}

type SparePartUseCase struct {
	repo   interfaces.ISparePartRepository
	orders interfaces.IServiceOrderRepository
}

var _ ISparePartUseCase = (*SparePartUseCase)(nil)

func NewSparePartUseCase(repo interfaces.ISparePartRepository, orders interfaces.IServiceOrderRepository) *SparePartUseCase {
	return &SparePartUseCase{repo: repo, orders: orders}
}

func (u *SparePartUseCase) Add(ctx context.Context, orderID int, in SparePartInput) (entities.SparePart, error) {
	if err := u.requireOrder(ctx, orderID); err != nil {
		return entities.SparePart{}, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.SparePart{}, ErrPartNameRequired
	}
	if in.Cost < 0 {
		return entities.SparePart{}, ErrPartNegativeCost
	}

	p := entities.SparePart{
		OrderID: orderID,
		Name:    name,
		Cost:    in.Cost,
	}
	return u.repo.Create(ctx, p)
}

func (u *SparePartUseCase) ListByOrder(ctx context.Context, orderID int) (SparePartListView, error) {
	if err := u.requireOrder(ctx, orderID); err != nil {
		return SparePartListView{}, err
	}

	parts, err := u.repo.ListByOrder(ctx, orderID)
	if err != nil {
		return SparePartListView{}, err
	}
	return SparePartListView{Parts: parts, Total: entities.SparePartsTotal(parts)}, nil
}

func (u *SparePartUseCase) Update(ctx context.Context, orderID, partID int, patch SparePartPatch) (entities.SparePart, error) {
	p, err := u.loadScoped(ctx, orderID, partID)
	if err != nil {
		return entities.SparePart{}, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return entities.SparePart{}, ErrPartNameRequired
		}
		p.Name = name
	}
	if patch.Cost != nil {
		if *patch.Cost < 0 {
			return entities.SparePart{}, ErrPartNegativeCost
		}
		p.Cost = *patch.Cost
	}

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.SparePart{}, err
	}
	if updated.ID == 0 {
		return entities.SparePart{}, fmt.Errorf("%w: %d", ErrPartNotFound, partID)
	}
	return updated, nil
}

func (u *SparePartUseCase) Remove(ctx context.Context, orderID, partID int) error {
	if _, err := u.loadScoped(ctx, orderID, partID); err != nil {
		return err
	}
	return u.repo.Delete(ctx, partID)
}

func (u *SparePartUseCase) requireOrder(ctx context.Context, orderID int) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.ID == 0 {
		return fmt.Errorf("%w: %d", ErrOrderNotFound, orderID)
	}
	return nil
}

// loadScoped resolves a part and validates it belongs to the given order;
// cross-order references are reported as not found.
func (u *SparePartUseCase) loadScoped(ctx context.Context, orderID, partID int) (entities.SparePart, error) {
	if err := u.requireOrder(ctx, orderID); err != nil {
		return entities.SparePart{}, err
	}

	p, err := u.repo.GetByID(ctx, partID)
	if err != nil {
		return entities.SparePart{}, err
	}
	if p.ID == 0 || p.OrderID != orderID {
		return entities.SparePart{}, fmt.Errorf("%w: %d", ErrPartNotFound, partID)
	}
	return p, nil
}
