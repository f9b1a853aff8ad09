package usecase

import (
	"context"
	"errors"
	"fmt"

	"taller_central/internal/domain/entities"
	"taller_central/internal/usecase/interfaces"
)

var (
	ErrBudgetOrderRequired = errors.New("service order id is required")
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrBudgetAlreadyExists = errors.New("service order already has a budget")
	ErrBudgetAccepted      = errors.New("budget already accepted and can no longer be modified")
	ErrNegativeAmount      = errors.New("cost and labor must be non-negative")
)

// BudgetInput carries budget creation fields. A nil Cost means "use the
// order's stored repair estimate" — the snapshot deliberately comes from the
// review-time estimate, not from the live spare-part sum.
type BudgetInput struct {
	OrderID int
	Cost    *int
	Labor   *int
}

// BudgetPatch carries partial cost updates for a not-yet-accepted budget.
type BudgetPatch struct {
	Cost  *int
	Labor *int
}

// BudgetView pairs a budget with the live view of its order's spare parts.
// Total() is the stored snapshot + labor; LiveTotal is the current part sum +
// labor. The two may legitimately differ once parts are edited after the
// budget was drawn up.
type BudgetView struct {
	Budget     entities.Budget
	LiveParts  int
	LiveTotal  int
}

type IBudgetUseCase interface {
	Create(ctx context.Context, in BudgetInput) (entities.Budget, error)
	GetByID(ctx context.Context, id int) (BudgetView, error)
	GetByOrder(ctx context.Context, orderID int) (BudgetView, error)
	ListAll(ctx context.Context) ([]entities.Budget, error)
	ListPending(ctx context.Context) ([]entities.Budget, error)
	Update(ctx context.Context, id int, patch BudgetPatch) (entities.Budget, error)
	Accept(ctx context.Context, id int) (entities.Budget, error)
	Reject(ctx context.Context, id int) (entities.Budget, error)
	Delete(ctx context.Context, id int) error
	TotalEarnings(ctx context.Context) (int, error)
}

type BudgetUseCase struct {
	repo   interfaces.IBudgetRepository
	orders interfaces.IServiceOrderRepository
	parts  interfaces.ISparePartRepository

	transitions keyedMutex
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(
	repo interfaces.IBudgetRepository,
	orders interfaces.IServiceOrderRepository,
	parts interfaces.ISparePartRepository,
) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, orders: orders, parts: parts}
}

func (u *BudgetUseCase) Create(ctx context.Context, in BudgetInput) (entities.Budget, error) {
	if in.OrderID == 0 {
		return entities.Budget{}, ErrBudgetOrderRequired
	}

	order, err := u.orders.GetByID(ctx, in.OrderID)
	if err != nil {
		return entities.Budget{}, err
	}
	if order.ID == 0 {
		return entities.Budget{}, fmt.Errorf("%w: %d", ErrOrderNotFound, in.OrderID)
	}

	// Enforce: one budget per order.
	existing, err := u.repo.FindByOrder(ctx, in.OrderID)
	if err != nil {
		return entities.Budget{}, err
	}
	if existing.ID != 0 {
		return entities.Budget{}, fmt.Errorf("%w: order %d", ErrBudgetAlreadyExists, in.OrderID)
	}

	cost := order.EstimatedCost
	if in.Cost != nil {
		cost = *in.Cost
	}
	labor := 0
	if in.Labor != nil {
		labor = *in.Labor
	}
	if cost < 0 || labor < 0 {
		return entities.Budget{}, ErrNegativeAmount
	}

	b := entities.Budget{
		OrderID: in.OrderID,
		Cost:    cost,
		Labor:   labor,
	}
	return u.repo.Create(ctx, b)
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id int) (BudgetView, error) {
	b, err := u.load(ctx, id)
	if err != nil {
		return BudgetView{}, err
	}
	return u.buildView(ctx, b)
}

func (u *BudgetUseCase) GetByOrder(ctx context.Context, orderID int) (BudgetView, error) {
	b, err := u.repo.FindByOrder(ctx, orderID)
	if err != nil {
		return BudgetView{}, err
	}
	if b.ID == 0 {
		return BudgetView{}, fmt.Errorf("%w: order %d", ErrBudgetNotFound, orderID)
	}
	return u.buildView(ctx, b)
}

func (u *BudgetUseCase) ListAll(ctx context.Context) ([]entities.Budget, error) {
	return u.repo.ListAll(ctx)
}

func (u *BudgetUseCase) ListPending(ctx context.Context) ([]entities.Budget, error) {
	return u.repo.ListPending(ctx)
}

func (u *BudgetUseCase) Update(ctx context.Context, id int, patch BudgetPatch) (entities.Budget, error) {
	unlock := u.transitions.Lock(id)
	defer unlock()

	b, err := u.load(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.Accepted {
		return entities.Budget{}, fmt.Errorf("%w: %d", ErrBudgetAccepted, id)
	}
	if patch.Cost != nil && *patch.Cost < 0 {
		return entities.Budget{}, ErrNegativeAmount
	}
	if patch.Labor != nil && *patch.Labor < 0 {
		return entities.Budget{}, ErrNegativeAmount
	}

	b.UpdateCosts(patch.Cost, patch.Labor)
	return u.persist(ctx, b)
}

func (u *BudgetUseCase) Accept(ctx context.Context, id int) (entities.Budget, error) {
	return u.setAccepted(ctx, id, true)
}

func (u *BudgetUseCase) Reject(ctx context.Context, id int) (entities.Budget, error) {
	return u.setAccepted(ctx, id, false)
}

func (u *BudgetUseCase) setAccepted(ctx context.Context, id int, accepted bool) (entities.Budget, error) {
	unlock := u.transitions.Lock(id)
	defer unlock()

	b, err := u.load(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if accepted {
		b.Accept()
	} else {
		b.Reject()
	}
	return u.persist(ctx, b)
}

func (u *BudgetUseCase) Delete(ctx context.Context, id int) error {
	if _, err := u.load(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

// TotalEarnings sums the stored total over accepted budgets only.
func (u *BudgetUseCase) TotalEarnings(ctx context.Context) (int, error) {
	accepted, err := u.repo.ListAccepted(ctx)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, b := range accepted {
		total += b.Total()
	}
	return total, nil
}

func (u *BudgetUseCase) buildView(ctx context.Context, b entities.Budget) (BudgetView, error) {
	parts, err := u.parts.ListByOrder(ctx, b.OrderID)
	if err != nil {
		return BudgetView{}, err
	}
	liveParts := entities.SparePartsTotal(parts)
	return BudgetView{
		Budget:    b,
		LiveParts: liveParts,
		LiveTotal: liveParts + b.Labor,
	}, nil
}

func (u *BudgetUseCase) load(ctx context.Context, id int) (entities.Budget, error) {
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == 0 {
		return entities.Budget{}, fmt.Errorf("%w: %d", ErrBudgetNotFound, id)
	}
	return b, nil
}

func (u *BudgetUseCase) persist(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == 0 {
		return entities.Budget{}, fmt.Errorf("%w: %d", ErrBudgetNotFound, b.ID)
	}
	return updated, nil
}
