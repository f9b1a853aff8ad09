package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"taller_central/internal/domain/entities"
	mock_interfaces "taller_central/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newCustomerUseCase(ctrl *gomock.Controller) (*CustomerUseCase, *mock_interfaces.MockICustomerRepository, *mock_interfaces.MockIServiceOrderRepository, *mock_interfaces.MockIBudgetRepository, *mock_interfaces.MockISparePartRepository) {
	repo := mock_interfaces.NewMockICustomerRepository(ctrl)
	orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
	parts := mock_interfaces.NewMockISparePartRepository(ctrl)
	return NewCustomerUseCase(repo, orders, budgets, parts), repo, orders, budgets, parts
}

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("name required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _, _ := newCustomerUseCase(ctrl)

		_, err := uc.Create(context.Background(), CustomerInput{Name: "   "})
		if !errors.Is(err, ErrCustomerNameRequired) {
			t.Fatalf("expected ErrCustomerNameRequired, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newCustomerUseCase(ctrl)

		repo.EXPECT().FindByEmail(gomock.Any(), "ana@mail.com").Return(entities.Customer{ID: 7}, nil)

		_, err := uc.Create(context.Background(), CustomerInput{Name: "Ana", Email: "ana@mail.com"})
		if !errors.Is(err, ErrCustomerEmailTaken) {
			t.Fatalf("expected ErrCustomerEmailTaken, got %v", err)
		}
		if !strings.Contains(err.Error(), "ana@mail.com") {
			t.Fatalf("error should name the email: %v", err)
		}
	})

	t.Run("create success without email skips uniqueness check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newCustomerUseCase(ctrl)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.Name != "Ana" || c.Email != "" {
					t.Fatalf("unexpected customer: %+v", c)
				}
				c.ID = 1
				return c, nil
			},
		)

		created, err := uc.Create(context.Background(), CustomerInput{Name: " Ana "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != 1 {
			t.Fatalf("expected assigned id, got %+v", created)
		}
	})
}

func TestCustomerUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newCustomerUseCase(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), 9).Return(entities.Customer{}, nil)

		_, err := uc.Update(context.Background(), 9, CustomerPatch{})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("email change re-checks uniqueness against others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newCustomerUseCase(ctrl)

		email := "new@mail.com"
		repo.EXPECT().GetByID(gomock.Any(), 1).Return(entities.Customer{ID: 1, Name: "Ana", Email: "old@mail.com"}, nil)
		repo.EXPECT().FindByEmail(gomock.Any(), email).Return(entities.Customer{ID: 2}, nil)

		_, err := uc.Update(context.Background(), 1, CustomerPatch{Email: &email})
		if !errors.Is(err, ErrCustomerEmailTaken) {
			t.Fatalf("expected ErrCustomerEmailTaken, got %v", err)
		}
	})

	t.Run("own email does not conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newCustomerUseCase(ctrl)

		email := "new@mail.com"
		phone := "555-1234"
		repo.EXPECT().GetByID(gomock.Any(), 1).Return(entities.Customer{ID: 1, Name: "Ana", Email: "old@mail.com"}, nil)
		repo.EXPECT().FindByEmail(gomock.Any(), email).Return(entities.Customer{ID: 1, Name: "Ana"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.Email != email || c.Phone != phone || c.Name != "Ana" {
					t.Fatalf("unexpected customer: %+v", c)
				}
				return c, nil
			},
		)

		updated, err := uc.Update(context.Background(), 1, CustomerPatch{Email: &email, Phone: &phone})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Email != email {
			t.Fatalf("unexpected result: %+v", updated)
		}
	})

	t.Run("absent fields are left untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newCustomerUseCase(ctrl)

		name := "Ana Maria"
		repo.EXPECT().GetByID(gomock.Any(), 1).Return(entities.Customer{ID: 1, Name: "Ana", Address: "Av. 9", Phone: "555"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.Name != "Ana Maria" || c.Address != "Av. 9" || c.Phone != "555" {
					t.Fatalf("partial update clobbered fields: %+v", c)
				}
				return c, nil
			},
		)

		if _, err := uc.Update(context.Background(), 1, CustomerPatch{Name: &name}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCustomerUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newCustomerUseCase(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), 4).Return(entities.Customer{}, nil)

		err := uc.Delete(context.Background(), 4)
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("blocked by undelivered orders, count in message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, orders, _, _ := newCustomerUseCase(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), 1).Return(entities.Customer{ID: 1, Name: "Ana"}, nil)
		orders.EXPECT().ListByCustomer(gomock.Any(), 1).Return([]entities.ServiceOrder{
			{ID: 10, CustomerID: 1},
			{ID: 11, CustomerID: 1, Reviewed: true, Repaired: true, Delivered: true},
			{ID: 12, CustomerID: 1, Reviewed: true},
		}, nil)

		err := uc.Delete(context.Background(), 1)
		if !errors.Is(err, ErrCustomerHasPendingOrders) {
			t.Fatalf("expected ErrCustomerHasPendingOrders, got %v", err)
		}
		if !strings.Contains(err.Error(), "2") {
			t.Fatalf("error should report the pending count: %v", err)
		}
	})

	t.Run("delete cascades orders, budgets and parts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, orders, budgets, parts := newCustomerUseCase(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), 1).Return(entities.Customer{ID: 1, Name: "Ana"}, nil)
		orders.EXPECT().ListByCustomer(gomock.Any(), 1).Return([]entities.ServiceOrder{
			{ID: 10, CustomerID: 1, Reviewed: true, Repaired: true, Delivered: true},
		}, nil)
		budgets.EXPECT().FindByOrder(gomock.Any(), 10).Return(entities.Budget{ID: 5, OrderID: 10}, nil)
		budgets.EXPECT().Delete(gomock.Any(), 5).Return(nil)
		parts.EXPECT().ListByOrder(gomock.Any(), 10).Return([]entities.SparePart{{ID: 20, OrderID: 10}}, nil)
		parts.EXPECT().Delete(gomock.Any(), 20).Return(nil)
		orders.EXPECT().Delete(gomock.Any(), 10).Return(nil)
		repo.EXPECT().Delete(gomock.Any(), 1).Return(nil)

		if err := uc.Delete(context.Background(), 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCustomerUseCase_List(t *testing.T) {
	t.Run("computes order counts per customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, orders, _, _ := newCustomerUseCase(ctrl)

		repo.EXPECT().ListAll(gomock.Any()).Return([]entities.Customer{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Bruno"}}, nil)
		orders.EXPECT().ListAll(gomock.Any()).Return([]entities.ServiceOrder{
			{ID: 10, CustomerID: 1},
			{ID: 11, CustomerID: 1, Reviewed: true, Repaired: true, Delivered: true},
		}, nil)

		views, err := uc.List(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 2 {
			t.Fatalf("expected 2 customers, got %d", len(views))
		}
		if views[0].TotalOrders != 2 || views[0].PendingOrders != 1 {
			t.Fatalf("unexpected counts for Ana: %+v", views[0])
		}
		if views[1].TotalOrders != 0 || views[1].PendingOrders != 0 {
			t.Fatalf("unexpected counts for Bruno: %+v", views[1])
		}
	})

	t.Run("name filter delegates to FindByName", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, orders, _, _ := newCustomerUseCase(ctrl)

		repo.EXPECT().FindByName(gomock.Any(), "ana").Return([]entities.Customer{{ID: 1, Name: "Ana"}}, nil)
		orders.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

		views, err := uc.List(context.Background(), " ana ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 1 || views[0].Customer.Name != "Ana" {
			t.Fatalf("unexpected result: %+v", views)
		}
	})
}
