package usecase

import (
	"context"
	"errors"
	"testing"

	"taller_central/internal/domain/entities"
	mock_interfaces "taller_central/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newSparePartUseCase(ctrl *gomock.Controller) (*SparePartUseCase, *mock_interfaces.MockISparePartRepository, *mock_interfaces.MockIServiceOrderRepository) {
	repo := mock_interfaces.NewMockISparePartRepository(ctrl)
	orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	return NewSparePartUseCase(repo, orders), repo, orders
}

func TestSparePartUseCase_Add(t *testing.T) {
	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, orders := newSparePartUseCase(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), 10).Return(entities.ServiceOrder{}, nil)

		_, err := uc.Add(context.Background(), 10, SparePartInput{Name: "bujía"})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("name required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, orders := newSparePartUseCase(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), 10).Return(entities.ServiceOrder{ID: 10}, nil)

		_, err := uc.Add(context.Background(), 10, SparePartInput{Name: "   "})
		if !errors.Is(err, ErrPartNameRequired) {
			t.Fatalf("expected ErrPartNameRequired, got %v", err)
		}
	})

	t.Run("negative cost rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, orders := newSparePartUseCase(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), 10).Return(entities.ServiceOrder{ID: 10}, nil)

		_, err := uc.Add(context.Background(), 10, SparePartInput{Name: "bujía", Cost: -1})
		if !errors.Is(err, ErrPartNegativeCost) {
			t.Fatalf("expected ErrPartNegativeCost, got %v", err)
		}
	})

	t.Run("success trims the part name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, orders := newSparePartUseCase(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), 10).Return(entities.ServiceOrder{ID: 10}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.SparePart{})).DoAndReturn(
			func(_ context.Context, p entities.SparePart) (entities.SparePart, error) {
				if p.Name != "bujía" || p.OrderID != 10 || p.Cost != 25 {
					t.Fatalf("unexpected part: %+v", p)
				}
				p.ID = 1
				return p, nil
			},
		)

		created, err := uc.Add(context.Background(), 10, SparePartInput{Name: "  bujía ", Cost: 25})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != 1 {
			t.Fatalf("expected assigned id, got %+v", created)
		}
	})
}

func TestSparePartUseCase_ListByOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo, orders := newSparePartUseCase(ctrl)

	orders.EXPECT().GetByID(gomock.Any(), 10).Return(entities.ServiceOrder{ID: 10}, nil)
	repo.EXPECT().ListByOrder(gomock.Any(), 10).Return([]entities.SparePart{
		{ID: 1, OrderID: 10, Name: "bujía", Cost: 25},
		{ID: 2, OrderID: 10, Name: "correa", Cost: 40},
	}, nil)

	view, err := uc.ListByOrder(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Parts) != 2 || view.Total != 65 {
		t.Fatalf("expected 2 parts totalling 65, got %d/%d", len(view.Parts), view.Total)
	}
}

func TestSparePartUseCase_Update(t *testing.T) {
	t.Run("part of another order is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, orders := newSparePartUseCase(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), 10).Return(entities.ServiceOrder{ID: 10}, nil)
		repo.EXPECT().GetByID(gomock.Any(), 7).Return(entities.SparePart{ID: 7, OrderID: 99, Name: "correa"}, nil)

		cost := 10
		_, err := uc.Update(context.Background(), 10, 7, SparePartPatch{Cost: &cost})
		if !errors.Is(err, ErrPartNotFound) {
			t.Fatalf("expected ErrPartNotFound, got %v", err)
		}
	})

	t.Run("partial update keeps absent fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, orders := newSparePartUseCase(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), 10).Return(entities.ServiceOrder{ID: 10}, nil)
		repo.EXPECT().GetByID(gomock.Any(), 7).Return(entities.SparePart{ID: 7, OrderID: 10, Name: "correa", Cost: 40}, nil)
		cost := 55
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.SparePart{})).DoAndReturn(
			func(_ context.Context, p entities.SparePart) (entities.SparePart, error) {
				if p.Name != "correa" || p.Cost != 55 {
					t.Fatalf("unexpected part: %+v", p)
				}
				return p, nil
			},
		)

		updated, err := uc.Update(context.Background(), 10, 7, SparePartPatch{Cost: &cost})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Cost != 55 {
			t.Fatalf("expected cost 55, got %d", updated.Cost)
		}
	})

	t.Run("blank name rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, orders := newSparePartUseCase(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), 10).Return(entities.ServiceOrder{ID: 10}, nil)
		repo.EXPECT().GetByID(gomock.Any(), 7).Return(entities.SparePart{ID: 7, OrderID: 10, Name: "correa"}, nil)

		name := "  "
		_, err := uc.Update(context.Background(), 10, 7, SparePartPatch{Name: &name})
		if !errors.Is(err, ErrPartNameRequired) {
			t.Fatalf("expected ErrPartNameRequired, got %v", err)
		}
	})
}

func TestSparePartUseCase_Remove(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, orders := newSparePartUseCase(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), 10).Return(entities.ServiceOrder{ID: 10}, nil)
		repo.EXPECT().GetByID(gomock.Any(), 7).Return(entities.SparePart{ID: 7, OrderID: 10, Name: "correa"}, nil)
		repo.EXPECT().Delete(gomock.Any(), 7).Return(nil)

		if err := uc.Remove(context.Background(), 10, 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cross-order removal refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, orders := newSparePartUseCase(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), 10).Return(entities.ServiceOrder{ID: 10}, nil)
		repo.EXPECT().GetByID(gomock.Any(), 7).Return(entities.SparePart{ID: 7, OrderID: 99}, nil)

		if err := uc.Remove(context.Background(), 10, 7); !errors.Is(err, ErrPartNotFound) {
			t.Fatalf("expected ErrPartNotFound, got %v", err)
		}
	})
}
