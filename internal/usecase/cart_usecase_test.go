package usecase

import (
	"context"
	"errors"
	"testing"

	"smartsales365/internal/domain/entities"
	mock_interfaces "smartsales365/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCartUseCase_GetActive(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewCartUseCase(nil, nil)
		_, err := uc.GetActive(context.Background(), " ")
		if !errors.Is(err, ErrInvalidCartUserID) {
			t.Fatalf("expected ErrInvalidCartUserID, got %v", err)
		}
	})

	t.Run("returns existing cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCartUseCase(carts, nil)

		carts.EXPECT().GetActiveByUser(gomock.Any(), "u1").Return(entities.Cart{ID: "c1", UserID: "u1", Active: true}, nil)

		cart, err := uc.GetActive(context.Background(), "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cart.ID != "c1" {
			t.Fatalf("expected c1, got %s", cart.ID)
		}
	})

	t.Run("creates cart when none active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCartUseCase(carts, nil)

		carts.EXPECT().GetActiveByUser(gomock.Any(), "u1").Return(entities.Cart{}, nil)
		carts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Cart) (entities.Cart, error) {
				if !c.Active || c.UserID != "u1" || c.ID == "" {
					t.Fatalf("malformed new cart: %+v", c)
				}
				return c, nil
			})

		cart, err := uc.GetActive(context.Background(), "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Items) != 0 {
			t.Fatal("new cart must start empty")
		}
	})
}

func TestCartUseCase_AddItem(t *testing.T) {
	t.Run("rejects non positive quantity", func(t *testing.T) {
		uc := NewCartUseCase(nil, nil)
		_, err := uc.AddItem(context.Background(), "u1", "p1", 0)
		if !errors.Is(err, ErrInvalidCartItem) {
			t.Fatalf("expected ErrInvalidCartItem, got %v", err)
		}
	})

	t.Run("rejects inactive product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCartUseCase(nil, products)

		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Active: false}, nil)

		_, err := uc.AddItem(context.Background(), "u1", "p1", 1)
		if !errors.Is(err, ErrProductUnavailable) {
			t.Fatalf("expected ErrProductUnavailable, got %v", err)
		}
	})

	t.Run("rejects quantity above stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCartUseCase(nil, products)

		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Active: true, Stock: 1}, nil)

		_, err := uc.AddItem(context.Background(), "u1", "p1", 2)
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("adds new line with captured price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCartUseCase(carts, products)

		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Name: "Taladro", Price: 99.9, Active: true, Stock: 5}, nil)
		carts.EXPECT().GetActiveByUser(gomock.Any(), "u1").Return(entities.Cart{ID: "c1", UserID: "u1", Active: true}, nil)
		carts.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Cart) (entities.Cart, error) { return c, nil })

		cart, err := uc.AddItem(context.Background(), "u1", "p1", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Items) != 1 || cart.Items[0].UnitPrice != 99.9 || cart.Items[0].Quantity != 2 {
			t.Fatalf("unexpected items: %+v", cart.Items)
		}
		if cart.Total() != 199.8 {
			t.Fatalf("unexpected total %.2f", cart.Total())
		}
	})

	t.Run("bumps quantity of existing line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCartUseCase(carts, products)

		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Price: 10, Active: true, Stock: 10}, nil)
		carts.EXPECT().GetActiveByUser(gomock.Any(), "u1").Return(entities.Cart{
			ID: "c1", UserID: "u1", Active: true,
			Items: []entities.CartItem{{ProductID: "p1", Quantity: 1, UnitPrice: 10}},
		}, nil)
		carts.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Cart) (entities.Cart, error) { return c, nil })

		cart, err := uc.AddItem(context.Background(), "u1", "p1", 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Items) != 1 || cart.Items[0].Quantity != 4 {
			t.Fatalf("unexpected items: %+v", cart.Items)
		}
	})
}

func TestCartUseCase_RemoveItem(t *testing.T) {
	t.Run("item not in cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCartUseCase(carts, nil)

		carts.EXPECT().GetActiveByUser(gomock.Any(), "u1").Return(entities.Cart{ID: "c1", UserID: "u1", Active: true}, nil)

		_, err := uc.RemoveItem(context.Background(), "u1", "p9")
		if !errors.Is(err, ErrCartItemNotFound) {
			t.Fatalf("expected ErrCartItemNotFound, got %v", err)
		}
	})

	t.Run("removes line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCartUseCase(carts, nil)

		carts.EXPECT().GetActiveByUser(gomock.Any(), "u1").Return(entities.Cart{
			ID: "c1", UserID: "u1", Active: true,
			Items: []entities.CartItem{
				{ProductID: "p1", Quantity: 1, UnitPrice: 10},
				{ProductID: "p2", Quantity: 2, UnitPrice: 20},
			},
		}, nil)
		carts.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Cart) (entities.Cart, error) { return c, nil })

		cart, err := uc.RemoveItem(context.Background(), "u1", "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Items) != 1 || cart.Items[0].ProductID != "p2" {
			t.Fatalf("unexpected items: %+v", cart.Items)
		}
	})
}

func TestCartUseCase_UpdateItem(t *testing.T) {
	t.Run("zero quantity removes the line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewCartUseCase(carts, nil)

		carts.EXPECT().GetActiveByUser(gomock.Any(), "u1").Return(entities.Cart{
			ID: "c1", UserID: "u1", Active: true,
			Items: []entities.CartItem{{ProductID: "p1", Quantity: 2, UnitPrice: 10}},
		}, nil)
		carts.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Cart) (entities.Cart, error) { return c, nil })

		cart, err := uc.UpdateItem(context.Background(), "u1", "p1", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart.Items) != 0 {
			t.Fatalf("expected empty cart, got %+v", cart.Items)
		}
	})
}
