package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"smartsales365/internal/domain/entities"
	mock_interfaces "smartsales365/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSaleUseCase_Checkout(t *testing.T) {
	actor := Actor{Username: "ana", IP: "10.0.0.2"}

	t.Run("no active cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewSaleUseCase(nil, carts, nil, nil, nil, nil)

		carts.EXPECT().GetActiveByUser(gomock.Any(), "u1").Return(entities.Cart{}, nil)

		_, err := uc.Checkout(context.Background(), "u1", actor)
		if !errors.Is(err, ErrCartNotFound) {
			t.Fatalf("expected ErrCartNotFound, got %v", err)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		uc := NewSaleUseCase(nil, carts, nil, nil, nil, nil)

		carts.EXPECT().GetActiveByUser(gomock.Any(), "u1").Return(entities.Cart{ID: "c1", UserID: "u1", Active: true}, nil)

		_, err := uc.Checkout(context.Background(), "u1", actor)
		if !errors.Is(err, ErrCartEmpty) {
			t.Fatalf("expected ErrCartEmpty, got %v", err)
		}
	})

	t.Run("insufficient stock aborts before any decrement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewSaleUseCase(nil, carts, products, nil, nil, nil)

		cart := entities.Cart{ID: "c1", UserID: "u1", Active: true, Items: []entities.CartItem{
			{ProductID: "p1", Quantity: 3, UnitPrice: 10},
		}}
		carts.EXPECT().GetActiveByUser(gomock.Any(), "u1").Return(cart, nil)
		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Name: "Taladro", Price: 10, Stock: 2, Active: true}, nil)

		_, err := uc.Checkout(context.Background(), "u1", actor)
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("checkout success applies discount and deactivates cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		carts := mock_interfaces.NewMockICartRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		discounts := mock_interfaces.NewMockIDiscountRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditRepository(ctrl)
		uc := NewSaleUseCase(sales, carts, products, discounts, audit, nil)

		cart := entities.Cart{ID: "c1", UserID: "u1", Active: true, Items: []entities.CartItem{
			{ProductID: "p1", ProductName: "Taladro", Quantity: 2, UnitPrice: 100},
		}}
		now := time.Now().UTC()
		carts.EXPECT().GetActiveByUser(gomock.Any(), "u1").Return(cart, nil)
		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Name: "Taladro", Price: 100, Stock: 5, Active: true}, nil)
		discounts.EXPECT().ListByProduct(gomock.Any(), "p1").Return([]entities.Discount{
			{ID: "d1", ProductID: "p1", Percentage: 10, Active: true, Start: now.AddDate(0, 0, -1), End: now.AddDate(0, 0, 1)},
		}, nil)
		products.EXPECT().DecrementStock(gomock.Any(), "p1", 2).Return(entities.Product{ID: "p1", Stock: 3}, nil)

		var created entities.Sale
		sales.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Sale) (entities.Sale, error) {
				created = s
				return s, nil
			})
		carts.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Cart) (entities.Cart, error) {
				if c.Active {
					t.Fatal("cart must be deactivated after checkout")
				}
				return c, nil
			})
		audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		out, err := uc.Checkout(context.Background(), "u1", actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.SaleStatusPendiente {
			t.Fatalf("expected pendiente, got %s", out.Status)
		}
		if created.Total != 180 {
			t.Fatalf("expected discounted total 180, got %.2f", created.Total)
		}
		if created.Items[0].UnitPrice != 90 {
			t.Fatalf("expected discounted unit price 90, got %.2f", created.Items[0].UnitPrice)
		}
	})
}

func TestSaleUseCase_Pay(t *testing.T) {
	actor := Actor{Username: "ana"}

	t.Run("invalid sale id", func(t *testing.T) {
		uc := NewSaleUseCase(nil, nil, nil, nil, nil, mockGateway(t))
		_, err := uc.Pay(context.Background(), "  ", json.RawMessage(`{}`), actor)
		if !errors.Is(err, ErrInvalidSaleID) {
			t.Fatalf("expected ErrInvalidSaleID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewSaleUseCase(nil, nil, nil, nil, nil, mockGateway(t))
		_, err := uc.Pay(context.Background(), "v1", json.RawMessage(`not-json`), actor)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("sale not pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(sales, nil, nil, nil, nil, mockGateway(t))

		sales.EXPECT().GetByID(gomock.Any(), "v1").Return(entities.Sale{ID: "v1", Status: entities.SaleStatusPagado}, nil)

		_, err := uc.Pay(context.Background(), "v1", json.RawMessage(`{"payment_method_id":"visa"}`), actor)
		if !errors.Is(err, ErrSaleNotPending) {
			t.Fatalf("expected ErrSaleNotPending, got %v", err)
		}
	})

	t.Run("approved payment marks sale paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSaleUseCase(sales, nil, nil, nil, audit, gateway)

		sale := entities.Sale{ID: "v1", Status: entities.SaleStatusPendiente, Total: 250}
		sales.EXPECT().GetByID(gomock.Any(), "v1").Return(sale, nil)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				if m["external_reference"] != "v1" {
					t.Fatalf("expected external_reference v1, got %v", m["external_reference"])
				}
				if m["transaction_amount"] != 250.0 {
					t.Fatalf("amount must come from the stored sale, got %v", m["transaction_amount"])
				}
				return "mp-1", "approved", nil
			})
		sales.EXPECT().UpdateStatus(gomock.Any(), "v1", entities.SaleStatusPagado).
			Return(entities.Sale{ID: "v1", Status: entities.SaleStatusPagado, Total: 250}, nil)
		audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		out, err := uc.Pay(context.Background(), "v1", json.RawMessage(`{"payment_method_id":"visa"}`), actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.SaleStatusPagado {
			t.Fatalf("expected pagado, got %s", out.Status)
		}
	})

	t.Run("pending provider status keeps sale pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSaleUseCase(sales, nil, nil, nil, nil, gateway)

		sale := entities.Sale{ID: "v1", Status: entities.SaleStatusPendiente, Total: 50}
		sales.EXPECT().GetByID(gomock.Any(), "v1").Return(sale, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("mp-2", "in_process", nil)

		out, err := uc.Pay(context.Background(), "v1", json.RawMessage(`{"payment_method_id":"visa"}`), actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.SaleStatusPendiente {
			t.Fatalf("expected pendiente, got %s", out.Status)
		}
	})

	t.Run("gateway bad request maps to sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSaleUseCase(sales, nil, nil, nil, nil, gateway)

		sales.EXPECT().GetByID(gomock.Any(), "v1").Return(entities.Sale{ID: "v1", Status: entities.SaleStatusPendiente}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", errors.New(`mercadopago error: {"error":"bad_request","status":400}`))

		_, err := uc.Pay(context.Background(), "v1", json.RawMessage(`{"payment_method_id":"visa"}`), actor)
		if !errors.Is(err, ErrPaymentGatewayBadRequest) {
			t.Fatalf("expected ErrPaymentGatewayBadRequest, got %v", err)
		}
	})
}

func TestSaleUseCase_ConfirmPayment(t *testing.T) {
	t.Run("approved transitions pending sale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(sales, nil, nil, nil, nil, nil)

		sales.EXPECT().GetByID(gomock.Any(), "v1").Return(entities.Sale{ID: "v1", Status: entities.SaleStatusPendiente}, nil)
		sales.EXPECT().UpdateStatus(gomock.Any(), "v1", entities.SaleStatusPagado).
			Return(entities.Sale{ID: "v1", Status: entities.SaleStatusPagado}, nil)

		out, err := uc.ConfirmPayment(context.Background(), "v1", "approved")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.SaleStatusPagado {
			t.Fatalf("expected pagado, got %s", out.Status)
		}
	})

	t.Run("duplicate webhook is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(sales, nil, nil, nil, nil, nil)

		sales.EXPECT().GetByID(gomock.Any(), "v1").Return(entities.Sale{ID: "v1", Status: entities.SaleStatusPagado}, nil)

		out, err := uc.ConfirmPayment(context.Background(), "v1", "approved")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.SaleStatusPagado {
			t.Fatalf("expected pagado, got %s", out.Status)
		}
	})

	t.Run("non approved status is acknowledged without change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sales := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(sales, nil, nil, nil, nil, nil)

		sales.EXPECT().GetByID(gomock.Any(), "v1").Return(entities.Sale{ID: "v1", Status: entities.SaleStatusPendiente}, nil)

		out, err := uc.ConfirmPayment(context.Background(), "v1", "rejected")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.SaleStatusPendiente {
			t.Fatalf("expected pendiente, got %s", out.Status)
		}
	})
}

func TestSaleUseCase_Warranties(t *testing.T) {
	ctrl := gomock.NewController(t)
	sales := mock_interfaces.NewMockISaleRepository(ctrl)
	products := mock_interfaces.NewMockIProductRepository(ctrl)
	uc := NewSaleUseCase(sales, nil, products, nil, nil, nil)

	saleDate := time.Now().UTC().AddDate(0, -3, 0)
	sale := entities.Sale{ID: "v1", Date: saleDate, Status: entities.SaleStatusPagado, Items: []entities.SaleItem{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 1},
		{ProductID: "p3", Quantity: 1},
	}}
	sales.EXPECT().GetByID(gomock.Any(), "v1").Return(sale, nil)
	products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", WarrantyMonths: 12}, nil)
	products.EXPECT().GetByID(gomock.Any(), "p2").Return(entities.Product{ID: "p2", WarrantyMonths: 1}, nil)
	products.EXPECT().GetByID(gomock.Any(), "p3").Return(entities.Product{ID: "p3"}, nil)

	warranties, err := uc.Warranties(context.Background(), "v1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warranties) != 2 {
		t.Fatalf("expected 2 warranties, got %d", len(warranties))
	}
	if warranties[0].Status != entities.WarrantyStatusActiva {
		t.Fatalf("12-month warranty must still be active, got %s", warranties[0].Status)
	}
	if warranties[1].Status != entities.WarrantyStatusCaducada {
		t.Fatalf("1-month warranty must be expired, got %s", warranties[1].Status)
	}
	if !warranties[0].End.Equal(saleDate.AddDate(0, 12, 0)) {
		t.Fatalf("unexpected warranty end: %v", warranties[0].End)
	}
}

func mockGateway(t *testing.T) *mock_interfaces.MockIPaymentGateway {
	t.Helper()
	return mock_interfaces.NewMockIPaymentGateway(gomock.NewController(t))
}
