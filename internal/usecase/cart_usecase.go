package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"smartsales365/internal/domain/entities"
	"smartsales365/internal/usecase/interfaces"
)

var (
	ErrInvalidCartUserID  = errors.New("invalid cart user id")
	ErrInvalidCartItem    = errors.New("invalid cart item")
	ErrCartItemNotFound   = errors.New("item not in cart")
	ErrProductUnavailable = errors.New("product unavailable")
)

// ICartUseCase manages the active cart of a user: one per user, created on
// first add, consumed by checkout.

type ICartUseCase interface {
	GetActive(ctx context.Context, userID string) (entities.Cart, error)
	AddItem(ctx context.Context, userID, productID string, quantity int) (entities.Cart, error)
	UpdateItem(ctx context.Context, userID, productID string, quantity int) (entities.Cart, error)
	RemoveItem(ctx context.Context, userID, productID string) (entities.Cart, error)
	Clear(ctx context.Context, userID string) (entities.Cart, error)
}

type CartUseCase struct {
	carts    interfaces.ICartRepository
	products interfaces.IProductRepository
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(carts interfaces.ICartRepository, products interfaces.IProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// GetActive returns the user's active cart, creating an empty one when none
// exists yet.
func (u *CartUseCase) GetActive(ctx context.Context, userID string) (entities.Cart, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Cart{}, ErrInvalidCartUserID
	}
	cart, err := u.carts.GetActiveByUser(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}
	if cart.ID != "" {
		return cart, nil
	}

	now := time.Now().UTC()
	cart = entities.Cart{
		ID:        uuid.NewString(),
		UserID:    userID,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.carts.Create(ctx, cart)
	if err != nil {
		log.Printf("[cart][usecase] create failed usuario_id=%s err=%v", userID, err)
		return entities.Cart{}, err
	}
	return created, nil
}

// AddItem appends the product or bumps its quantity when already present. The
// unit price is captured at add time, so later catalog edits do not reprice
// the cart.
func (u *CartUseCase) AddItem(ctx context.Context, userID, productID string, quantity int) (entities.Cart, error) {
	if quantity <= 0 {
		return entities.Cart{}, fmt.Errorf("%w: cantidad must be positive", ErrInvalidCartItem)
	}
	product, err := u.products.GetByID(ctx, strings.TrimSpace(productID))
	if err != nil {
		return entities.Cart{}, err
	}
	if product.ID == "" || !product.Active {
		return entities.Cart{}, ErrProductUnavailable
	}
	if product.Stock < quantity {
		return entities.Cart{}, fmt.Errorf("%w: %s", ErrInsufficientStock, product.Name)
	}

	cart, err := u.GetActive(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == product.ID {
			cart.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, entities.CartItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    quantity,
			UnitPrice:   product.Price,
		})
	}
	return u.save(ctx, cart)
}

func (u *CartUseCase) UpdateItem(ctx context.Context, userID, productID string, quantity int) (entities.Cart, error) {
	if quantity <= 0 {
		return u.RemoveItem(ctx, userID, productID)
	}
	cart, err := u.GetActive(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			return u.save(ctx, cart)
		}
	}
	return entities.Cart{}, ErrCartItemNotFound
}

func (u *CartUseCase) RemoveItem(ctx context.Context, userID, productID string) (entities.Cart, error) {
	cart, err := u.GetActive(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return u.save(ctx, cart)
		}
	}
	return entities.Cart{}, ErrCartItemNotFound
}

func (u *CartUseCase) Clear(ctx context.Context, userID string) (entities.Cart, error) {
	cart, err := u.GetActive(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}
	cart.Items = nil
	return u.save(ctx, cart)
}

func (u *CartUseCase) save(ctx context.Context, cart entities.Cart) (entities.Cart, error) {
	cart.UpdatedAt = time.Now().UTC()
	updated, err := u.carts.Update(ctx, cart)
	if err != nil {
		log.Printf("[cart][usecase] update failed carrito_id=%s err=%v", cart.ID, err)
		return entities.Cart{}, err
	}
	return updated, nil
}
