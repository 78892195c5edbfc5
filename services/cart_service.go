package services

import (
	"context"

	"goodsoil/models"
	"goodsoil/repositories"
)

type CartService struct {
	store repositories.CartStore
}

func NewCartService(store repositories.CartStore) *CartService {
	return &CartService{store: store}
}

// GetCart returns the user's cart lines, creating an empty cart on first
// access.
func (s *CartService) GetCart(ctx context.Context, userID int) ([]models.CartLine, error) {
	cartID, err := s.store.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.store.ListItems(ctx, cartID)
}

// AddItem inserts a new cart line or increments an existing one. Reports
// whether a new line was created so the handler can pick 201 vs 200.
func (s *CartService) AddItem(ctx context.Context, userID, productID, quantity int) (bool, error) {
	if productID <= 0 || quantity <= 0 {
		return false, NewValidationError("Product ID and a valid quantity are required.")
	}
	return s.store.AddItem(ctx, userID, productID, quantity)
}

// UpdateItem sets an existing line's quantity. It never creates a line:
// a missing cart or line is a not-found error.
func (s *CartService) UpdateItem(ctx context.Context, userID, productID, quantity int) error {
	if productID <= 0 || quantity <= 0 {
		return NewValidationError("Product ID and a valid quantity are required.")
	}
	return s.store.UpdateItemQuantity(ctx, userID, productID, quantity)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID int) error {
	if productID <= 0 {
		return NewValidationError("A valid product ID is required.")
	}
	return s.store.RemoveItem(ctx, userID, productID)
}
