package repositories

import (
	"context"
	"errors"

	"goodsoil/models"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("item not found in cart")
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
)

// CartStore is the per-user cart persistence surface. Every operation is
// scoped by user id; cart ids are never accepted from callers.
type CartStore interface {
	GetOrCreateCart(ctx context.Context, userID int) (int, error)
	ListItems(ctx context.Context, cartID int) ([]models.CartLine, error)
	// AddItem creates the cart if needed and inserts the line, or
	// increments an existing line's quantity. Reports whether a new line
	// was created.
	AddItem(ctx context.Context, userID, productID, quantity int) (created bool, err error)
	UpdateItemQuantity(ctx context.Context, userID, productID, quantity int) error
	RemoveItem(ctx context.Context, userID, productID int) error
}

// OrderStore runs multi-statement order mutations inside a single
// database transaction. The callback either completes fully or the whole
// transaction is rolled back.
type OrderStore interface {
	WithinTx(ctx context.Context, fn func(tx OrderTx) error) error
	GetOrderWithItems(ctx context.Context, userID, orderID int) (*models.Order, error)
}

type OrderTx interface {
	FindCartID(ctx context.Context, userID int) (int, error)
	PricedCartLines(ctx context.Context, cartID int) ([]models.CartLine, error)
	LookupProduct(ctx context.Context, productID int) (*models.Product, error)
	InsertOrder(ctx context.Context, order *models.Order) error
	InsertOrderItems(ctx context.Context, orderID int, items []models.OrderItem) error
	ClearCartItems(ctx context.Context, cartID int) error
}
