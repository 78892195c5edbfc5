package services

import (
	"context"
	"errors"
	"fmt"

	"goodsoil/models"
	"goodsoil/repositories"

	"github.com/shopspring/decimal"
)

type OrderService struct {
	store repositories.OrderStore
}

func NewOrderService(store repositories.OrderStore) *OrderService {
	return &OrderService{store: store}
}

// CreateOrder converts a checkout payload into an immutable order. Every
// line is re-resolved against the catalog inside the transaction, and the
// stored snapshot uses the catalog name and price, not the client's. The
// client-declared total must equal the recomputed total or nothing is
// written.
func (s *OrderService) CreateOrder(ctx context.Context, userID int, req models.CreateOrderRequest) (*models.Order, error) {
	if len(req.CartItems) == 0 {
		return nil, NewValidationError("Missing required order details.")
	}
	if req.TotalAmount.Sign() <= 0 {
		return nil, NewValidationError("Missing required order details.")
	}
	if err := validateShipping(req.ShippingInfo); err != nil {
		return nil, err
	}
	for _, line := range req.CartItems {
		if line.ProductID <= 0 || line.Quantity <= 0 {
			return nil, NewValidationError("Each cart item needs a product ID and a positive quantity.")
		}
	}

	paymentStatus := models.PaymentStatusPending
	if req.TransactionID != "" {
		paymentStatus = models.PaymentStatusPaid
	}

	var order *models.Order

	err := s.store.WithinTx(ctx, func(tx repositories.OrderTx) error {
		items := make([]models.OrderItem, 0, len(req.CartItems))
		total := decimal.Zero

		for _, line := range req.CartItems {
			p, err := tx.LookupProduct(ctx, line.ProductID)
			if errors.Is(err, repositories.ErrProductNotFound) {
				return NewValidationError(fmt.Sprintf("Unknown product %d in order.", line.ProductID))
			}
			if err != nil {
				return err
			}

			total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
			items = append(items, models.OrderItem{
				ProductID:    p.ID,
				ProductName:  p.Name,
				ProductPrice: p.Price,
				Quantity:     line.Quantity,
			})
		}

		if !total.Equal(req.TotalAmount) {
			return NewValidationError("Order total does not match current catalog pricing.")
		}

		o := &models.Order{
			UserID:        userID,
			TotalAmount:   total,
			OrderStatus:   models.OrderStatusProcessing,
			PaymentStatus: paymentStatus,
			PaymentMethod: req.PaymentMethod,
			TransactionID: req.TransactionID,
			Shipping:      *req.ShippingInfo,
		}

		if err := tx.InsertOrder(ctx, o); err != nil {
			return err
		}
		if err := tx.InsertOrderItems(ctx, o.ID, items); err != nil {
			return err
		}

		// Clear the cart the order came from, if one exists.
		cartID, err := tx.FindCartID(ctx, userID)
		if err == nil {
			if err := tx.ClearCartItems(ctx, cartID); err != nil {
				return err
			}
		} else if !errors.Is(err, repositories.ErrCartNotFound) {
			return err
		}

		o.Items = items
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder returns an order with its items only when it belongs to the
// requesting user. Absent and not-owned look identical to the caller.
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID int) (*models.Order, error) {
	if orderID <= 0 {
		return nil, repositories.ErrOrderNotFound
	}
	return s.store.GetOrderWithItems(ctx, userID, orderID)
}

func validateShipping(info *models.ShippingInfo) error {
	if info == nil {
		return NewValidationError("Missing required order details.")
	}

	fields := []struct {
		name  string
		value string
	}{
		{"fullName", info.FullName},
		{"address", info.Address},
		{"city", info.City},
		{"state", info.State},
		{"zip", info.Zip},
		{"country", info.Country},
	}
	for _, f := range fields {
		if f.value == "" {
			return NewValidationError(fmt.Sprintf("Shipping %s is required.", f.name))
		}
	}
	return nil
}
