package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"goodsoil/models"
	"goodsoil/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentIntent mirrors the order object the payment gateway hands back
// to the storefront checkout widget. Amount is in the currency's minor
// unit (paise for INR).
type PaymentIntent struct {
	ID       string `json:"id"`
	Entity   string `json:"entity"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type PaymentService struct {
	store     repositories.OrderStore
	keySecret string
}

func NewPaymentService(store repositories.OrderStore, keySecret string) *PaymentService {
	return &PaymentService{store: store, keySecret: keySecret}
}

// CreateIntent registers a payment intent for the given amount. The
// intent carries no order data; the order itself is only written after
// the gateway confirms payment.
func (s *PaymentService) CreateIntent(ctx context.Context, req models.CreatePaymentIntentRequest) (*PaymentIntent, error) {
	if req.Amount.Sign() <= 0 {
		return nil, NewValidationError("A positive amount is required.")
	}
	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	receipt := "rcpt_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	return &PaymentIntent{
		ID:       "order_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Entity:   "order",
		Amount:   req.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

// VerifySignature checks the gateway's HMAC-SHA256 signature over
// "<order_id>|<payment_id>" using a constant-time compare.
func (s *PaymentService) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyAndPlaceOrder turns a verified payment into an order priced
// entirely from the database: the user's cart lines are joined against
// the catalog inside the transaction and the total is recomputed there.
// The cart is cleared in the same transaction.
func (s *PaymentService) VerifyAndPlaceOrder(ctx context.Context, userID int, req models.VerifyPaymentRequest) (*models.Order, error) {
	if req.RazorpayPaymentID == "" || req.RazorpayOrderID == "" || req.RazorpaySignature == "" {
		return nil, NewValidationError("Payment verification failed: Missing parameters.")
	}
	if err := validateShipping(req.ShippingInfo); err != nil {
		return nil, err
	}
	if !s.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		return nil, ErrInvalidSignature
	}

	var order *models.Order

	err := s.store.WithinTx(ctx, func(tx repositories.OrderTx) error {
		cartID, err := tx.FindCartID(ctx, userID)
		if err != nil {
			return err
		}

		lines, err := tx.PricedCartLines(ctx, cartID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrCartEmpty
		}

		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
			items = append(items, models.OrderItem{
				ProductID:    line.ProductID,
				ProductName:  line.Name,
				ProductPrice: line.Price,
				Quantity:     line.Quantity,
			})
		}

		o := &models.Order{
			UserID:            userID,
			TotalAmount:       total,
			OrderStatus:       models.OrderStatusProcessing,
			PaymentStatus:     models.PaymentStatusPaid,
			PaymentMethod:     "Razorpay",
			TransactionID:     req.RazorpayPaymentID,
			RazorpayPaymentID: req.RazorpayPaymentID,
			RazorpayOrderID:   req.RazorpayOrderID,
			Shipping:          *req.ShippingInfo,
		}

		if err := tx.InsertOrder(ctx, o); err != nil {
			return err
		}
		if err := tx.InsertOrderItems(ctx, o.ID, items); err != nil {
			return err
		}
		if err := tx.ClearCartItems(ctx, cartID); err != nil {
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
