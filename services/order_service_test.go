package services

import (
	"context"
	"testing"

	"goodsoil/models"
	"goodsoil/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrderTx implements repositories.OrderTx against in-memory state.
// Writes are only considered durable when the surrounding fakeOrderStore
// commits, mirroring real transaction semantics.
type fakeOrderTx struct {
	products       map[int]models.Product
	cartID         int
	cartLines      []models.CartLine
	insertOrderErr error
	insertItemsErr error

	insertedOrder *models.Order
	insertedItems []models.OrderItem
	clearedCart   bool
}

func (t *fakeOrderTx) FindCartID(ctx context.Context, userID int) (int, error) {
	if t.cartID == 0 {
		return 0, repositories.ErrCartNotFound
	}
	return t.cartID, nil
}

func (t *fakeOrderTx) PricedCartLines(ctx context.Context, cartID int) ([]models.CartLine, error) {
	return t.cartLines, nil
}

func (t *fakeOrderTx) LookupProduct(ctx context.Context, productID int) (*models.Product, error) {
	p, ok := t.products[productID]
	if !ok {
		return nil, repositories.ErrProductNotFound
	}
	return &p, nil
}

func (t *fakeOrderTx) InsertOrder(ctx context.Context, order *models.Order) error {
	if t.insertOrderErr != nil {
		return t.insertOrderErr
	}
	order.ID = 42
	t.insertedOrder = order
	return nil
}

func (t *fakeOrderTx) InsertOrderItems(ctx context.Context, orderID int, items []models.OrderItem) error {
	if t.insertItemsErr != nil {
		return t.insertItemsErr
	}
	t.insertedItems = items
	return nil
}

func (t *fakeOrderTx) ClearCartItems(ctx context.Context, cartID int) error {
	t.clearedCart = true
	return nil
}

type fakeOrderStore struct {
	tx       *fakeOrderTx
	order    *models.Order
	getErr   error
	commits  int
	rollback int
}

func (s *fakeOrderStore) WithinTx(ctx context.Context, fn func(tx repositories.OrderTx) error) error {
	if err := fn(s.tx); err != nil {
		s.rollback++
		return err
	}
	s.commits++
	return nil
}

func (s *fakeOrderStore) GetOrderWithItems(ctx context.Context, userID, orderID int) (*models.Order, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.order, nil
}

func money(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func validOrderRequest() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		CartItems: []models.OrderLineRequest{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
		TotalAmount: money("44.97"),
		ShippingInfo: &models.ShippingInfo{
			FullName: "Ada Gardener",
			Address:  "12 Loam Lane",
			City:     "Pune",
			State:    "MH",
			Zip:      "411001",
			Country:  "India",
		},
		PaymentMethod: "Card",
		TransactionID: "txn_123",
	}
}

func catalogTx() *fakeOrderTx {
	return &fakeOrderTx{
		cartID: 9,
		products: map[int]models.Product{
			1: {ID: 1, Name: "Worm Castings", Price: money("14.99")},
			2: {ID: 2, Name: "Neem Oil", Price: money("14.99")},
		},
	}
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	svc := NewOrderService(&fakeOrderStore{tx: catalogTx()})

	req := validOrderRequest()
	req.CartItems = nil

	_, err := svc.CreateOrder(context.Background(), 1, req)
	assert.True(t, IsValidationError(err))
}

func TestCreateOrderRejectsMissingShippingField(t *testing.T) {
	svc := NewOrderService(&fakeOrderStore{tx: catalogTx()})

	req := validOrderRequest()
	req.ShippingInfo.City = ""

	_, err := svc.CreateOrder(context.Background(), 1, req)
	require.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "city")
}

func TestCreateOrderRejectsNilShipping(t *testing.T) {
	svc := NewOrderService(&fakeOrderStore{tx: catalogTx()})

	req := validOrderRequest()
	req.ShippingInfo = nil

	_, err := svc.CreateOrder(context.Background(), 1, req)
	assert.True(t, IsValidationError(err))
}

func TestCreateOrderRejectsTotalMismatch(t *testing.T) {
	store := &fakeOrderStore{tx: catalogTx()}
	svc := NewOrderService(store)

	req := validOrderRequest()
	req.TotalAmount = money("1.00")

	_, err := svc.CreateOrder(context.Background(), 1, req)
	require.True(t, IsValidationError(err))
	assert.Zero(t, store.commits)
}

func TestCreateOrderRejectsUnknownProduct(t *testing.T) {
	store := &fakeOrderStore{tx: catalogTx()}
	svc := NewOrderService(store)

	req := validOrderRequest()
	req.CartItems[0].ProductID = 99

	_, err := svc.CreateOrder(context.Background(), 1, req)
	require.True(t, IsValidationError(err))
	assert.Zero(t, store.commits)
}

func TestCreateOrderSnapshotsCatalogPrices(t *testing.T) {
	store := &fakeOrderStore{tx: catalogTx()}
	svc := NewOrderService(store)

	req := validOrderRequest()
	// Client-sent names and prices are ignored in favor of the catalog.
	req.CartItems[0].Name = "wrong name"
	req.CartItems[0].Price = money("0.01")

	order, err := svc.CreateOrder(context.Background(), 1, req)
	require.NoError(t, err)
	assert.Equal(t, 1, store.commits)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Worm Castings", order.Items[0].ProductName)
	assert.True(t, order.Items[0].ProductPrice.Equal(money("14.99")))
	assert.True(t, order.TotalAmount.Equal(money("44.97")))
	assert.Equal(t, models.OrderStatusProcessing, order.OrderStatus)
	assert.True(t, store.tx.clearedCart)
}

func TestCreateOrderPaymentStatus(t *testing.T) {
	store := &fakeOrderStore{tx: catalogTx()}
	svc := NewOrderService(store)

	req := validOrderRequest()
	req.TransactionID = ""

	order, err := svc.CreateOrder(context.Background(), 1, req)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)

	store.tx = catalogTx()
	req.TransactionID = "txn_999"
	order, err = svc.CreateOrder(context.Background(), 1, req)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, order.PaymentStatus)
}

func TestCreateOrderNoCartIsNotAnError(t *testing.T) {
	tx := catalogTx()
	tx.cartID = 0
	store := &fakeOrderStore{tx: tx}
	svc := NewOrderService(store)

	_, err := svc.CreateOrder(context.Background(), 1, validOrderRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, store.commits)
	assert.False(t, tx.clearedCart)
}

func TestCreateOrderRollsBackOnItemInsertFailure(t *testing.T) {
	tx := catalogTx()
	tx.insertItemsErr = assert.AnError
	store := &fakeOrderStore{tx: tx}
	svc := NewOrderService(store)

	_, err := svc.CreateOrder(context.Background(), 1, validOrderRequest())
	require.Error(t, err)
	assert.Zero(t, store.commits)
	assert.Equal(t, 1, store.rollback)
}

func TestGetOrderNotFound(t *testing.T) {
	store := &fakeOrderStore{getErr: repositories.ErrOrderNotFound}
	svc := NewOrderService(store)

	_, err := svc.GetOrder(context.Background(), 1, 123)
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)

	_, err = svc.GetOrder(context.Background(), 1, -1)
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)
}
