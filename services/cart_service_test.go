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

// fakeCartStore keeps cart lines in memory so tests can observe the
// effect of a sequence of operations.
type fakeCartStore struct {
	lines     map[int]int // productID -> quantity
	updateErr error
	removeErr error
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{lines: map[int]int{}}
}

func (s *fakeCartStore) GetOrCreateCart(ctx context.Context, userID int) (int, error) {
	return 1, nil
}

func (s *fakeCartStore) ListItems(ctx context.Context, cartID int) ([]models.CartLine, error) {
	out := []models.CartLine{}
	for productID, qty := range s.lines {
		out = append(out, models.CartLine{
			ProductID: productID,
			Quantity:  qty,
			Price:     decimal.NewFromInt(10),
		})
	}
	return out, nil
}

func (s *fakeCartStore) AddItem(ctx context.Context, userID, productID, quantity int) (bool, error) {
	_, existed := s.lines[productID]
	s.lines[productID] += quantity
	return !existed, nil
}

func (s *fakeCartStore) UpdateItemQuantity(ctx context.Context, userID, productID, quantity int) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	if _, ok := s.lines[productID]; !ok {
		return repositories.ErrItemNotFound
	}
	s.lines[productID] = quantity
	return nil
}

func (s *fakeCartStore) RemoveItem(ctx context.Context, userID, productID int) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	if _, ok := s.lines[productID]; !ok {
		return repositories.ErrItemNotFound
	}
	delete(s.lines, productID)
	return nil
}

func TestAddItemValidation(t *testing.T) {
	svc := NewCartService(newFakeCartStore())

	_, err := svc.AddItem(context.Background(), 1, 0, 2)
	assert.True(t, IsValidationError(err))

	_, err = svc.AddItem(context.Background(), 1, 5, 0)
	assert.True(t, IsValidationError(err))

	_, err = svc.AddItem(context.Background(), 1, 5, -3)
	assert.True(t, IsValidationError(err))
}

func TestAddItemCreatesThenIncrements(t *testing.T) {
	store := newFakeCartStore()
	svc := NewCartService(store)

	created, err := svc.AddItem(context.Background(), 1, 5, 2)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.AddItem(context.Background(), 1, 5, 3)
	require.NoError(t, err)
	assert.False(t, created)

	assert.Equal(t, 5, store.lines[5])
}

func TestUpdateItemSetsAbsoluteQuantity(t *testing.T) {
	store := newFakeCartStore()
	store.lines[5] = 2
	svc := NewCartService(store)

	err := svc.UpdateItem(context.Background(), 1, 5, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, store.lines[5])
}

func TestUpdateItemNeverCreates(t *testing.T) {
	store := newFakeCartStore()
	svc := NewCartService(store)

	err := svc.UpdateItem(context.Background(), 1, 5, 7)
	assert.ErrorIs(t, err, repositories.ErrItemNotFound)
	assert.Empty(t, store.lines)
}

func TestUpdateItemValidation(t *testing.T) {
	svc := NewCartService(newFakeCartStore())

	err := svc.UpdateItem(context.Background(), 1, 5, 0)
	assert.True(t, IsValidationError(err))
}

func TestRemoveItemMissing(t *testing.T) {
	svc := NewCartService(newFakeCartStore())

	err := svc.RemoveItem(context.Background(), 1, 5)
	assert.ErrorIs(t, err, repositories.ErrItemNotFound)
}

func TestRemoveItemThenGone(t *testing.T) {
	store := newFakeCartStore()
	store.lines[5] = 2
	svc := NewCartService(store)

	require.NoError(t, svc.RemoveItem(context.Background(), 1, 5))

	items, err := svc.GetCart(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}
