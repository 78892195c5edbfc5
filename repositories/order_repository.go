package repositories

import (
	"context"
	"errors"

	"goodsoil/models"

	"github.com/jackc/pgx/v5"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// WithinTx holds one pooled connection for the whole callback and commits
// only if every statement succeeded. Any error rolls everything back.
func (r *OrderRepository) WithinTx(ctx context.Context, fn func(tx OrderTx) error) error {
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(&orderTx{tx: tx}); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) GetOrderWithItems(ctx context.Context, userID, orderID int) (*models.Order, error) {
	var o models.Order
	err := models.DB.QueryRow(ctx,
		`SELECT
			id, user_id, total_amount, order_status, payment_status,
			COALESCE(payment_method, ''), COALESCE(transaction_id, ''),
			COALESCE(razorpay_payment_id, ''), COALESCE(razorpay_order_id, ''),
			shipping_full_name, shipping_address, shipping_city,
			shipping_state, shipping_zip, shipping_country, created_at
		FROM orders
		WHERE id = $1 AND user_id = $2`,
		orderID, userID).Scan(
		&o.ID, &o.UserID, &o.TotalAmount, &o.OrderStatus, &o.PaymentStatus,
		&o.PaymentMethod, &o.TransactionID,
		&o.RazorpayPaymentID, &o.RazorpayOrderID,
		&o.Shipping.FullName, &o.Shipping.Address, &o.Shipping.City,
		&o.Shipping.State, &o.Shipping.Zip, &o.Shipping.Country, &o.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := models.DB.Query(ctx,
		`SELECT id, order_id, product_id, product_name, product_price, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`,
		orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	o.Items = []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.ProductPrice, &item.Quantity); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, item)
	}
	return &o, rows.Err()
}

type orderTx struct {
	tx pgx.Tx
}

func (t *orderTx) FindCartID(ctx context.Context, userID int) (int, error) {
	var cartID int
	err := t.tx.QueryRow(ctx, "SELECT id FROM carts WHERE user_id = $1", userID).Scan(&cartID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrCartNotFound
	}
	if err != nil {
		return 0, err
	}
	return cartID, nil
}

func (t *orderTx) PricedCartLines(ctx context.Context, cartID int) ([]models.CartLine, error) {
	rows, err := t.tx.Query(ctx,
		`SELECT ci.product_id, ci.quantity, p.name, p.price, COALESCE(p.image_url, '')
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		WHERE ci.cart_id = $1
		ORDER BY ci.id`,
		cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []models.CartLine{}
	for rows.Next() {
		var line models.CartLine
		if err := rows.Scan(&line.ProductID, &line.Quantity, &line.Name, &line.Price, &line.ImageURL); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (t *orderTx) LookupProduct(ctx context.Context, productID int) (*models.Product, error) {
	var p models.Product
	err := t.tx.QueryRow(ctx,
		"SELECT id, name, price FROM products WHERE id = $1",
		productID).Scan(&p.ID, &p.Name, &p.Price)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (t *orderTx) InsertOrder(ctx context.Context, order *models.Order) error {
	return t.tx.QueryRow(ctx,
		`INSERT INTO orders (
			user_id, total_amount, order_status, payment_status, payment_method, transaction_id,
			razorpay_payment_id, razorpay_order_id,
			shipping_full_name, shipping_address, shipping_city, shipping_state, shipping_zip, shipping_country
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at`,
		order.UserID, order.TotalAmount, order.OrderStatus, order.PaymentStatus,
		order.PaymentMethod, order.TransactionID,
		order.RazorpayPaymentID, order.RazorpayOrderID,
		order.Shipping.FullName, order.Shipping.Address, order.Shipping.City,
		order.Shipping.State, order.Shipping.Zip, order.Shipping.Country,
	).Scan(&order.ID, &order.CreatedAt)
}

func (t *orderTx) InsertOrderItems(ctx context.Context, orderID int, items []models.OrderItem) error {
	for _, item := range items {
		_, err := t.tx.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, product_name, product_price, quantity)
			VALUES ($1, $2, $3, $4, $5)`,
			orderID, item.ProductID, item.ProductName, item.ProductPrice, item.Quantity)
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *orderTx) ClearCartItems(ctx context.Context, cartID int) error {
	_, err := t.tx.Exec(ctx, "DELETE FROM cart_items WHERE cart_id = $1", cartID)
	return err
}
