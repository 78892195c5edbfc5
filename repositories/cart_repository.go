package repositories

import (
	"context"
	"errors"

	"goodsoil/models"

	"github.com/jackc/pgx/v5"
)

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

func (r *CartRepository) GetOrCreateCart(ctx context.Context, userID int) (int, error) {
	var cartID int
	err := models.DB.QueryRow(ctx, "SELECT id FROM carts WHERE user_id = $1", userID).Scan(&cartID)
	if errors.Is(err, pgx.ErrNoRows) {
		// Concurrent first accesses can both reach the insert; the loser
		// hits ON CONFLICT and the re-select picks up the winner's cart.
		_, err = models.DB.Exec(ctx, "INSERT INTO carts (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING", userID)
		if err == nil {
			err = models.DB.QueryRow(ctx, "SELECT id FROM carts WHERE user_id = $1", userID).Scan(&cartID)
		}
	}
	if err != nil {
		return 0, err
	}
	return cartID, nil
}

func (r *CartRepository) ListItems(ctx context.Context, cartID int) ([]models.CartLine, error) {
	rows, err := models.DB.Query(ctx,
		`SELECT
			ci.product_id,
			ci.quantity,
			p.name,
			p.price,
			COALESCE(p.image_url, '')
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		WHERE ci.cart_id = $1
		ORDER BY ci.id`,
		cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CartLine{}
	for rows.Next() {
		var line models.CartLine
		if err := rows.Scan(&line.ProductID, &line.Quantity, &line.Name, &line.Price, &line.ImageURL); err != nil {
			return nil, err
		}
		items = append(items, line)
	}
	return items, rows.Err()
}

func (r *CartRepository) AddItem(ctx context.Context, userID, productID, quantity int) (bool, error) {
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var cartID int
	err = tx.QueryRow(ctx, "SELECT id FROM carts WHERE user_id = $1", userID).Scan(&cartID)
	if errors.Is(err, pgx.ErrNoRows) {
		_, err = tx.Exec(ctx, "INSERT INTO carts (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING", userID)
		if err == nil {
			err = tx.QueryRow(ctx, "SELECT id FROM carts WHERE user_id = $1", userID).Scan(&cartID)
		}
	}
	if err != nil {
		return false, err
	}

	var existingID int
	err = tx.QueryRow(ctx,
		"SELECT id FROM cart_items WHERE cart_id = $1 AND product_id = $2",
		cartID, productID).Scan(&existingID)

	created := false
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		_, err = tx.Exec(ctx,
			"INSERT INTO cart_items (cart_id, product_id, quantity) VALUES ($1, $2, $3)",
			cartID, productID, quantity)
		created = true
	case err == nil:
		_, err = tx.Exec(ctx,
			"UPDATE cart_items SET quantity = quantity + $1 WHERE cart_id = $2 AND product_id = $3",
			quantity, cartID, productID)
	}
	if err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return created, nil
}

func (r *CartRepository) UpdateItemQuantity(ctx context.Context, userID, productID, quantity int) error {
	var cartID int
	err := models.DB.QueryRow(ctx, "SELECT id FROM carts WHERE user_id = $1", userID).Scan(&cartID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrCartNotFound
	}
	if err != nil {
		return err
	}

	tag, err := models.DB.Exec(ctx,
		"UPDATE cart_items SET quantity = $1 WHERE cart_id = $2 AND product_id = $3",
		quantity, cartID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *CartRepository) RemoveItem(ctx context.Context, userID, productID int) error {
	var cartID int
	err := models.DB.QueryRow(ctx, "SELECT id FROM carts WHERE user_id = $1", userID).Scan(&cartID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrCartNotFound
	}
	if err != nil {
		return err
	}

	tag, err := models.DB.Exec(ctx,
		"DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2",
		cartID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}
