package repositories

import (
	"context"
	"errors"

	"goodsoil/models"

	"github.com/jackc/pgx/v5"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := models.DB.Query(ctx,
		`SELECT id, name, COALESCE(description, ''), COALESCE(category, ''), price, COALESCE(image_url, ''), created_at
		FROM products ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	var p models.Product
	err := models.DB.QueryRow(ctx,
		`SELECT id, name, COALESCE(description, ''), COALESCE(category, ''), price, COALESCE(image_url, ''), created_at
		FROM products WHERE id = $1`,
		id).Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.ImageURL, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
