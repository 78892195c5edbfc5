package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CartLine is a cart item joined against the catalog for display.
type CartLine struct {
	ProductID int             `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url"`
}
