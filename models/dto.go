package models

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	FullName    string `json:"fullName" binding:"required,min=3"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	LoginIdentifier string `json:"loginIdentifier" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type AddCartItemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type UpdateCartItemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type OrderLineRequest struct {
	ProductID int             `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

type CreateOrderRequest struct {
	CartItems     []OrderLineRequest `json:"cartItems"`
	TotalAmount   decimal.Decimal    `json:"totalAmount"`
	ShippingInfo  *ShippingInfo      `json:"shippingInfo"`
	PaymentMethod string             `json:"paymentMethod"`
	TransactionID string             `json:"transactionId"`
}

type CreatePaymentIntentRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type VerifyPaymentRequest struct {
	RazorpayPaymentID string        `json:"razorpay_payment_id"`
	RazorpayOrderID   string        `json:"razorpay_order_id"`
	RazorpaySignature string        `json:"razorpay_signature"`
	ShippingInfo      *ShippingInfo `json:"shippingInfo,omitempty"`
}

type SubscribeRequest struct {
	Email string `json:"email"`
}

type GardenPlanRequest struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Space          []string `json:"space"`
	Grow           []string `json:"grow"`
	Experience     string   `json:"experience"`
	SpecificPlants string   `json:"specific_plants"`
	Seeds          string   `json:"seeds"`
	Fertilizer     string   `json:"fertilizer"`
	Mixes          string   `json:"mixes"`
	Pots           string   `json:"pots"`
	Guidance       string   `json:"guidance"`
}

type ContactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
