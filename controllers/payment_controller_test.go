package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"testing"

	"goodsoil/models"
	"goodsoil/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const paymentTestSecret = "test_key_secret"

func paymentTestRouter(store *memOrderStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewPaymentController(services.NewPaymentService(store, paymentTestSecret), nil)

	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("user_id", 1) })
	router.POST("/api/create-razorpay-order", ctrl.CreateRazorpayOrder)
	router.POST("/api/verify-razorpay-payment", ctrl.VerifyRazorpayPayment)
	return router
}

func gatewaySignature(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(paymentTestSecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestCreateRazorpayOrderEndpoint(t *testing.T) {
	router := paymentTestRouter(testCatalogStore())

	w := doJSON(t, router, "POST", "/api/create-razorpay-order", `{"amount": 100.00, "currency": "INR"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"amount":10000`)
}

func TestCreateRazorpayOrderRejectsZeroAmount(t *testing.T) {
	router := paymentTestRouter(testCatalogStore())

	w := doJSON(t, router, "POST", "/api/create-razorpay-order", `{"amount": 0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyPaymentMissingParameters(t *testing.T) {
	router := paymentTestRouter(testCatalogStore())

	w := doJSON(t, router, "POST", "/api/verify-razorpay-payment", `{"razorpay_payment_id": "pay_1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing parameters")
	assert.Contains(t, w.Body.String(), `"verified":false`)
}

func TestVerifyPaymentInvalidSignature(t *testing.T) {
	router := paymentTestRouter(testCatalogStore())

	body := `{
		"razorpay_payment_id": "pay_1",
		"razorpay_order_id": "order_1",
		"razorpay_signature": "bogus",
		"shippingInfo": {"fullName": "Ada", "address": "12 Loam Lane", "city": "Pune", "state": "MH", "zip": "411001", "country": "India"}
	}`
	w := doJSON(t, router, "POST", "/api/verify-razorpay-payment", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid signature")
	assert.Contains(t, w.Body.String(), `"verified":false`)
}

func TestVerifyPaymentPlacesOrderFromCart(t *testing.T) {
	store := testCatalogStore()
	store.cartLines = []models.CartLine{
		{ProductID: 7, Quantity: 2, Name: "Seed Starter Mix", Price: decimal.RequireFromString("50.00")},
	}
	router := paymentTestRouter(store)

	body := fmt.Sprintf(`{
		"razorpay_payment_id": "pay_1",
		"razorpay_order_id": "order_1",
		"razorpay_signature": %q,
		"shippingInfo": {"fullName": "Ada", "address": "12 Loam Lane", "city": "Pune", "state": "MH", "zip": "411001", "country": "India"}
	}`, gatewaySignature("order_1", "pay_1"))

	w := doJSON(t, router, "POST", "/api/verify-razorpay-payment", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"orderId":42`)
	assert.Contains(t, w.Body.String(), `"verified":true`)
}

func TestVerifyPaymentEmptyCart(t *testing.T) {
	store := testCatalogStore()
	store.cartLines = nil
	router := paymentTestRouter(store)

	body := fmt.Sprintf(`{
		"razorpay_payment_id": "pay_1",
		"razorpay_order_id": "order_1",
		"razorpay_signature": %q,
		"shippingInfo": {"fullName": "Ada", "address": "12 Loam Lane", "city": "Pune", "state": "MH", "zip": "411001", "country": "India"}
	}`, gatewaySignature("order_1", "pay_1"))

	w := doJSON(t, router, "POST", "/api/verify-razorpay-payment", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "empty")
	assert.Contains(t, w.Body.String(), `"verified":false`)
}
