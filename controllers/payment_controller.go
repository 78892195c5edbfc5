package controllers

import (
	"errors"

	"goodsoil/models"
	"goodsoil/repositories"
	"goodsoil/services"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	service *services.PaymentService
	email   *models.EmailService
}

func NewPaymentController(service *services.PaymentService, email *models.EmailService) *PaymentController {
	return &PaymentController{service: service, email: email}
}

// CreateRazorpayOrder godoc
// @Summary Create payment intent
// @Description Register a payment intent with the gateway for the checkout widget
// @Tags Payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreatePaymentIntentRequest true "Amount and currency"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /create-razorpay-order [post]
func (ctrl *PaymentController) CreateRazorpayOrder(c *gin.Context) {
	var req models.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "A positive amount is required."})
		return
	}

	intent, err := ctrl.service.CreateIntent(c.Request.Context(), req)
	if err != nil {
		if services.IsValidationError(err) {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to create payment order"})
		return
	}

	c.JSON(200, gin.H{"success": true, "order": intent})
}

// VerifyRazorpayPayment godoc
// @Summary Verify payment and place order
// @Description Verify the gateway signature, then build the order from the user's server-side cart
// @Tags Payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.VerifyPaymentRequest true "Gateway callback fields plus shipping info"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /verify-razorpay-payment [post]
func (ctrl *PaymentController) VerifyRazorpayPayment(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "verified": false, "message": "Payment verification failed: Missing parameters."})
		return
	}

	order, err := ctrl.service.VerifyAndPlaceOrder(c.Request.Context(), userID, req)
	switch {
	case err == nil:
	case services.IsValidationError(err):
		c.JSON(400, gin.H{"success": false, "verified": false, "message": err.Error()})
		return
	case errors.Is(err, services.ErrInvalidSignature):
		c.JSON(400, gin.H{"success": false, "verified": false, "message": "Payment verification failed: Invalid signature."})
		return
	case errors.Is(err, services.ErrCartEmpty):
		c.JSON(400, gin.H{"success": false, "verified": false, "message": "Cart is empty, cannot create order."})
		return
	case errors.Is(err, repositories.ErrCartNotFound):
		c.JSON(404, gin.H{"success": false, "verified": false, "message": "Cart not found"})
		return
	default:
		c.JSON(500, gin.H{"success": false, "verified": false, "message": "Failed to verify payment"})
		return
	}

	if email := c.GetString("user_email"); email != "" && ctrl.email != nil {
		go ctrl.email.SendOrderConfirmationEmail(email, order.ID, order.TotalAmount)
	}

	c.JSON(200, gin.H{
		"success":  true,
		"verified": true,
		"message":  "Payment verified and order placed successfully",
		"orderId":  order.ID,
	})
}
