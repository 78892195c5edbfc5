package controllers

import (
	"errors"
	"strconv"

	"goodsoil/models"
	"goodsoil/repositories"
	"goodsoil/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	service *services.OrderService
	email   *models.EmailService
}

func NewOrderController(service *services.OrderService, email *models.EmailService) *OrderController {
	return &OrderController{service: service, email: email}
}

// CreateOrder godoc
// @Summary Create order
// @Description Place an order from an explicit item list. Prices and totals are recomputed from the catalog.
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateOrderRequest true "Order details"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Missing required order details."})
		return
	}

	order, err := ctrl.service.CreateOrder(c.Request.Context(), userID, req)
	if err != nil {
		if services.IsValidationError(err) {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to create order"})
		return
	}

	if email := c.GetString("user_email"); email != "" && ctrl.email != nil {
		go ctrl.email.SendOrderConfirmationEmail(email, order.ID, order.TotalAmount)
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Order created successfully",
		"orderId": order.ID,
		"data":    order,
	})
}

// GetOrder godoc
// @Summary Get order
// @Description Get one of the current user's orders with its items
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param orderId path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{orderId} [get]
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	userID := c.GetInt("user_id")

	orderID, err := strconv.Atoi(c.Param("orderId"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	order, err := ctrl.service.GetOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch order"})
		return
	}

	c.JSON(200, gin.H{"success": true, "data": order})
}
