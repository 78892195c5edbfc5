package controllers

import (
	"errors"
	"strconv"

	"goodsoil/models"
	"goodsoil/repositories"
	"goodsoil/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	service *services.CartService
}

func NewCartController(service *services.CartService) *CartController {
	return &CartController{service: service}
}

// GetCart godoc
// @Summary Get cart
// @Description Get the current user's cart items with catalog details
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	items, err := ctrl.service.GetCart(c.Request.Context(), userID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "items": items})
}

// AddItem godoc
// @Summary Add item to cart
// @Description Add a product to the cart, or increase its quantity if already present
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Item to add"
// @Success 200 {object} models.Response
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/add [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Product ID and a valid quantity are required."})
		return
	}

	created, err := ctrl.service.AddItem(c.Request.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		if services.IsValidationError(err) {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to add item to cart"})
		return
	}

	if created {
		c.JSON(201, gin.H{"success": true, "message": "Item added to cart"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Cart item quantity updated"})
}

// UpdateItem godoc
// @Summary Update cart item quantity
// @Description Set the quantity of an item already in the cart
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/update-item [put]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Product ID and a valid quantity are required."})
		return
	}

	err := ctrl.service.UpdateItem(c.Request.Context(), userID, req.ProductID, req.Quantity)
	switch {
	case err == nil:
		c.JSON(200, gin.H{"success": true, "message": "Cart item updated"})
	case services.IsValidationError(err):
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, repositories.ErrCartNotFound):
		c.JSON(404, gin.H{"success": false, "message": "Cart not found"})
	case errors.Is(err, repositories.ErrItemNotFound):
		c.JSON(404, gin.H{"success": false, "message": "Item not found in cart"})
	default:
		c.JSON(500, gin.H{"success": false, "message": "Failed to update cart item"})
	}
}

// RemoveItem godoc
// @Summary Remove item from cart
// @Description Remove a product from the cart entirely
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/remove-item/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "A valid product ID is required."})
		return
	}

	err = ctrl.service.RemoveItem(c.Request.Context(), userID, productID)
	switch {
	case err == nil:
		c.JSON(200, gin.H{"success": true, "message": "Item removed from cart"})
	case services.IsValidationError(err):
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, repositories.ErrCartNotFound):
		c.JSON(404, gin.H{"success": false, "message": "Cart not found"})
	case errors.Is(err, repositories.ErrItemNotFound):
		c.JSON(404, gin.H{"success": false, "message": "Item not found in cart"})
	default:
		c.JSON(500, gin.H{"success": false, "message": "Failed to remove cart item"})
	}
}
