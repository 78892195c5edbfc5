package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"goodsoil/models"
	"goodsoil/repositories"

	"github.com/gin-gonic/gin"
)

const productListCacheKey = "products_list_all"

type ProductController struct {
	repo *repositories.ProductRepository
}

func NewProductController(repo *repositories.ProductRepository) *ProductController {
	return &ProductController{repo: repo}
}

// GetProducts godoc
// @Summary Get all products
// @Description Get the full product catalog
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	ctx := context.Background()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, productListCacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	products, err := ctrl.repo.GetAllProducts(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch products"})
		return
	}

	response := gin.H{"success": true, "data": products}

	if models.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(ctx, productListCacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// GetProduct godoc
// @Summary Get product by ID
// @Description Get a single product's details
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	product, err := ctrl.repo.GetProductByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch product"})
		return
	}

	c.JSON(200, gin.H{"success": true, "data": product})
}
