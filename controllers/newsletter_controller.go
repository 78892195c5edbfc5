package controllers

import (
	"context"
	"log"
	"strings"

	"goodsoil/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NewsletterController struct {
	email *models.EmailService
}

func NewNewsletterController(email *models.EmailService) *NewsletterController {
	return &NewsletterController{email: email}
}

func generateDiscountCode() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return "GOODSOIL" + suffix
}

// Subscribe godoc
// @Summary Subscribe to newsletter
// @Description Subscribe an email address and send a one-time discount code
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param request body models.SubscribeRequest true "Email to subscribe"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /subscribe-discount [post]
func (ctrl *NewsletterController) Subscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || !strings.Contains(req.Email, "@") {
		c.JSON(400, gin.H{"success": false, "message": "A valid email address is required."})
		return
	}

	var exists int
	models.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM subscribers WHERE email = $1", req.Email).Scan(&exists)
	if exists > 0 {
		c.JSON(409, gin.H{"success": false, "message": "This email is already subscribed."})
		return
	}

	code := generateDiscountCode()
	_, err := models.DB.Exec(context.Background(),
		"INSERT INTO subscribers (email, discount_code) VALUES ($1, $2)",
		req.Email, code)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to subscribe"})
		return
	}

	if ctrl.email != nil {
		go func() {
			if err := ctrl.email.SendDiscountEmail(req.Email, code); err != nil {
				log.Println("Failed to send discount email:", err)
			}
		}()
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Subscribed successfully! Check your inbox for your discount code.",
	})
}
