package controllers

import (
	"context"
	"log"

	"goodsoil/models"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	email *models.EmailService
}

func NewContactController(email *models.EmailService) *ContactController {
	return &ContactController{email: email}
}

// Submit godoc
// @Summary Submit contact message
// @Description Store a contact form message and notify the company inbox
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body models.ContactMessageRequest true "Contact message"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /contact-message [post]
func (ctrl *ContactController) Submit(c *gin.Context) {
	var req models.ContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" || req.Message == "" {
		c.JSON(400, gin.H{"success": false, "message": "Name, email and message are required."})
		return
	}

	var id int
	err := models.DB.QueryRow(context.Background(),
		`INSERT INTO contact_messages (name, email, phone, message)
		VALUES ($1, $2, NULLIF($3, ''), $4)
		RETURNING id`,
		req.Name, req.Email, req.Phone, req.Message).Scan(&id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to submit message"})
		return
	}

	if ctrl.email != nil {
		go func() {
			if err := ctrl.email.SendContactNotification(req.Name, req.Email, req.Phone, req.Message); err != nil {
				log.Println("Failed to send contact notification:", err)
			}
		}()
	}

	c.JSON(201, gin.H{"success": true, "message": "Message sent successfully! We'll get back to you soon."})
}
