package controllers

import (
	"context"
	"errors"

	"goodsoil/models"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type UserController struct{}

func NewUserController() *UserController {
	return &UserController{}
}

// GetProfile godoc
// @Summary Get user profile
// @Description Get the current user's profile
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /user/profile [get]
func (ctrl *UserController) GetProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var user models.User
	err := models.DB.QueryRow(context.Background(),
		`SELECT id, full_name, email, phone_number, last_login_at, created_at, updated_at
		FROM users WHERE id = $1`,
		userID).Scan(
		&user.ID, &user.FullName, &user.Email, &user.PhoneNumber,
		&user.LastLoginAt, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(404, gin.H{"success": false, "message": "User not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch profile"})
		return
	}

	c.JSON(200, gin.H{"success": true, "data": user})
}

// UpdateProfile godoc
// @Summary Update user profile
// @Description Update the current user's name, email and phone number
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /user/profile/update [put]
func (ctrl *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Full name, email and phone number are required."})
		return
	}

	var taken int
	models.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM users WHERE (email = $1 OR phone_number = $2) AND id <> $3",
		req.Email, req.PhoneNumber, userID).Scan(&taken)
	if taken > 0 {
		c.JSON(409, gin.H{"success": false, "message": "Email or phone number is already in use by another account."})
		return
	}

	var user models.User
	err := models.DB.QueryRow(context.Background(),
		`UPDATE users SET full_name = $1, email = $2, phone_number = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, full_name, email, phone_number, last_login_at, created_at, updated_at`,
		req.FullName, req.Email, req.PhoneNumber, userID).Scan(
		&user.ID, &user.FullName, &user.Email, &user.PhoneNumber,
		&user.LastLoginAt, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update profile"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Profile updated successfully", "data": user})
}
