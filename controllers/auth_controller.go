package controllers

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"goodsoil/config"
	"goodsoil/models"
	"goodsoil/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type AuthController struct {
	email *models.EmailService
}

func NewAuthController(email *models.EmailService) *AuthController {
	return &AuthController{email: email}
}

func (ctrl *AuthController) recordLoginAttempt(c *gin.Context, userID *int, identifier string, success bool, failureReason string) {
	_, err := models.DB.Exec(context.Background(),
		`INSERT INTO login_attempts (user_id, login_identifier, ip_address, user_agent, success, failure_reason)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))`,
		userID, identifier, c.ClientIP(), c.Request.UserAgent(), success, failureReason)
	if err != nil {
		log.Println("Failed to record login attempt:", err)
	}
}

// Register godoc
// @Summary Register new user
// @Description Register a new customer account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Full name, email, phone number and a password of at least 6 characters are required."})
		return
	}

	var exists int
	models.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM users WHERE email = $1 OR phone_number = $2",
		req.Email, req.PhoneNumber).Scan(&exists)
	if exists > 0 {
		c.JSON(409, gin.H{"success": false, "message": "An account with this email or phone number already exists."})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Registration failed"})
		return
	}

	var user models.User
	err = models.DB.QueryRow(context.Background(),
		`INSERT INTO users (full_name, email, phone_number, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, full_name, email, phone_number, created_at, updated_at`,
		req.FullName, req.Email, req.PhoneNumber, hash).Scan(
		&user.ID, &user.FullName, &user.Email, &user.PhoneNumber, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Registration failed"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Registration successful",
		"data":    user,
	})
}

// Login godoc
// @Summary User login
// @Description Login with email or phone number plus password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Login identifier and password are required."})
		return
	}

	var user models.User
	err := models.DB.QueryRow(context.Background(),
		`SELECT id, full_name, email, phone_number, password_hash, last_login_at, created_at, updated_at
		FROM users WHERE email = $1 OR phone_number = $1`,
		req.LoginIdentifier).Scan(
		&user.ID, &user.FullName, &user.Email, &user.PhoneNumber, &user.PasswordHash,
		&user.LastLoginAt, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		ctrl.recordLoginAttempt(c, nil, req.LoginIdentifier, false, "user not found")
		c.JSON(401, gin.H{"success": false, "message": "Invalid credentials."})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Login failed"})
		return
	}

	if !utils.VerifyPassword(user.PasswordHash, req.Password) {
		ctrl.recordLoginAttempt(c, &user.ID, req.LoginIdentifier, false, "wrong password")
		c.JSON(401, gin.H{"success": false, "message": "Invalid credentials."})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Login failed"})
		return
	}

	ctrl.recordLoginAttempt(c, &user.ID, req.LoginIdentifier, true, "")
	models.DB.Exec(context.Background(),
		"UPDATE users SET last_login_at = NOW() WHERE id = $1", user.ID)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"data": gin.H{
			"token": token,
			"user":  user,
		},
	})
}

// ForgotPassword godoc
// @Summary Request password reset
// @Description Email a password reset link. The response never reveals whether the account exists.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.ForgotPasswordRequest true "Account email"
// @Success 200 {object} models.Response
// @Router /forgot-password [post]
func (ctrl *AuthController) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "A valid email address is required."})
		return
	}

	reply := gin.H{"success": true, "message": "If an account with that email exists, a password reset link has been sent."}

	var userID int
	var fullName string
	err := models.DB.QueryRow(context.Background(),
		"SELECT id, full_name FROM users WHERE email = $1", req.Email).Scan(&userID, &fullName)
	if err != nil {
		c.JSON(200, reply)
		return
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to process request"})
		return
	}
	token := hex.EncodeToString(raw)
	tokenHash := sha256.Sum256([]byte(token))

	_, err = models.DB.Exec(context.Background(),
		`INSERT INTO password_reset_tokens (user_id, token_hash, expires_at) VALUES ($1, $2, $3)`,
		userID, hex.EncodeToString(tokenHash[:]), time.Now().Add(time.Hour))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to process request"})
		return
	}

	if ctrl.email != nil {
		resetURL := fmt.Sprintf("%s/reset-password?token=%s", config.AppConfig.ClientURL, token)
		go func() {
			if err := ctrl.email.SendPasswordResetEmail(req.Email, fullName, resetURL); err != nil {
				log.Println("Failed to send password reset email:", err)
			}
		}()
	}

	c.JSON(200, reply)
}

// ResetPassword godoc
// @Summary Reset password
// @Description Set a new password using a reset token from email
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /reset-password [post]
func (ctrl *AuthController) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "A reset token and a new password of at least 6 characters are required."})
		return
	}

	tokenHash := sha256.Sum256([]byte(req.Token))

	var userID int
	var expiresAt time.Time
	err := models.DB.QueryRow(context.Background(),
		"SELECT user_id, expires_at FROM password_reset_tokens WHERE token_hash = $1",
		hex.EncodeToString(tokenHash[:])).Scan(&userID, &expiresAt)
	if err != nil || time.Now().After(expiresAt) {
		c.JSON(400, gin.H{"success": false, "message": "Invalid or expired password reset token."})
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to reset password"})
		return
	}

	_, err = models.DB.Exec(context.Background(),
		"UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2", hash, userID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to reset password"})
		return
	}

	models.DB.Exec(context.Background(),
		"DELETE FROM password_reset_tokens WHERE user_id = $1", userID)

	c.JSON(200, gin.H{"success": true, "message": "Password has been reset successfully."})
}
