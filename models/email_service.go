package models

import (
	"fmt"
	"strconv"

	"goodsoil/config"

	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService() (*EmailService, error) {
	cfg := config.AppConfig

	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}

	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass)

	return &EmailService{dialer: dialer, from: from}, nil
}

func (s *EmailService) SendDiscountEmail(toEmail, discountCode string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your 20% Off Discount Code from The Good Soil Co.!")

	body := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h2 style="color: #4CAF50;">Welcome to The Good Soil Co. Family!</h2>
  <p>Thank you for subscribing to our newsletter. We're thrilled to have you!</p>
  <p>As a token of our appreciation, here's your exclusive <strong>20%% OFF</strong> discount code for your first order:</p>
  <h3 style="background-color: #f0f0f0; padding: 15px; border-radius: 8px; text-align: center; color: #333;">
    <strong>%s</strong>
  </h3>
  <p>Simply apply this code at checkout to enjoy your savings.</p>
  <p>Happy Gardening!</p>
  <p>The Good Soil Co. Team</p>
</div>
	`, discountCode)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *EmailService) SendPasswordResetEmail(toEmail, fullName, resetURL string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Password Reset Request for The Good Soil Co.")

	if fullName == "" {
		fullName = "User"
	}

	body := fmt.Sprintf(`
<p>Dear %s,</p>
<p>You have requested to reset your password for your account at The Good Soil Co.</p>
<p>Please click on the following link to reset your password:</p>
<p><a href="%s">Reset Your Password</a></p>
<p>This link will expire in 1 hour.</p>
<p>If you did not request a password reset, please ignore this email.</p>
<p>Thank you,</p>
<p>The Good Soil Co. Team</p>
	`, fullName, resetURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *EmailService) SendContactNotification(name, email, phone, message string) error {
	if phone == "" {
		phone = "N/A"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", config.AppConfig.CompanyEmail)
	m.SetHeader("Subject", fmt.Sprintf("New Contact Message from %s (%s)", name, email))

	body := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h2 style="color: #4CAF50;">New Contact Form Submission</h2>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Email:</strong> %s</p>
  <p><strong>Phone:</strong> %s</p>
  <p><strong>Message:</strong></p>
  <p style="background-color: #f0f0f0; padding: 15px; border-radius: 8px;">%s</p>
  <p>This message was sent from your website's contact form.</p>
</div>
	`, name, email, phone, message)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *EmailService) SendOrderConfirmationEmail(toEmail string, orderID int, total decimal.Decimal) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation #%d - The Good Soil Co.", orderID))

	body := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h2 style="color: #4CAF50;">Order Confirmation</h2>
  <p>Thank you for your order!</p>
  <p><strong>Order Number:</strong> %d</p>
  <p><strong>Total Amount:</strong> %s</p>
  <p>Your order has been received and is being processed. We'll notify you when it ships.</p>
  <p>The Good Soil Co. Team</p>
</div>
	`, orderID, total.StringFixed(2))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
