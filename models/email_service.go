package models

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"

	"shopmart/config"
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

	return &EmailService{
		dialer: gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}, nil
}

func (s *EmailService) SendOTPEmail(toEmail, otp, subject string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject+" - ShopMart")

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
        <div style="text-align: center; font-size: 24px; font-weight: bold; color: #2563eb;">ShopMart</div>
        <h2 style="color: #333;">%s</h2>
        <p>Hello,</p>
        <p>Please use the following One-Time Password (OTP) to continue:</p>
        <div style="background-color: #eff6ff; border: 2px dashed #2563eb; padding: 20px; text-align: center; margin: 30px 0; border-radius: 8px;">
            <div style="font-size: 36px; font-weight: bold; color: #2563eb; letter-spacing: 8px;">%s</div>
        </div>
        <p><strong>This code will expire in 10 minutes.</strong></p>
        <p>If you did not request this code, please ignore this email.</p>
        <div style="text-align: center; margin-top: 30px; color: #666; font-size: 12px;">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>
	`, subject, otp)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
