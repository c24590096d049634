package utils

import (
	"fmt"
	"os"
	"photo-portfolio-backend/config"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Initialize the SMTP mailer once and store it in a global variable
var mailer *gomail.Dialer

// InitializeMailer sets up the mailer using environment variables
func InitializeMailer() {
	mailHost := os.Getenv("SMTP_HOST")
	mailPort := os.Getenv("SMTP_PORT")
	mailUser := os.Getenv("SMTP_USER")
	mailPassword := os.Getenv("SMTP_PASSWORD")

	port, err := strconv.Atoi(mailPort)
	if err != nil {
		config.Logger.Error("Invalid SMTP_PORT value, defaulting to port 25",
			zap.String("provided_port", mailPort),
			zap.Error(err),
		)
		port = 25
	}

	mailer = gomail.NewDialer(mailHost, port, mailUser, mailPassword)
	config.Logger.Info("Mailer initialized successfully")
}

// GetMailer returns the initialized mailer
func GetMailer() *gomail.Dialer {
	return mailer
}

// SendEmail sends an email with an optional HTML body and attachment.
func SendEmail(email string, message string, title string, htmlBody string, attachmentPath string) error {
	if mailer == nil {
		err := fmt.Errorf("mailer is not initialized")
		config.Logger.Error("Email send failed: mailer is not initialized",
			zap.String("to_email", email),
			zap.String("subject", title),
			zap.Error(err),
		)
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", email)
	m.SetHeader("Subject", title)
	m.SetBody("text/plain", message)
	if htmlBody != "" {
		m.AddAlternative("text/html", htmlBody)
	}

	if attachmentPath != "" {
		if _, err := os.Stat(attachmentPath); err == nil {
			m.Attach(attachmentPath)
			config.Logger.Debug("Attaching file to email", zap.String("filepath", attachmentPath))
		} else {
			config.Logger.Warn("Attachment file not found for email",
				zap.String("filepath", attachmentPath),
				zap.String("to_email", email),
				zap.Error(err),
			)
			// Don't fail the send just because an optional attachment isn't found
		}
	}

	if err := mailer.DialAndSend(m); err != nil {
		config.Logger.Error("Failed to send email via SMTP",
			zap.String("to_email", email),
			zap.String("subject", title),
			zap.Bool("has_attachment", attachmentPath != ""),
			zap.Error(err),
		)
		return fmt.Errorf("failed to send email: %w", err)
	}

	config.Logger.Info("Email sent successfully",
		zap.String("to_email", email),
		zap.String("subject", title),
	)
	return nil
}

// CommentNotificationBody builds the HTML body for the new-comment moderation email.
func CommentNotificationBody(authorName, targetType, targetTitle, body string) string {
	return fmt.Sprintf(`
		<html>
			<head>
				<meta charset="utf-8">
				<title>New comment awaiting moderation</title>
			</head>
			<body>
				<p><strong>%s</strong> left a comment on the %s <strong>%s</strong>:</p>
				<blockquote>%s</blockquote>
				<p>Log in to the dashboard to approve or reject it.</p>
			</body>
		</html>
	`, authorName, targetType, targetTitle, body)
}
