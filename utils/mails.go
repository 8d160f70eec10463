package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

func SendMail(email string, message []byte) {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	to := email

	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	smtpPort := os.Getenv("SMTP_PORT")
	if smtpPort == "" {
		smtpPort = "587"
	}
	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{to}, message)
	if err != nil {
		LogError(err, "Error sending the email")
		return
	}

	LogSuccess("Email sent successfully")
}

// PasswordResetMail builds the reset email body with the one-time link
func PasswordResetMail(to string, resetLink string) []byte {
	return []byte(fmt.Sprintf(
		"To: %s\r\nSubject: Reset your Elousia password\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n"+
			"We received a request to reset your password.\r\n\r\n"+
			"Open this link to choose a new one: %s\r\n\r\n"+
			"If you did not ask for a reset you can ignore this email.\r\n",
		to, resetLink))
}
