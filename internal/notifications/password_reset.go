package notifications

import (
	"context"
	"fmt"
	"strings"

	"harborhr/backend/internal/database"
	"harborhr/backend/internal/models"
	"harborhr/backend/pkg/config"
)

// BuildPasswordResetLink monta a URL de confirmação enviada por e-mail. A base
// vem das system settings, com fallback para a config de ambiente.
func BuildPasswordResetLink(token string) string {
	baseURL, _ := models.GetSystemSetting(database.GetDB(), "FRONTEND_BASE_URL")
	if baseURL == "" {
		baseURL = config.Cfg.FrontendBaseURL
	}
	if baseURL == "" {
		baseURL = "http://localhost" // Fallback
	}
	return fmt.Sprintf("%s/password_resets/confirm_token?token=%s", strings.TrimSuffix(baseURL, "/"), token)
}

// SendPasswordResetEmail envia o e-mail de reset de senha com o link redimível.
func SendPasswordResetEmail(ctx context.Context, user *models.User, resetLink string) error {
	bodyHTML := fmt.Sprintf(`
        <h2>Password Reset Request</h2>
        <p>Hello %s,</p>
        <p>You requested a password reset. Click the link below to reset your password:</p>
        <p><a href="%s">Reset Password</a></p>
        <p>This link is valid for 1 hour. If you did not request this, please ignore this email.</p>
    `, user.FullName(), resetLink)

	return SendEmailNotification(ctx, user.Email, "Password Reset Request", bodyHTML)
}
