package handlers

import (
	"net/http"
	"time"

	"harborhr/backend/internal/database"
	"harborhr/backend/internal/models"
	"harborhr/backend/internal/notifications"
	"harborhr/backend/internal/tokens"
	"harborhr/backend/pkg/config"
	hlog "harborhr/backend/pkg/log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	resetVerifier      *tokens.Verifier
	resetTokenLifespan = time.Hour
)

// InitPasswordReset configura o verificador de tokens de reset. Deve ser
// chamado no startup, depois de config.LoadConfig.
func InitPasswordReset() error {
	v, err := tokens.NewVerifier(config.Cfg.ResetTokenSecret)
	if err != nil {
		return err
	}
	resetVerifier = v
	if config.Cfg.ResetTokenLifespan > 0 {
		resetTokenLifespan = config.Cfg.ResetTokenLifespan
	}
	return nil
}

// SetResetVerifier injeta um verificador com chave própria. Usado em testes.
func SetResetVerifier(v *tokens.Verifier) {
	resetVerifier = v
}

type ForgotPasswordPayload struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPasswordHandler inicia o processo de reset de senha. O link enviado
// carrega um token assinado; o formato legado não é mais emitido.
func ForgotPasswordHandler(c *gin.Context) {
	log := hlog.L.Named("ForgotPasswordHandler")
	var payload ForgotPasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	// Não revele se o e-mail existe ou não.
	genericResponse := gin.H{"message": "If an account with that email exists, a password reset link has been sent."}

	db := database.GetDB()
	var user models.User
	if err := db.Where("email = ?", payload.Email).First(&user).Error; err != nil {
		log.Info("Password reset requested for non-existent email", zap.String("email", payload.Email))
		c.JSON(http.StatusOK, genericResponse)
		return
	}

	token, err := resetVerifier.Generate(user.ID, resetTokenLifespan)
	if err != nil {
		log.Error("Failed to generate password reset token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	resetLink := notifications.BuildPasswordResetLink(token)
	if err := notifications.SendPasswordResetEmail(c.Request.Context(), &user, resetLink); err != nil {
		log.Error("Failed to send password reset email", zap.Error(err))
		// Não retorne o erro ao usuário por segurança.
	}

	c.JSON(http.StatusOK, genericResponse)
}

// ConfirmTokenHandler valida o token recebido por e-mail e emite o token
// assinado que o formulário de reset envia de volta. Aceita tanto o token
// assinado quanto o formato legado "<id>-<md5(email)>" de links antigos; a
// causa da falha nunca é exposta ao cliente.
func ConfirmTokenHandler(c *gin.Context) {
	log := hlog.L.Named("ConfirmTokenHandler")
	token := c.Query("token")
	if token == "" {
		token = c.PostForm("token")
	}

	invalid := func() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid password reset token. Please try again."})
	}

	if token == "" {
		invalid()
		return
	}

	db := database.GetDB()
	var user models.User

	if userID, err := resetVerifier.Verify(token); err == nil {
		if err := db.First(&user, userID).Error; err != nil {
			invalid()
			return
		}
	} else if legacyID, emailHash, ok := tokens.ParseLegacyToken(token); ok {
		if err := db.First(&user, legacyID).Error; err != nil {
			invalid()
			return
		}
		if !tokens.LegacyHashMatchesEmail(emailHash, user.Email) {
			log.Info("Legacy reset token digest mismatch", zap.Uint("user_id", legacyID))
			invalid()
			return
		}
	} else {
		invalid()
		return
	}

	formToken, err := resetVerifier.Generate(user.ID, resetTokenLifespan)
	if err != nil {
		log.Error("Failed to generate reset form token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Password reset token confirmed! Please create a new password.",
		"user_token": formToken,
	})
}

type ResetPasswordPayload struct {
	UserToken       string `json:"user_token" binding:"required"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// ResetPasswordHandler finaliza o processo de reset de senha. A verificação
// do token assinado cobre assinatura e expiração; tokens forjados, mutados ou
// vencidos falham de forma indistinguível.
func ResetPasswordHandler(c *gin.Context) {
	log := hlog.L.Named("ResetPasswordHandler")
	var payload ResetPasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	userID, err := resetVerifier.Verify(payload.UserToken)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	if payload.Password != payload.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash new password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process new password"})
		return
	}

	user.PasswordHash = string(hashedPassword)
	if err := db.Save(&user).Error; err != nil {
		log.Error("Failed to update password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Your password has been reset, please login."})
}
