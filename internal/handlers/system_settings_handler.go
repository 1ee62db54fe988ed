package handlers

import (
	"net/http"

	"harborhr/backend/internal/database"
	"harborhr/backend/internal/models"
	"harborhr/backend/internal/notifications"
	hlog "harborhr/backend/pkg/log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SystemSettingResponse é a estrutura para retornar configurações ao frontend.
// Importante: este DTO nunca expõe o valor criptografado.
type SystemSettingResponse struct {
	Key         string `json:"key"`
	Value       string `json:"value"` // O valor descriptografado
	Description string `json:"description"`
	IsEncrypted bool   `json:"is_encrypted"`
}

// ListSystemSettingsHandler lista todas as configurações do sistema que podem ser expostas na UI.
func ListSystemSettingsHandler(c *gin.Context) {
	log := hlog.L.Named("ListSystemSettingsHandler")
	db := database.GetDB()

	var settings []models.SystemSetting
	if err := db.Where("exposed_to_ui = ?", true).Find(&settings).Error; err != nil {
		log.Error("Failed to retrieve system settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve system settings"})
		return
	}

	response := make([]SystemSettingResponse, len(settings))
	for i, s := range settings {
		decryptedValue, err := s.GetDecryptedValue()
		if err != nil {
			log.Error("Failed to decrypt setting value", zap.String("key", s.Key), zap.Error(err))
			decryptedValue = "******"
		}
		response[i] = SystemSettingResponse{
			Key:         s.Key,
			Value:       decryptedValue,
			Description: s.Description,
			IsEncrypted: s.IsEncrypted,
		}
	}

	c.JSON(http.StatusOK, response)
}

type UpdateSystemSettingsPayload struct {
	Settings map[string]string `json:"settings" binding:"required"`
}

// UpdateSystemSettingsHandler atualiza valores de configurações existentes.
func UpdateSystemSettingsHandler(c *gin.Context) {
	log := hlog.L.Named("UpdateSystemSettingsHandler")
	var payload UpdateSystemSettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	db := database.GetDB()
	for key, value := range payload.Settings {
		var setting models.SystemSetting
		if err := db.Where("key = ?", key).First(&setting).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown setting: " + key})
			return
		}
		setting.Value = value
		if err := db.Save(&setting).Error; err != nil {
			log.Error("Failed to update system setting", zap.String("key", key), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update setting: " + key})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Settings updated successfully."})
}

type TestEmailPayload struct {
	To string `json:"to" binding:"required,email"`
}

// SendTestEmailHandler dispara um e-mail de teste com as configurações atuais.
func SendTestEmailHandler(c *gin.Context) {
	var payload TestEmailPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	body := "<p>This is a test email from HarborHR. Your email settings are working.</p>"
	if err := notifications.SendEmailNotification(c.Request.Context(), payload.To, "HarborHR Test Email", body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send test email: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Test email sent."})
}
