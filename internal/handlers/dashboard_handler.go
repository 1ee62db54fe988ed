package handlers

import (
	"net/http"
	"time"

	"harborhr/backend/internal/database"
	"harborhr/backend/internal/models"
	hlog "harborhr/backend/pkg/log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserDashboardSummary agrega contagens escopadas ao usuário atual.
type UserDashboardSummary struct {
	MessageCount          int64 `json:"message_count"`
	ScheduleCount         int64 `json:"schedule_count"`
	UpcomingScheduleCount int64 `json:"upcoming_schedule_count"`
}

// GetUserDashboardSummaryHandler retorna os totais visíveis para o usuário
// autenticado. Usa os mesmos escopos de acesso da API móvel.
func GetUserDashboardSummaryHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	db := database.GetDB()
	var summary UserDashboardSummary

	if err := db.Model(&models.Message{}).Scopes(models.MessagesAccessibleBy(userID)).
		Count(&summary.MessageCount).Error; err != nil {
		hlog.L.Error("Failed to count messages for dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard summary"})
		return
	}

	if err := db.Model(&models.Schedule{}).Scopes(models.SchedulesAccessibleBy(userID)).
		Count(&summary.ScheduleCount).Error; err != nil {
		hlog.L.Error("Failed to count schedules for dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard summary"})
		return
	}

	if err := db.Model(&models.Schedule{}).Scopes(models.SchedulesAccessibleBy(userID)).
		Where("schedules.date_begin > ?", time.Now()).
		Count(&summary.UpcomingScheduleCount).Error; err != nil {
		hlog.L.Error("Failed to count upcoming schedules for dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
