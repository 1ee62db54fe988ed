package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"harborhr/backend/internal/database"
	"harborhr/backend/internal/models"
	hlog "harborhr/backend/pkg/log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// mobileResource é o conjunto fechado de recursos alcançáveis pela API móvel.
// A resolução por string nunca produz nada fora desta enumeração.
type mobileResource int

const (
	resourceMessages mobileResource = iota
	resourceSchedules
)

// IDs de registro aceitam apenas dígitos; qualquer outra coisa vira "not found".
var numericIDPattern = regexp.MustCompile(`^[0-9]+$`)

// resolveMobileResource faz o match case-insensitive da classe pedida contra o
// allowlist fixo. Chaves precisam ser exatas: sem prefixos, sem espaços.
func resolveMobileResource(key string) (mobileResource, bool) {
	switch strings.ToLower(key) {
	case "messages":
		return resourceMessages, true
	case "schedules":
		return resourceSchedules, true
	default:
		return 0, false
	}
}

// currentUserID recupera o id do usuário autenticado do contexto Gin.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// MobileShowHandler retorna um único registro do escopo do usuário atual.
// Id malformado, inexistente ou fora do escopo respondem identicamente com
// 404, para não vazar a existência de registros de outros usuários.
func MobileShowHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resource, ok := resolveMobileResource(c.Param("class"))
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Model not allowed or not found"})
		return
	}

	recordID := c.Param("id")
	if !numericIDPattern.MatchString(recordID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	db := database.GetDB()
	var record interface{}
	var err error

	switch resource {
	case resourceMessages:
		var message models.Message
		err = db.Scopes(models.MessagesAccessibleBy(userID)).
			First(&message, "messages.id = ?", recordID).Error
		record = message
	case resourceSchedules:
		var schedule models.Schedule
		err = db.Scopes(models.SchedulesAccessibleBy(userID)).
			First(&schedule, "schedules.id = ?", recordID).Error
		record = schedule
	}

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		hlog.L.Error("Failed to fetch mobile record",
			zap.String("class", c.Param("class")),
			zap.String("id", recordID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch record"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// MobileListHandler retorna a coleção escopada ao usuário atual, paginada.
// Usuário sem registros (ex: sem PaidTimeOff) recebe uma coleção vazia.
func MobileListHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resource, ok := resolveMobileResource(c.Param("class"))
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Model not allowed or not found"})
		return
	}

	page, perPage := GetPaginationParams(c)
	db := database.GetDB()

	var totalCount int64
	var data interface{}
	var err error

	switch resource {
	case resourceMessages:
		if err = db.Model(&models.Message{}).Scopes(models.MessagesAccessibleBy(userID)).
			Count(&totalCount).Error; err == nil {
			messages := []models.Message{}
			err = db.Scopes(models.MessagesAccessibleBy(userID), PaginateScope(page, perPage)).
				Order("messages.id").Find(&messages).Error
			data = messages
		}
	case resourceSchedules:
		if err = db.Model(&models.Schedule{}).Scopes(models.SchedulesAccessibleBy(userID)).
			Count(&totalCount).Error; err == nil {
			schedules := []models.Schedule{}
			err = db.Scopes(models.SchedulesAccessibleBy(userID), PaginateScope(page, perPage)).
				Order("schedules.id").Find(&schedules).Error
			data = schedules
		}
	}

	if err != nil {
		hlog.L.Error("Failed to list mobile records",
			zap.String("class", c.Param("class")),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list records"})
		return
	}

	c.JSON(http.StatusOK, PaginatedResponse{
		Data: data,
		Pagination: Pagination{
			CurrentPage: page,
			PerPage:     perPage,
			TotalPages:  TotalPages(totalCount, perPage),
			TotalCount:  totalCount,
		},
	})
}
