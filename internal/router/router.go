package router

import (
	"net/http"
	"time"

	"harborhr/backend/internal/auth"
	"harborhr/backend/internal/database"
	"harborhr/backend/internal/handlers"
	hmiddleware "harborhr/backend/internal/middleware"
	hlog "harborhr/backend/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter configura e retorna uma instância do Gin Engine.
func SetupRouter(log *zap.Logger) *gin.Engine {
	router := gin.New()

	// Adicionar middlewares globais
	router.Use(hmiddleware.Metrics())
	router.Use(hmiddleware.GinZap(log, time.RFC3339, true))
	router.Use(hmiddleware.GinRecovery(log, time.RFC3339, true, true))

	// Endpoint para métricas Prometheus
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rotas de Saúde
	router.GET("/health", healthCheckHandler)

	// Rotas de Autenticação e reset de senha (sem JWT)
	setupAuthRoutes(router)

	// Rotas da API v1 (protegidas por JWT)
	setupV1Routes(router)

	return router
}

func healthCheckHandler(c *gin.Context) {
	sqlDB, err := database.DB.DB()
	if err != nil {
		hlog.L.Error("Erro ao obter a instância do DB para o health check", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "database instance error"})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		hlog.L.Error("Falha no ping do banco de dados durante o health check", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "database ping failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": "connected",
	})
}

func setupAuthRoutes(r *gin.Engine) {
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/login", handlers.LoginHandler)
	}

	resetRoutes := r.Group("/password_resets")
	{
		resetRoutes.POST("/send_forgot_password", handlers.ForgotPasswordHandler)
		resetRoutes.GET("/confirm_token", handlers.ConfirmTokenHandler)
		resetRoutes.POST("/confirm_token", handlers.ConfirmTokenHandler)
		resetRoutes.POST("/reset_password", handlers.ResetPasswordHandler)
	}
}

func setupV1Routes(r *gin.Engine) {
	apiV1 := r.Group("/api/v1")
	apiV1.Use(auth.AuthMiddleware())
	{
		apiV1.GET("/me", handlers.MeHandler)
		apiV1.GET("/me/dashboard/summary", handlers.GetUserDashboardSummaryHandler)

		// Mobile Resource Gateway: gate de cliente móvel antes da resolução de recurso
		mobileRoutes := apiV1.Group("/mobile")
		mobileRoutes.Use(auth.MobileGateMiddleware())
		{
			mobileRoutes.GET("/:class", handlers.MobileListHandler)
			mobileRoutes.GET("/:class/:id", handlers.MobileShowHandler)
		}

		// Benefit Form Routes
		benefitRoutes := apiV1.Group("/benefit_forms")
		{
			benefitRoutes.GET("", handlers.ListBenefitFormsHandler)
			benefitRoutes.GET("/download", handlers.DownloadBenefitFormHandler)
			benefitRoutes.POST("/upload", handlers.UploadBenefitFormHandler)
		}

		// System Admin Routes
		adminRoutes := apiV1.Group("/admin")
		{
			settingsRoutes := adminRoutes.Group("/settings")
			{
				settingsRoutes.GET("", handlers.ListSystemSettingsHandler)
				settingsRoutes.PUT("", handlers.UpdateSystemSettingsHandler)
				settingsRoutes.POST("/test-email", handlers.SendTestEmailHandler)
			}
		}
	}
}
