package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"artisan-backend/internal/app/role"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	// Справочники и аналитика - без авторизации
	api.GET("/products", h.GetProducts)
	api.GET("/products/:industry", h.GetProduct)
	api.POST("/products/:industry/configure", h.ConfigureProduct)
	api.GET("/product-intelligence", h.Auth.WithOptionalAuth(), h.GetProductIntelligence)
	api.GET("/product-insights/:industry", h.GetProductInsights)
	api.GET("/schemes/phase1", h.GetPhase1Schemes)
	api.GET("/schemes/phase2", h.GetPhase2Schemes)

	api.POST("/onboard", h.Onboard)

	auth := api.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/admin", h.AdminLogin)
		auth.POST("/logout", h.Auth.WithAuthCheck(), h.Logout)
	}

	artisans := api.Group("/artisans")
	{
		artisans.GET("", h.Auth.WithAuthCheck(role.Admin), h.GetArtisans)
		artisans.GET("/:id", h.Auth.WithAuthCheck(role.Artisan, role.Admin), h.GetArtisan)
		artisans.PUT("/:id", h.Auth.WithAuthCheck(role.Artisan, role.Admin), h.UpdateArtisan)
	}

	wizard := api.Group("/wizard", h.Auth.WithAuthCheck(role.Artisan))
	{
		wizard.GET("", h.GetWizard)
		wizard.PUT("", h.SaveWizard)
	}

	api.POST("/submit-product", h.Auth.WithAuthCheck(role.Artisan), h.SubmitProduct)

	submissions := api.Group("/submissions", h.Auth.WithAuthCheck(role.Artisan, role.Admin))
	{
		submissions.GET("", h.GetSubmissions)
		submissions.GET("/:id", h.GetSubmission)
	}
}
