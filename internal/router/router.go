package router

import (
	"github.com/gin-gonic/gin"
	"github.com/ikkim/creme-backend/config"
	"github.com/ikkim/creme-backend/internal/app/controller"
	"github.com/ikkim/creme-backend/internal/middleware"
)

type Router struct {
	menuController     *controller.MenuController
	productController  *controller.ProductController
	categoryController *controller.CategoryController
	configController   *controller.ConfigController
	authController     *controller.AuthController
	uploadController   *controller.UploadController
	liveController     *controller.LiveController
	authMiddleware     *middleware.AuthMiddleware
	config             *config.Config
}

func NewRouter(
	menuController *controller.MenuController,
	productController *controller.ProductController,
	categoryController *controller.CategoryController,
	configController *controller.ConfigController,
	authController *controller.AuthController,
	uploadController *controller.UploadController,
	liveController *controller.LiveController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		menuController:     menuController,
		productController:  productController,
		categoryController: categoryController,
		configController:   configController,
		authController:     authController,
		uploadController:   uploadController,
		liveController:     liveController,
		authMiddleware:     authMiddleware,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "CRÈME API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/menu", r.menuController.GetMenu)
		v1.GET("/products", r.menuController.GetProducts)
		v1.GET("/categories", r.menuController.GetCategories)
		v1.GET("/search", r.menuController.Search)
		v1.POST("/checkout", r.menuController.Checkout)
		v1.GET("/live", r.liveController.Connect)

		cfg := v1.Group("/config")
		{
			cfg.GET("", r.menuController.GetConfig)
			cfg.GET("/theme", r.menuController.GetThemeConfig)
			cfg.GET("/social", r.menuController.GetSocialConfig)
			cfg.GET("/address", r.menuController.GetAddressConfig)
			cfg.GET("/app", r.menuController.GetAppConfig)
		}

		v1.POST("/admin/login", r.authController.Login)

		admin := v1.Group("/admin", r.authMiddleware.RequireAdmin())
		{
			admin.POST("/logout", r.authController.Logout)
			admin.GET("/session", r.authController.Session)

			products := admin.Group("/products")
			{
				products.GET("", r.productController.ListProducts)
				products.POST("", r.productController.CreateProduct)
				products.PUT("/:id", r.productController.UpdateProduct)
				products.DELETE("/:id", r.productController.DeleteProduct)
			}

			categories := admin.Group("/categories")
			{
				categories.POST("", r.categoryController.CreateCategory)
				categories.PUT("/order", r.categoryController.UpdateOrder)
				categories.POST("/move", r.categoryController.MoveCategory)
				categories.PUT("/:id", r.categoryController.UpdateCategory)
				categories.DELETE("/:id", r.categoryController.DeleteCategory)
			}

			settings := admin.Group("/config")
			{
				settings.PUT("/theme", r.configController.UpdateThemeConfig)
				settings.PUT("/app", r.configController.UpdateAppConfig)
				settings.PUT("/social", r.configController.UpdateSocialConfig)
				settings.PUT("/address", r.configController.UpdateAddressConfig)
			}

			admin.POST("/upload", r.uploadController.Upload)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
