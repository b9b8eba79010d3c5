// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/greenbasket/catalog-api/internal/config"
	"github.com/greenbasket/catalog-api/internal/handlers"
	"github.com/greenbasket/catalog-api/internal/middleware"
	"github.com/greenbasket/catalog-api/internal/services"
	"github.com/greenbasket/catalog-api/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogService := services.NewCatalogService(db)
	reviewService := services.NewReviewService(db)
	searchService := services.NewSearchService(db)
	authService := services.NewAuthService(db, cfg)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(catalogService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	searchHandler := handlers.NewSearchHandler(searchService)
	authHandler := handlers.NewAuthHandler(authService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// User routes
	users := r.Group("/users")
	users.Use(middleware.AuthRateLimit())
	{
		users.POST("/signup", authHandler.SignUp)
		users.POST("/signin", authHandler.SignIn)
	}

	// Product routes
	products := r.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.POST("/search", searchHandler.SearchProducts)

		reviews := products.Group("/reviews")
		{
			reviews.GET("", reviewHandler.GetReviews)
			reviews.POST("", middleware.AuthRequired(), reviewHandler.CreateReview)
			reviews.DELETE("/:review_id", middleware.AuthRequired(), reviewHandler.DeleteReview)
		}

		products.GET("/:product_id", productHandler.GetProduct)
	}

	return r
}
