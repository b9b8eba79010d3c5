// internal/handlers/testutil_test.go
package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/greenbasket/catalog-api/internal/handlers"
	"github.com/greenbasket/catalog-api/internal/middleware"
	"github.com/greenbasket/catalog-api/internal/models"
	"github.com/greenbasket/catalog-api/internal/services"
	"github.com/greenbasket/catalog-api/internal/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache database keeps every pooled connection on the
	// same in-memory store while isolating suites from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.ProductType{},
		&models.Product{},
		&models.Option{},
		&models.Video{},
		&models.Review{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupRouter wires the handlers the way the production router does, minus
// the rate limiter and request logger so tests stay deterministic.
func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalogService := services.NewCatalogService(db)
	reviewService := services.NewReviewService(db)
	searchService := services.NewSearchService(db)

	productHandler := handlers.NewProductHandler(catalogService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	searchHandler := handlers.NewSearchHandler(searchService)

	r := gin.New()

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

func createTestUser(t *testing.T, db *gorm.DB, account string) (*models.User, string) {
	t.Helper()

	user := &models.User{Account: account}
	if err := user.SetPassword("Password123!"); err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	token, err := utils.GenerateJWT(user.ID, user.Account, 1)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	return user, token
}

func createTestProduct(t *testing.T, db *gorm.DB, p models.Product) *models.Product {
	t.Helper()

	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	return &p
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func doRequest(r *gin.Engine, method, path, token string, body *strings.Reader) *httptest.ResponseRecorder {
	if body == nil {
		body = strings.NewReader("")
	}

	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
