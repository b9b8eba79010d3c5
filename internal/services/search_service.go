// internal/services/search_service.go
package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/greenbasket/catalog-api/internal/models"
)

type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// SearchProducts returns the page of products whose name or description
// contains word (case-insensitive), most-reviewed first. An empty word
// matches every product. Ties fall to store-default order.
func (s *SearchService) SearchProducts(word string, page int) ([]models.Product, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * PageSize

	query := s.db.Model(&models.Product{})

	if word != "" {
		pattern := "%" + strings.ToLower(word) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	// Correlated subquery keeps the ranking portable between postgres and
	// the sqlite test database.
	var products []models.Product
	if err := query.
		Order("(SELECT COUNT(*) FROM reviews WHERE reviews.product_id = products.id) DESC").
		Offset(offset).
		Limit(PageSize).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	return products, nil
}
