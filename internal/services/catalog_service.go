// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/greenbasket/catalog-api/internal/models"
)

const (
	// PageSize is the fixed page size the legacy API computes total_page
	// against, independent of the caller-supplied limit.
	PageSize = 24

	// MainAmount is the number of cards on the landing page.
	MainAmount = 10
)

// Sort codes carried over from the legacy query contract.
var sortOrders = map[string]string{
	"1": "is_new DESC",
	"2": "price DESC",
	"3": "price ASC",
	"m": "view_count DESC",
}

type CatalogService struct {
	db *gorm.DB
}

type ProductListParams struct {
	Category     string
	ProductTypes []string
	Sort         string
	Limit        int
	Offset       int
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) filteredProducts(params ProductListParams) *gorm.DB {
	query := s.db.Model(&models.Product{})

	// Absent parameter means no constraint, not "match nothing".
	if params.Category != "" {
		query = query.Where("category_id = ?", params.Category)
	}
	if len(params.ProductTypes) > 0 {
		query = query.Where("product_type_id IN ?", params.ProductTypes)
	}

	return query
}

// ListProducts returns the sorted, filtered slice of products together with
// the total count of products matching the filters.
//
// Slice semantics follow the legacy contract: Offset is a start index and
// Limit an END index, so rows [Offset, Limit) are returned and
// Limit <= Offset yields an empty result.
func (s *CatalogService) ListProducts(params ProductListParams) ([]models.Product, int64, error) {
	order, ok := sortOrders[params.Sort]
	if !ok {
		order = sortOrders["1"]
	}

	query := s.filteredProducts(params)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	span := params.Limit - params.Offset
	if span <= 0 {
		return []models.Product{}, total, nil
	}

	var products []models.Product
	if err := query.Order(order).Offset(params.Offset).Limit(span).Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

// MainPageProducts returns the landing-page selection: the top products by
// view count under the same filters as the full listing.
func (s *CatalogService) MainPageProducts(params ProductListParams) ([]models.Product, error) {
	var products []models.Product
	if err := s.filteredProducts(params).
		Order(sortOrders["m"]).
		Limit(MainAmount).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch main page products: %w", err)
	}

	return products, nil
}

// GetProduct fetches one product by id and records the view. The counter is
// bumped with a single UPDATE so concurrent detail fetches cannot lose
// increments.
func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&models.Product{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		return nil, fmt.Errorf("failed to increment view count: %w", err)
	}

	return &product, nil
}

func (s *CatalogService) Categories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

func (s *CatalogService) Videos() ([]models.Video, error) {
	var videos []models.Video
	if err := s.db.Find(&videos).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch videos: %w", err)
	}
	return videos, nil
}

// Options returns the full option price list. Options are a global table in
// this schema and are not scoped to a product.
func (s *CatalogService) Options() ([]models.Option, error) {
	var options []models.Option
	if err := s.db.Find(&options).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch options: %w", err)
	}
	return options, nil
}
