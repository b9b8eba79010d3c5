// internal/services/review_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/greenbasket/catalog-api/internal/models"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// CreateReview stores a review for the given product, owned by the
// authenticated user. The product must exist.
func (s *ReviewService) CreateReview(userID, productID uint, comment string, score int) error {
	var count int64
	if err := s.db.Model(&models.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check product: %w", err)
	}
	if count == 0 {
		return ErrProductNotFound
	}

	review := &models.Review{
		UserID:    userID,
		ProductID: productID,
		Comment:   comment,
		Score:     score,
	}

	if err := s.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

// ListReviews returns every review for the product, with the reviewer
// loaded for the account name.
func (s *ReviewService) ListReviews(productID uint) ([]models.Review, error) {
	var count int64
	if err := s.db.Model(&models.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check product: %w", err)
	}
	if count == 0 {
		return nil, ErrProductNotFound
	}

	var reviews []models.Review
	if err := s.db.Preload("User").Where("product_id = ?", productID).Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	return reviews, nil
}

// DeleteReview removes a review. Only the owning user may delete it.
func (s *ReviewService) DeleteReview(reviewID, userID uint) error {
	var review models.Review
	if err := s.db.First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	if review.UserID != userID {
		return ErrNotReviewOwner
	}

	if err := s.db.Delete(&review).Error; err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	return nil
}
