// internal/handlers/review.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/greenbasket/catalog-api/internal/services"
	"github.com/greenbasket/catalog-api/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// Pointer fields distinguish a missing key from a zero value.
type createReviewRequest struct {
	ProductID *uint   `json:"product_id"`
	Comment   *string `json:"comment"`
	Score     *int    `json:"score"`
}

// POST /products/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c)
		return
	}

	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ReviewMessageResponse(c, http.StatusBadRequest, utils.MsgKeyError)
		return
	}

	if req.ProductID == nil || req.Comment == nil || req.Score == nil {
		utils.ReviewMessageResponse(c, http.StatusBadRequest, utils.MsgKeyError)
		return
	}

	if err := h.reviewService.CreateReview(userID, *req.ProductID, *req.Comment, *req.Score); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.ReviewMessageResponse(c, http.StatusUnauthorized, utils.MsgInvalidError)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.ReviewMessageResponse(c, http.StatusCreated, utils.MsgSuccess)
}

// GET /products/reviews
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	productIDStr, exists := c.GetQuery("product_id")
	if !exists {
		utils.KeyErrorResponse(c)
		return
	}

	productID, err := strconv.ParseUint(productIDStr, 10, 64)
	if err != nil {
		utils.TypeErrorResponse(c)
		return
	}

	reviews, err := h.reviewService.ListReviews(uint(productID))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.ValueErrorResponse(c)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := make([]gin.H, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, gin.H{
			"user":        review.User.Account,
			"comment":     review.Comment,
			"score":       review.Score,
			"create_time": review.CreatedAt,
			"update_time": review.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"product": productIDStr,
		"result":  result,
	})
}

// DELETE /products/reviews/:review_id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c)
		return
	}

	reviewID, err := strconv.ParseUint(c.Param("review_id"), 10, 64)
	if err != nil {
		utils.ValueErrorResponse(c)
		return
	}

	if err := h.reviewService.DeleteReview(uint(reviewID), userID); err != nil {
		switch {
		case errors.Is(err, services.ErrReviewNotFound):
			utils.ValueErrorResponse(c)
		case errors.Is(err, services.ErrNotReviewOwner):
			utils.ForbiddenResponse(c)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.MessageResponse(c, http.StatusOK, utils.MsgSuccess)
}
