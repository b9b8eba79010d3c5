// internal/handlers/product.go
package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/greenbasket/catalog-api/internal/models"
	"github.com/greenbasket/catalog-api/internal/services"
	"github.com/greenbasket/catalog-api/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
}

func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// productCard is the condensed per-product projection used by listing
// responses. pk, view_count and is_new are nulled in main-page mode.
type productCard struct {
	Name          string `json:"name"`
	Price         int    `json:"price"`
	MainImageURL  string `json:"main_image_url"`
	HoverImageURL string `json:"hover_image_url"`
	PK            *uint  `json:"pk"`
	ViewCount     *int64 `json:"view_count"`
	IsNew         *bool  `json:"is_new"`
}

func newProductCard(p models.Product, anonymous bool) productCard {
	card := productCard{
		Name:          p.Name,
		Price:         p.Price,
		MainImageURL:  p.MainImageURL,
		HoverImageURL: p.HoverImageURL,
	}

	if !anonymous {
		pk := p.ID
		viewCount := p.ViewCount
		isNew := p.IsNew
		card.PK = &pk
		card.ViewCount = &viewCount
		card.IsNew = &isNew
	}

	return card
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := services.ProductListParams{
		Category:     c.Query("category"),
		ProductTypes: c.QueryArray("product_type"),
		Sort:         c.DefaultQuery("sort", "1"),
	}

	params.Limit = services.PageSize
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit >= 0 {
			params.Limit = limit
		}
	}

	if offsetStr := c.Query("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil && offset >= 0 {
			params.Offset = offset
		}
	}

	mainPage := c.Query("page") == "m"

	products, total, err := h.catalogService.ListProducts(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	if mainPage {
		products, err = h.catalogService.MainPageProducts(params)
		if err != nil {
			utils.InternalErrorResponse(c, err.Error())
			return
		}
	}

	cards := make([]productCard, 0, len(products))
	for _, product := range products {
		cards = append(cards, newProductCard(product, mainPage))
	}

	categories, err := h.catalogService.Categories()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	categoryInfo := make([]gin.H, 0, len(categories))
	for _, category := range categories {
		categoryInfo = append(categoryInfo, gin.H{"name": category.Name})
	}

	videos, err := h.catalogService.Videos()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	videoInfo := make([]gin.H, 0, len(videos))
	for _, video := range videos {
		videoInfo = append(videoInfo, gin.H{
			"name":        video.Name,
			"description": video.Description,
			"video_url":   video.VideoURL,
		})
	}

	// total_page is computed against the fixed page size, not the caller's
	// limit; existing clients depend on this.
	totalPage := int(math.Ceil(float64(total) / float64(services.PageSize)))

	c.JSON(http.StatusOK, gin.H{
		"products_info": cards,
		"category_info": categoryInfo,
		"data": []gin.H{{
			"total_page":     totalPage,
			"total_products": total,
		}},
		"video": videoInfo,
	})
}

// GET /products/:product_id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil {
		utils.ValueErrorResponse(c)
		return
	}

	product, err := h.catalogService.GetProduct(uint(productID))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.ValueErrorResponse(c)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	options, err := h.catalogService.Options()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	optionInfo := make([]gin.H, 0, len(options))
	for _, option := range options {
		optionInfo = append(optionInfo, gin.H{
			"option_name":  option.Name,
			"option_price": option.Price,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"product_info": []gin.H{{
			"name":           product.Name,
			"price":          product.Price,
			"main_image_url": product.MainImageURL,
			"description":    product.Description,
		}},
		"option_info": optionInfo,
	})
}
