// internal/handlers/search.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/greenbasket/catalog-api/internal/services"
	"github.com/greenbasket/catalog-api/internal/utils"
)

type SearchHandler struct {
	searchService *services.SearchService
}

func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// POST /products/search
//
// Parameters come from the query string despite the verb; the legacy client
// sends them that way.
func (h *SearchHandler) SearchProducts(c *gin.Context) {
	page := 1
	if pageStr, exists := c.GetQuery("page"); exists {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil {
			utils.TypeErrorResponse(c)
			return
		}
		page = parsed
	}

	// search_word echoes null when the parameter was never sent.
	var searchWord *string
	word, wordSent := c.GetQuery("word")
	if wordSent {
		searchWord = &word
	}

	products, err := h.searchService.SearchProducts(word, page)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	searchList := make([]gin.H, 0, len(products))
	for _, product := range products {
		searchList = append(searchList, gin.H{
			"name":            product.Name,
			"price":           product.Price,
			"main_image_url":  product.MainImageURL,
			"hover_image_url": product.HoverImageURL,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"search_list": searchList,
		"search_word": searchWord,
	})
}
