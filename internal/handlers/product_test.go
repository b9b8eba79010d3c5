// internal/handlers/product_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/greenbasket/catalog-api/internal/models"
)

type ProductTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine

	furniture models.Category
	kitchen   models.Category
	chairs    models.ProductType
	tables    models.ProductType
}

func (suite *ProductTestSuite) SetupSuite() {
	suite.db = setupTestDB(suite.T())
	suite.router = setupRouter(suite.db)

	suite.furniture = models.Category{Name: "furniture"}
	suite.kitchen = models.Category{Name: "kitchen"}
	suite.Require().NoError(suite.db.Create(&suite.furniture).Error)
	suite.Require().NoError(suite.db.Create(&suite.kitchen).Error)

	suite.chairs = models.ProductType{Name: "chairs"}
	suite.tables = models.ProductType{Name: "tables"}
	suite.Require().NoError(suite.db.Create(&suite.chairs).Error)
	suite.Require().NoError(suite.db.Create(&suite.tables).Error)

	products := []models.Product{
		{Name: "oak chair", Price: 120, ViewCount: 5, IsNew: true, CategoryID: suite.furniture.ID, ProductTypeID: suite.chairs.ID},
		{Name: "pine table", Price: 300, ViewCount: 50, IsNew: false, CategoryID: suite.furniture.ID, ProductTypeID: suite.tables.ID},
		{Name: "steel pan", Price: 45, ViewCount: 200, IsNew: false, CategoryID: suite.kitchen.ID, ProductTypeID: suite.tables.ID},
		{Name: "clay pot", Price: 30, ViewCount: 10, IsNew: true, CategoryID: suite.kitchen.ID, ProductTypeID: suite.chairs.ID},
	}
	for i := range products {
		createTestProduct(suite.T(), suite.db, products[i])
	}

	suite.Require().NoError(suite.db.Create(&models.Video{
		Name:        "spring lookbook",
		Description: "new arrivals",
		VideoURL:    "https://cdn.example.com/spring.mp4",
	}).Error)
}

func (suite *ProductTestSuite) getProducts(query string) map[string]interface{} {
	w := doRequest(suite.router, http.MethodGet, "/products"+query, "", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func cardNames(response map[string]interface{}) []string {
	cards := response["products_info"].([]interface{})
	names := make([]string, 0, len(cards))
	for _, c := range cards {
		names = append(names, c.(map[string]interface{})["name"].(string))
	}
	return names
}

func (suite *ProductTestSuite) TestDefaultSortNewestFirst() {
	response := suite.getProducts("")

	names := cardNames(response)
	suite.Require().Len(names, 4)
	// is_new products lead the listing
	assert.ElementsMatch(suite.T(), []string{"oak chair", "clay pot"}, names[:2])
	assert.ElementsMatch(suite.T(), []string{"pine table", "steel pan"}, names[2:])
}

func (suite *ProductTestSuite) TestSortByPriceDescending() {
	response := suite.getProducts("?sort=2")
	assert.Equal(suite.T(), []string{"pine table", "oak chair", "steel pan", "clay pot"}, cardNames(response))
}

func (suite *ProductTestSuite) TestSortByPriceAscending() {
	response := suite.getProducts("?sort=3")
	assert.Equal(suite.T(), []string{"clay pot", "steel pan", "oak chair", "pine table"}, cardNames(response))
}

func (suite *ProductTestSuite) TestCategoryFilter() {
	response := suite.getProducts("?category=" + idString(suite.kitchen.ID))

	assert.ElementsMatch(suite.T(), []string{"steel pan", "clay pot"}, cardNames(response))

	data := response["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(suite.T(), float64(2), data["total_products"])
	assert.Equal(suite.T(), float64(1), data["total_page"])
}

func (suite *ProductTestSuite) TestProductTypeFilterIsMembership() {
	query := "?product_type=" + idString(suite.chairs.ID) + "&product_type=" + idString(suite.tables.ID)
	response := suite.getProducts(query)
	assert.Len(suite.T(), cardNames(response), 4)
}

func (suite *ProductTestSuite) TestLimitIsAnEndIndex() {
	// offset=1 limit=3 returns rows [1, 3), not three rows
	response := suite.getProducts("?sort=3&offset=1&limit=3")
	assert.Equal(suite.T(), []string{"steel pan", "oak chair"}, cardNames(response))
}

func (suite *ProductTestSuite) TestLimitBelowOffsetReturnsEmpty() {
	response := suite.getProducts("?offset=3&limit=2")
	assert.Empty(suite.T(), response["products_info"])

	// total counts are unaffected by the slice
	data := response["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(suite.T(), float64(4), data["total_products"])
}

func (suite *ProductTestSuite) TestTotalPageIgnoresCallerLimit() {
	response := suite.getProducts("?limit=2")

	data := response["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(suite.T(), float64(1), data["total_page"])
}

func (suite *ProductTestSuite) TestMainPageModeAnonymizesCards() {
	response := suite.getProducts("?page=m")

	cards := response["products_info"].([]interface{})
	suite.Require().NotEmpty(cards)
	assert.LessOrEqual(suite.T(), len(cards), 10)

	// ordered by view count descending
	assert.Equal(suite.T(), "steel pan", cards[0].(map[string]interface{})["name"])

	for _, c := range cards {
		card := c.(map[string]interface{})
		assert.Nil(suite.T(), card["pk"])
		assert.Nil(suite.T(), card["view_count"])
		assert.Nil(suite.T(), card["is_new"])
	}
}

func (suite *ProductTestSuite) TestListingAlwaysIncludesCategoriesAndVideos() {
	response := suite.getProducts("?category=" + idString(suite.furniture.ID))

	// category_info is the full sidebar, unfiltered
	assert.Len(suite.T(), response["category_info"], 2)

	videos := response["video"].([]interface{})
	suite.Require().Len(videos, 1)
	video := videos[0].(map[string]interface{})
	assert.Equal(suite.T(), "spring lookbook", video["name"])
	assert.Equal(suite.T(), "https://cdn.example.com/spring.mp4", video["video_url"])
}

func TestProductSuite(t *testing.T) {
	suite.Run(t, new(ProductTestSuite))
}

type ProductDetailTestSuite struct {
	suite.Suite
	db      *gorm.DB
	router  *gin.Engine
	product *models.Product
}

func (suite *ProductDetailTestSuite) SetupSuite() {
	suite.db = setupTestDB(suite.T())
	suite.router = setupRouter(suite.db)

	category := models.Category{Name: "furniture"}
	productType := models.ProductType{Name: "chairs"}
	suite.Require().NoError(suite.db.Create(&category).Error)
	suite.Require().NoError(suite.db.Create(&productType).Error)

	suite.product = createTestProduct(suite.T(), suite.db, models.Product{
		Name:          "oak chair",
		Price:         120,
		Description:   "solid oak",
		MainImageURL:  "https://cdn.example.com/oak.jpg",
		CategoryID:    category.ID,
		ProductTypeID: productType.ID,
	})

	options := []models.Option{
		{Name: "gift wrap", Price: 5},
		{Name: "assembly", Price: 20},
	}
	suite.Require().NoError(suite.db.Create(&options).Error)
}

func (suite *ProductDetailTestSuite) TestDetailResponseShape() {
	w := doRequest(suite.router, http.MethodGet, "/products/"+idString(suite.product.ID), "", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))

	info := response["product_info"].([]interface{})
	suite.Require().Len(info, 1)
	product := info[0].(map[string]interface{})
	assert.Equal(suite.T(), "oak chair", product["name"])
	assert.Equal(suite.T(), float64(120), product["price"])
	assert.Equal(suite.T(), "solid oak", product["description"])

	// options are the global price list
	assert.Len(suite.T(), response["option_info"], 2)
}

func (suite *ProductDetailTestSuite) TestEachFetchIncrementsViewCount() {
	var before models.Product
	suite.Require().NoError(suite.db.First(&before, suite.product.ID).Error)

	for i := 0; i < 3; i++ {
		w := doRequest(suite.router, http.MethodGet, "/products/"+idString(suite.product.ID), "", nil)
		assert.Equal(suite.T(), http.StatusOK, w.Code)
	}

	var after models.Product
	suite.Require().NoError(suite.db.First(&after, suite.product.ID).Error)
	assert.Equal(suite.T(), before.ViewCount+3, after.ViewCount)
}

func (suite *ProductDetailTestSuite) TestMissingProductReturns404() {
	w := doRequest(suite.router, http.MethodGet, "/products/99999", "", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.JSONEq(suite.T(), `{"message":"VALUE_ERROR"}`, w.Body.String())
}

func TestProductDetailSuite(t *testing.T) {
	suite.Run(t, new(ProductDetailTestSuite))
}
