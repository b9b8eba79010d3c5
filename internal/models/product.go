// internal/models/product.go
package models

type Product struct {
	BaseModel
	Name          string `json:"name" gorm:"size:100;not null"`
	Price         int    `json:"price" gorm:"not null"`
	MainImageURL  string `json:"main_image_url" gorm:"size:2000"`
	HoverImageURL string `json:"hover_image_url" gorm:"size:2000"`
	Description   string `json:"description" gorm:"type:text"`
	ViewCount     int64  `json:"view_count" gorm:"default:0"`
	IsNew         bool   `json:"is_new" gorm:"default:false"`
	CategoryID    uint   `json:"category_id" gorm:"not null;index"`
	ProductTypeID uint   `json:"product_type_id" gorm:"not null;index"`

	// Relationships
	Category    Category    `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	ProductType ProductType `json:"product_type,omitempty" gorm:"foreignKey:ProductTypeID"`
	Reviews     []Review    `json:"reviews,omitempty" gorm:"foreignKey:ProductID"`
}

type Category struct {
	BaseModel
	Name string `json:"name" gorm:"size:50;not null"`
}

type ProductType struct {
	BaseModel
	Name string `json:"name" gorm:"size:50;not null"`
}

// Option is a global add-on price list, not scoped to a product.
type Option struct {
	BaseModel
	Name  string `json:"name" gorm:"size:100;not null"`
	Price int    `json:"price" gorm:"not null"`
}

type Video struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null"`
	Description string `json:"description" gorm:"type:text"`
	VideoURL    string `json:"video_url" gorm:"size:2000"`
}
