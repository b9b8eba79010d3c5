// internal/models/review.go
package models

type Review struct {
	BaseModel
	UserID    uint   `json:"user_id" gorm:"not null;index"`
	ProductID uint   `json:"product_id" gorm:"not null;index"`
	Comment   string `json:"comment" gorm:"type:text;not null"`
	Score     int    `json:"score" gorm:"not null"`

	// Relationships
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
