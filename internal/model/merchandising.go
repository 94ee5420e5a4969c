package model

import "github.com/google/uuid"

type Wishlist struct {
	BaseModel
	CustomerRef string    `gorm:"type:varchar(255);not null;index" json:"customer_ref" validate:"required,max=255"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
}

type ProductQuestion struct {
	BaseModel
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	AuthorName string    `gorm:"type:varchar(255)" json:"author_name"`
	Question   string    `gorm:"type:text;not null" json:"question" validate:"required"`
	Answer     string    `gorm:"type:text" json:"answer"`
	Published  bool      `json:"published"`
}

type Review struct {
	BaseModel
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	AuthorName string    `gorm:"type:varchar(255)" json:"author_name"`
	Rating     int       `gorm:"not null" json:"rating" validate:"required,min=1,max=5"`
	Title      string    `gorm:"type:varchar(255)" json:"title"`
	Body       string    `gorm:"type:text" json:"body"`
	Approved   bool      `json:"approved"`
}

// SimilarProductsConfig controls how "similar products" are picked for a
// category. A nil CategoryID is the store-wide default.
type SimilarProductsConfig struct {
	BaseModel
	CategoryID        *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_similar_products_configs_category_id,where:deleted_at IS NULL" json:"category_id,omitempty"`
	UsePrice          bool       `json:"use_price"`
	PriceRangePercent int        `json:"price_range_percent" validate:"gte=0,lte=100"`
	UseBrand          bool       `json:"use_brand"`
	UseFeatures       bool       `json:"use_features"`
	MaxItems          int        `json:"max_items" validate:"gte=1,lte=50"`
}
