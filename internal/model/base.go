package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel handles ID (UUID) and standard Audit Trails
type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"` // Soft Delete support

	// Audit actor tracking
	CreatedBy string `gorm:"type:varchar(255)" json:"created_by"`
	UpdatedBy string `gorm:"type:varchar(255)" json:"updated_by"`
	DeletedBy string `gorm:"type:varchar(255)" json:"deleted_by,omitempty"`
}

// BeforeCreate assigns a UUID unless the caller already chose one.
func (base *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return
}

// Entity is implemented by every model embedding BaseModel.
type Entity interface {
	Base() *BaseModel
}

func (base *BaseModel) Base() *BaseModel {
	return base
}

// All lists every model for AutoMigrate, parents before children.
func All() []any {
	return []any{
		&Category{}, &Brand{}, &Supplier{}, &Warehouse{},
		&AttributeGroup{}, &AttributeValue{},
		&FeatureGroup{}, &FeatureValue{},
		&Product{}, &ProductCombination{}, &CombinationAttribute{},
		&CategoryFeatureWeight{},
		&BlogCategory{}, &BlogAuthor{}, &BlogPost{},
		&OrderStatus{}, &EmailTemplate{}, &ImageSize{},
		&Wishlist{}, &ProductQuestion{}, &Review{}, &SimilarProductsConfig{},
	}
}
