package model

import "github.com/google/uuid"

// FeatureGroup is a named set of product characteristics (e.g. Warranty).
type FeatureGroup struct {
	BaseModel
	Name     string         `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Position int            `json:"position"`
	Values   []FeatureValue `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"values" validate:"-"`
}

type FeatureValue struct {
	BaseModel
	GroupID  uuid.UUID `gorm:"type:uuid;not null;index" json:"group_id"`
	Name     string    `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Position int       `json:"position"`
}

// CategoryFeatureWeight is one row of a category's weight allocation.
// Type is "price" or "feature_group".
type CategoryFeatureWeight struct {
	BaseModel
	CategoryID     uuid.UUID     `gorm:"type:uuid;not null;index" json:"category_id"`
	Type           string        `gorm:"type:varchar(20);not null" json:"type"`
	FeatureGroupID *uuid.UUID    `gorm:"type:uuid;index" json:"feature_group_id,omitempty"`
	FeatureGroup   *FeatureGroup `json:"feature_group,omitempty"`
	Weight         int           `gorm:"not null" json:"weight"`
	Position       int           `json:"position"`
}
