package model

import "github.com/google/uuid"

// AttributeGroup is a set of values used to build purchasable variants (e.g. Color).
type AttributeGroup struct {
	BaseModel
	Name     string           `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Position int              `json:"position"`
	Values   []AttributeValue `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"values" validate:"-"`
}

type AttributeValue struct {
	BaseModel
	GroupID  uuid.UUID `gorm:"type:uuid;not null;index" json:"group_id"`
	Name     string    `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Position int       `json:"position"`
}

// ProductCombination is one stored variant of a product.
type ProductCombination struct {
	BaseModel
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	SKU          string    `gorm:"type:varchar(80);uniqueIndex:idx_product_combinations_sku,where:deleted_at IS NULL;not null" json:"sku" validate:"required,max=80"`
	Name         string    `gorm:"type:varchar(512);not null" json:"name"`
	PriceImpact  string    `gorm:"type:varchar(32);default:'0'" json:"price_impact" validate:"omitempty,numeric"`
	WeightImpact string    `gorm:"type:varchar(32);default:'0'" json:"weight_impact" validate:"omitempty,numeric"`
	Quantity     int       `json:"quantity" validate:"gte=0"`
	IsDefault    bool      `json:"is_default"`
	Position     int       `json:"position"`

	Attributes []CombinationAttribute `gorm:"foreignKey:CombinationID;constraint:OnDelete:CASCADE" json:"attributes" validate:"-"`
}

// AttributeValueIDs returns the value ids in group order.
func (c *ProductCombination) AttributeValueIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(c.Attributes))
	for i, a := range c.Attributes {
		ids[i] = a.AttributeValueID
	}
	return ids
}

type CombinationAttribute struct {
	CombinationID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"combination_id"`
	AttributeValueID uuid.UUID `gorm:"type:uuid;primaryKey" json:"attribute_value_id"`
	Position         int       `json:"position"`
}
