package model

import "github.com/google/uuid"

// Sluggable models get a slug generated from their name when none is sent.
type Sluggable interface {
	SlugSource() string
	GetSlug() string
	SetSlug(string)
}

type Product struct {
	BaseModel
	SKU         string `gorm:"type:varchar(64);uniqueIndex:idx_products_sku,where:deleted_at IS NULL;not null" json:"sku" validate:"required,max=64"`
	Name        string `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Slug        string `gorm:"type:varchar(255);uniqueIndex:idx_products_slug,where:deleted_at IS NULL;not null" json:"slug" validate:"omitempty,slug"`
	Description string `gorm:"type:text" json:"description"`
	Price       string `gorm:"type:varchar(32);default:'0'" json:"price" validate:"omitempty,numeric"`
	Weight      string `gorm:"type:varchar(32);default:'0'" json:"weight" validate:"omitempty,numeric"`
	Quantity    int    `json:"quantity" validate:"gte=0"`
	Active      bool   `json:"active"`

	CategoryID *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category   *Category  `json:"category,omitempty" validate:"-"`
	BrandID    *uuid.UUID `gorm:"type:uuid;index" json:"brand_id,omitempty"`
	Brand      *Brand     `json:"brand,omitempty" validate:"-"`
	SupplierID *uuid.UUID `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Supplier   *Supplier  `json:"supplier,omitempty" validate:"-"`

	Combinations []ProductCombination `gorm:"constraint:OnDelete:CASCADE" json:"combinations,omitempty" validate:"-"`
}

func (p *Product) SlugSource() string { return p.Name }
func (p *Product) GetSlug() string { return p.Slug }
func (p *Product) SetSlug(s string) { p.Slug = s }

type Category struct {
	BaseModel
	Name        string     `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Slug        string     `gorm:"type:varchar(255);uniqueIndex:idx_categories_slug,where:deleted_at IS NULL;not null" json:"slug" validate:"omitempty,slug"`
	Description string     `gorm:"type:text" json:"description"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	Position    int        `json:"position"`
	Active      bool       `json:"active"`

	FeatureWeights []CategoryFeatureWeight `gorm:"constraint:OnDelete:CASCADE" json:"feature_weights,omitempty" validate:"-"`
}

func (c *Category) SlugSource() string { return c.Name }
func (c *Category) GetSlug() string { return c.Slug }
func (c *Category) SetSlug(s string) { c.Slug = s }

type Brand struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Slug        string `gorm:"type:varchar(255);uniqueIndex:idx_brands_slug,where:deleted_at IS NULL;not null" json:"slug" validate:"omitempty,slug"`
	Description string `gorm:"type:text" json:"description"`
	Website     string `gorm:"type:varchar(255)" json:"website" validate:"omitempty,url"`
}

func (b *Brand) SlugSource() string { return b.Name }
func (b *Brand) GetSlug() string { return b.Slug }
func (b *Brand) SetSlug(s string) { b.Slug = s }

type Supplier struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Slug    string `gorm:"type:varchar(255);uniqueIndex:idx_suppliers_slug,where:deleted_at IS NULL;not null" json:"slug" validate:"omitempty,slug"`
	Email   string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Phone   string `gorm:"type:varchar(32)" json:"phone"`
	Address string `gorm:"type:text" json:"address"`
}

func (s *Supplier) SlugSource() string { return s.Name }
func (s *Supplier) GetSlug() string { return s.Slug }
func (s *Supplier) SetSlug(v string) { s.Slug = v }

type Warehouse struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Code    string `gorm:"type:varchar(50);uniqueIndex:idx_warehouses_code,where:deleted_at IS NULL;not null" json:"code" validate:"required,max=50"`
	Address string `gorm:"type:text" json:"address"`
	Active  bool   `json:"active"`
}
