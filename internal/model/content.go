package model

import (
	"time"

	"github.com/google/uuid"
)

type BlogCategory struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Slug string `gorm:"type:varchar(255);uniqueIndex:idx_blog_categories_slug,where:deleted_at IS NULL;not null" json:"slug" validate:"omitempty,slug"`
}

func (c *BlogCategory) SlugSource() string { return c.Name }
func (c *BlogCategory) GetSlug() string { return c.Slug }
func (c *BlogCategory) SetSlug(s string) { c.Slug = s }

type BlogAuthor struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null" json:"name" validate:"required,max=255"`
	Slug string `gorm:"type:varchar(255);uniqueIndex:idx_blog_authors_slug,where:deleted_at IS NULL;not null" json:"slug" validate:"omitempty,slug"`
	Bio  string `gorm:"type:text" json:"bio"`
}

func (a *BlogAuthor) SlugSource() string { return a.Name }
func (a *BlogAuthor) GetSlug() string { return a.Slug }
func (a *BlogAuthor) SetSlug(s string) { a.Slug = s }

type BlogPost struct {
	BaseModel
	Title       string     `gorm:"type:varchar(255);not null" json:"title" validate:"required,max=255"`
	Slug        string     `gorm:"type:varchar(255);uniqueIndex:idx_blog_posts_slug,where:deleted_at IS NULL;not null" json:"slug" validate:"omitempty,slug"`
	Excerpt     string     `gorm:"type:text" json:"excerpt"`
	Content     string     `gorm:"type:text" json:"content"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	AuthorID    *uuid.UUID `gorm:"type:uuid;index" json:"author_id,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

func (p *BlogPost) SlugSource() string { return p.Title }
func (p *BlogPost) GetSlug() string { return p.Slug }
func (p *BlogPost) SetSlug(s string) { p.Slug = s }

// OrderStatus is a configurable step of the order lifecycle.
type OrderStatus struct {
	BaseModel
	Name     string `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Code     string `gorm:"type:varchar(50);uniqueIndex:idx_order_statuses_code,where:deleted_at IS NULL;not null" json:"code" validate:"required,max=50"`
	Color    string `gorm:"type:varchar(7)" json:"color" validate:"omitempty,hexcolor"`
	Position int    `json:"position"`
	IsFinal  bool   `json:"is_final"`
}

type EmailTemplate struct {
	BaseModel
	Code    string `gorm:"type:varchar(100);uniqueIndex:idx_email_templates_code,where:deleted_at IS NULL;not null" json:"code" validate:"required,max=100"`
	Name    string `gorm:"type:varchar(255)" json:"name"`
	Subject string `gorm:"type:varchar(255);not null" json:"subject" validate:"required,max=255"`
	Body    string `gorm:"type:text;not null" json:"body" validate:"required"`
	Active  bool   `json:"active"`
}

// ImageSize is a resize preset applied to uploaded images.
type ImageSize struct {
	BaseModel
	Name   string `gorm:"type:varchar(100);uniqueIndex:idx_image_sizes_name,where:deleted_at IS NULL;not null" json:"name" validate:"required,max=100"`
	Width  int    `gorm:"not null" json:"width" validate:"gt=0,lte=10000"`
	Height int    `gorm:"not null" json:"height" validate:"gt=0,lte=10000"`
	Crop   bool   `json:"crop"`
}
