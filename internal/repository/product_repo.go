package repository

import (
	"go-catalog-admin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductFilter struct {
	CategoryID *uuid.UUID
	BrandID    *uuid.UUID
	Search     string
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(filter ProductFilter, page Page) ([]model.Product, int64, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	FindBySlug(slug string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID, deletedBy string) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Omit(clause.Associations).Create(product).Error
}

func (r *productRepo) FindAll(filter ProductFilter, page Page) ([]model.Product, int64, error) {
	var (
		products []model.Product
		total    int64
	)

	q := r.db.Model(&model.Product{})
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.BrandID != nil {
		q = q.Where("brand_id = ?", *filter.BrandID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR sku LIKE ?", like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := page.apply(q.Preload("Category").Preload("Brand").Order("created_at DESC")).Find(&products).Error
	return products, total, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.
		Preload("Category").
		Preload("Brand").
		Preload("Supplier").
		Preload("Combinations", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Combinations.Attributes", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "sku = ?", sku).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindBySlug(slug string) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Omit(clause.Associations).Save(product).Error
}

// Delete soft deletes the product and removes its combinations for good so
// their SKUs can be generated again.
func (r *productRepo) Delete(id uuid.UUID, deletedBy string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := softDelete[model.Product](tx, id, deletedBy); err != nil {
			return err
		}
		var comboIDs []uuid.UUID
		if err := tx.Unscoped().Model(&model.ProductCombination{}).
			Where("product_id = ?", id).
			Pluck("id", &comboIDs).Error; err != nil {
			return err
		}
		if len(comboIDs) == 0 {
			return nil
		}
		if err := tx.Where("combination_id IN ?", comboIDs).Delete(&model.CombinationAttribute{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("id IN ?", comboIDs).Delete(&model.ProductCombination{}).Error
	})
}
