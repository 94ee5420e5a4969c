package repository

import (
	"go-catalog-admin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CombinationRepository interface {
	FindByProduct(productID uuid.UUID) ([]model.ProductCombination, error)
	FindByID(id uuid.UUID) (*model.ProductCombination, error)
	CountSKUsOutsideProduct(productID uuid.UUID, skus []string) (int64, error)
	Replace(productID uuid.UUID, combinations []model.ProductCombination) error
	Update(combination *model.ProductCombination) error
	SetDefault(productID, id uuid.UUID, updatedBy string) error
	Delete(id uuid.UUID) error
}

type combinationRepo struct {
	db *gorm.DB
}

func NewCombinationRepo(db *gorm.DB) CombinationRepository {
	return &combinationRepo{db}
}

func withAttributes(db *gorm.DB) *gorm.DB {
	return db.Preload("Attributes", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") })
}

func (r *combinationRepo) FindByProduct(productID uuid.UUID) ([]model.ProductCombination, error) {
	var combinations []model.ProductCombination
	err := withAttributes(r.db).
		Where("product_id = ?", productID).
		Order("position ASC").
		Find(&combinations).Error
	return combinations, err
}

func (r *combinationRepo) FindByID(id uuid.UUID) (*model.ProductCombination, error) {
	var combination model.ProductCombination
	if err := withAttributes(r.db).First(&combination, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &combination, nil
}

// CountSKUsOutsideProduct counts combinations of other products already using
// one of skus.
func (r *combinationRepo) CountSKUsOutsideProduct(productID uuid.UUID, skus []string) (int64, error) {
	var count int64
	if len(skus) == 0 {
		return 0, nil
	}
	err := r.db.Model(&model.ProductCombination{}).
		Where("product_id <> ? AND sku IN ?", productID, skus).
		Count(&count).Error
	return count, err
}

// Replace drops every stored combination of the product and inserts the new
// set in a single transaction. Old rows are removed for good so their SKUs
// can be reused.
func (r *combinationRepo) Replace(productID uuid.UUID, combinations []model.ProductCombination) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var oldIDs []uuid.UUID
		if err := tx.Unscoped().Model(&model.ProductCombination{}).
			Where("product_id = ?", productID).
			Pluck("id", &oldIDs).Error; err != nil {
			return err
		}
		if len(oldIDs) > 0 {
			if err := tx.Where("combination_id IN ?", oldIDs).Delete(&model.CombinationAttribute{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("id IN ?", oldIDs).Delete(&model.ProductCombination{}).Error; err != nil {
				return err
			}
		}
		if len(combinations) == 0 {
			return nil
		}
		return tx.Create(&combinations).Error
	})
}

func (r *combinationRepo) Update(combination *model.ProductCombination) error {
	return r.db.Omit(clause.Associations).Save(combination).Error
}

// SetDefault marks id as the only default combination of the product.
func (r *combinationRepo) SetDefault(productID, id uuid.UUID, updatedBy string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ProductCombination{}).
			Where("product_id = ? AND id <> ?", productID, id).
			Updates(map[string]interface{}{"is_default": false, "updated_by": updatedBy}).Error; err != nil {
			return err
		}
		res := tx.Model(&model.ProductCombination{}).
			Where("product_id = ? AND id = ?", productID, id).
			Updates(map[string]interface{}{"is_default": true, "updated_by": updatedBy})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *combinationRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("combination_id = ?", id).Delete(&model.CombinationAttribute{}).Error; err != nil {
			return err
		}
		res := tx.Unscoped().Delete(&model.ProductCombination{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
