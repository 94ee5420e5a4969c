package repository

import (
	"go-catalog-admin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeatureWeightRepository interface {
	FindByCategory(categoryID uuid.UUID) ([]model.CategoryFeatureWeight, error)
	Replace(categoryID uuid.UUID, weights []model.CategoryFeatureWeight) error
}

type featureWeightRepo struct {
	db *gorm.DB
}

func NewFeatureWeightRepo(db *gorm.DB) FeatureWeightRepository {
	return &featureWeightRepo{db}
}

func (r *featureWeightRepo) FindByCategory(categoryID uuid.UUID) ([]model.CategoryFeatureWeight, error) {
	var weights []model.CategoryFeatureWeight
	err := r.db.Preload("FeatureGroup").
		Where("category_id = ?", categoryID).
		Order("position ASC").
		Find(&weights).Error
	return weights, err
}

// Replace swaps the whole allocation of a category atomically.
func (r *featureWeightRepo) Replace(categoryID uuid.UUID, weights []model.CategoryFeatureWeight) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("category_id = ?", categoryID).Delete(&model.CategoryFeatureWeight{}).Error; err != nil {
			return err
		}
		if len(weights) == 0 {
			return nil
		}
		return tx.Omit("FeatureGroup").Create(&weights).Error
	})
}
