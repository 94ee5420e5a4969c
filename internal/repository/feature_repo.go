package repository

import (
	"time"

	"go-catalog-admin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FeatureRepository interface {
	CreateGroup(group *model.FeatureGroup) error
	FindAllGroups() ([]model.FeatureGroup, error)
	FindGroupByID(id uuid.UUID) (*model.FeatureGroup, error)
	CountGroupsByIDs(ids []uuid.UUID) (int64, error)
	UpdateGroup(group *model.FeatureGroup) error
	DeleteGroup(id uuid.UUID, deletedBy string) error

	CreateValue(value *model.FeatureValue) error
	FindValueByID(id uuid.UUID) (*model.FeatureValue, error)
	UpdateValue(value *model.FeatureValue) error
	DeleteValue(id uuid.UUID, deletedBy string) error
}

type featureRepo struct {
	db *gorm.DB
}

func NewFeatureRepo(db *gorm.DB) FeatureRepository {
	return &featureRepo{db}
}

func (r *featureRepo) CreateGroup(group *model.FeatureGroup) error {
	return r.db.Create(group).Error
}

func (r *featureRepo) FindAllGroups() ([]model.FeatureGroup, error) {
	var groups []model.FeatureGroup
	err := r.db.Preload("Values", orderedValues).Order("position ASC, name ASC").Find(&groups).Error
	return groups, err
}

func (r *featureRepo) FindGroupByID(id uuid.UUID) (*model.FeatureGroup, error) {
	var group model.FeatureGroup
	if err := r.db.Preload("Values", orderedValues).First(&group, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *featureRepo) CountGroupsByIDs(ids []uuid.UUID) (int64, error) {
	var count int64
	if len(ids) == 0 {
		return 0, nil
	}
	err := r.db.Model(&model.FeatureGroup{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (r *featureRepo) UpdateGroup(group *model.FeatureGroup) error {
	return r.db.Omit(clause.Associations).Save(group).Error
}

// DeleteGroup soft deletes the group, its values and drops it from every
// category weight allocation.
func (r *featureRepo) DeleteGroup(id uuid.UUID, deletedBy string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := softDelete[model.FeatureGroup](tx, id, deletedBy); err != nil {
			return err
		}
		if err := tx.Model(&model.FeatureValue{}).Where("group_id = ?", id).
			Updates(map[string]interface{}{"deleted_by": deletedBy, "deleted_at": time.Now()}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("feature_group_id = ?", id).Delete(&model.CategoryFeatureWeight{}).Error
	})
}

func (r *featureRepo) CreateValue(value *model.FeatureValue) error {
	return r.db.Create(value).Error
}

func (r *featureRepo) FindValueByID(id uuid.UUID) (*model.FeatureValue, error) {
	var value model.FeatureValue
	if err := r.db.First(&value, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &value, nil
}

func (r *featureRepo) UpdateValue(value *model.FeatureValue) error {
	return r.db.Save(value).Error
}

func (r *featureRepo) DeleteValue(id uuid.UUID, deletedBy string) error {
	return softDelete[model.FeatureValue](r.db, id, deletedBy)
}
