package repository

import (
	"time"

	"go-catalog-admin/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttributeRepository interface {
	CreateGroup(group *model.AttributeGroup) error
	FindAllGroups() ([]model.AttributeGroup, error)
	FindGroupByID(id uuid.UUID) (*model.AttributeGroup, error)
	FindGroupsByIDs(ids []uuid.UUID) ([]model.AttributeGroup, error)
	UpdateGroup(group *model.AttributeGroup) error
	DeleteGroup(id uuid.UUID, deletedBy string) error

	CreateValue(value *model.AttributeValue) error
	FindValueByID(id uuid.UUID) (*model.AttributeValue, error)
	UpdateValue(value *model.AttributeValue) error
	DeleteValue(id uuid.UUID, deletedBy string) error
}

type attributeRepo struct {
	db *gorm.DB
}

func NewAttributeRepo(db *gorm.DB) AttributeRepository {
	return &attributeRepo{db}
}

func orderedValues(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, created_at ASC")
}

func (r *attributeRepo) CreateGroup(group *model.AttributeGroup) error {
	return r.db.Create(group).Error
}

func (r *attributeRepo) FindAllGroups() ([]model.AttributeGroup, error) {
	var groups []model.AttributeGroup
	err := r.db.Preload("Values", orderedValues).Order("position ASC, name ASC").Find(&groups).Error
	return groups, err
}

func (r *attributeRepo) FindGroupByID(id uuid.UUID) (*model.AttributeGroup, error) {
	var group model.AttributeGroup
	if err := r.db.Preload("Values", orderedValues).First(&group, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *attributeRepo) FindGroupsByIDs(ids []uuid.UUID) ([]model.AttributeGroup, error) {
	var groups []model.AttributeGroup
	if len(ids) == 0 {
		return groups, nil
	}
	err := r.db.Preload("Values", orderedValues).Where("id IN ?", ids).Find(&groups).Error
	return groups, err
}

func (r *attributeRepo) UpdateGroup(group *model.AttributeGroup) error {
	return r.db.Omit(clause.Associations).Save(group).Error
}

// DeleteGroup soft deletes the group together with its values.
func (r *attributeRepo) DeleteGroup(id uuid.UUID, deletedBy string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := softDelete[model.AttributeGroup](tx, id, deletedBy); err != nil {
			return err
		}
		return tx.Model(&model.AttributeValue{}).Where("group_id = ?", id).
			Updates(map[string]interface{}{"deleted_by": deletedBy, "deleted_at": time.Now()}).Error
	})
}

func (r *attributeRepo) CreateValue(value *model.AttributeValue) error {
	return r.db.Create(value).Error
}

func (r *attributeRepo) FindValueByID(id uuid.UUID) (*model.AttributeValue, error) {
	var value model.AttributeValue
	if err := r.db.First(&value, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &value, nil
}

func (r *attributeRepo) UpdateValue(value *model.AttributeValue) error {
	return r.db.Save(value).Error
}

func (r *attributeRepo) DeleteValue(id uuid.UUID, deletedBy string) error {
	return softDelete[model.AttributeValue](r.db, id, deletedBy)
}
