package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Page limits a listing. Zero values mean "no limit" / "from the start".
type Page struct {
	Limit  int
	Offset int
}

func (p Page) apply(db *gorm.DB) *gorm.DB {
	if p.Limit > 0 {
		db = db.Limit(p.Limit)
	}
	if p.Offset > 0 {
		db = db.Offset(p.Offset)
	}
	return db
}

// CRUDRepository is the storage contract shared by the simple admin resources
// (brands, suppliers, blog posts, order statuses ...).
type CRUDRepository[T any] interface {
	Create(entity *T) error
	FindAll(page Page) ([]T, int64, error)
	FindByID(id uuid.UUID) (*T, error)
	Update(entity *T) error
	Delete(id uuid.UUID, deletedBy string) error
	ExistsBy(column string, value any, excludeID *uuid.UUID) (bool, error)
}

type crudRepo[T any] struct {
	db    *gorm.DB
	order string
}

// NewCRUDRepo returns a gorm backed repository. order is the ORDER BY used
// for listings, e.g. "position ASC, name ASC".
func NewCRUDRepo[T any](db *gorm.DB, order string) CRUDRepository[T] {
	if order == "" {
		order = "created_at DESC"
	}
	return &crudRepo[T]{db: db, order: order}
}

func (r *crudRepo[T]) Create(entity *T) error {
	return r.db.Omit(clause.Associations).Create(entity).Error
}

func (r *crudRepo[T]) FindAll(page Page) ([]T, int64, error) {
	var (
		items []T
		total int64
	)
	if err := r.db.Model(new(T)).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := page.apply(r.db.Order(r.order)).Find(&items).Error
	return items, total, err
}

func (r *crudRepo[T]) FindByID(id uuid.UUID) (*T, error) {
	var entity T
	if err := r.db.First(&entity, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *crudRepo[T]) Update(entity *T) error {
	return r.db.Omit(clause.Associations).Save(entity).Error
}

func (r *crudRepo[T]) Delete(id uuid.UUID, deletedBy string) error {
	return softDelete[T](r.db, id, deletedBy)
}

func (r *crudRepo[T]) ExistsBy(column string, value any, excludeID *uuid.UUID) (bool, error) {
	var count int64
	q := r.db.Model(new(T)).Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// softDelete stamps deleted_by and soft deletes the row in one transaction.
func softDelete[T any](db *gorm.DB, id uuid.UUID, deletedBy string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(new(T)).Where("id = ?", id).Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"updated_at": time.Now(),
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Delete(new(T), "id = ?", id).Error
	})
}
