package service

import (
	"fmt"

	"go-catalog-admin/internal/metrics"
	"go-catalog-admin/internal/model"
	"go-catalog-admin/internal/repository"
	"go-catalog-admin/internal/ws"
	"go-catalog-admin/pkg/slug"
	"go-catalog-admin/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResourceService implements create/read/update/delete for the admin
// resources that carry no extra business rules beyond validation, slugs and
// unique columns.
type ResourceService[T any] interface {
	List(page repository.Page) ([]T, int64, error)
	Get(id uuid.UUID) (*T, error)
	Create(entity *T, actor string) error
	Update(id uuid.UUID, entity *T, actor string) (*T, error)
	Delete(id uuid.UUID, actor string) error
}

// ResourceOptions describes one resource.
type ResourceOptions[T any] struct {
	// Name is the singular label used in errors and events, e.g. "brand".
	Name string
	// Unique maps a column to the field holding its value. Sluggable models
	// get "slug" added automatically.
	Unique map[string]func(*T) any
	// BeforeSave runs after defaults are filled and before validation.
	BeforeSave func(entity *T, creating bool) error
}

type Deps struct {
	Log     *zap.Logger
	Hub     *ws.Hub
	Metrics *metrics.Metrics
}

func (d Deps) logger() *zap.Logger {
	if d.Log == nil {
		return zap.NewNop()
	}
	return d.Log
}

func (d Deps) publish(action, entity string, id uuid.UUID, actor, message string, data interface{}) {
	d.Metrics.EntityWrite(entity, action)
	d.Hub.Publish(ws.Event{
		Action:  action,
		Entity:  entity,
		ID:      id.String(),
		Actor:   actor,
		Message: message,
		Data:    data,
	})
}

type resourceService[T any] struct {
	repo repository.CRUDRepository[T]
	opts ResourceOptions[T]
	deps Deps
}

func NewResourceService[T any](repo repository.CRUDRepository[T], opts ResourceOptions[T], deps Deps) ResourceService[T] {
	if opts.Unique == nil {
		opts.Unique = map[string]func(*T) any{}
	}
	if _, ok := any(new(T)).(model.Sluggable); ok {
		if _, set := opts.Unique["slug"]; !set {
			opts.Unique["slug"] = func(e *T) any { return any(e).(model.Sluggable).GetSlug() }
		}
	}
	return &resourceService[T]{repo: repo, opts: opts, deps: deps}
}

func (s *resourceService[T]) List(page repository.Page) ([]T, int64, error) {
	items, total, err := s.repo.FindAll(page)
	if err != nil {
		return nil, 0, storeErr(s.opts.Name, err)
	}
	return items, total, nil
}

func (s *resourceService[T]) Get(id uuid.UUID) (*T, error) {
	entity, err := s.repo.FindByID(id)
	if err != nil {
		return nil, storeErr(s.opts.Name, err)
	}
	return entity, nil
}

func (s *resourceService[T]) Create(entity *T, actor string) error {
	if err := s.prepare(entity, nil, true); err != nil {
		return err
	}

	base := any(entity).(model.Entity).Base()
	base.ID = uuid.Nil
	base.CreatedBy = actor
	base.UpdatedBy = actor

	if err := s.repo.Create(entity); err != nil {
		return storeErr(s.opts.Name, err)
	}

	s.deps.logger().Info("resource created", zap.String("resource", s.opts.Name), zap.Stringer("id", base.ID), zap.String("actor", actor))
	s.deps.publish("created", s.opts.Name, base.ID, actor, fmt.Sprintf("%s created %s", actor, s.opts.Name), entity)
	return nil
}

func (s *resourceService[T]) Update(id uuid.UUID, entity *T, actor string) (*T, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, storeErr(s.opts.Name, err)
	}

	old := any(existing).(model.Entity).Base()
	base := any(entity).(model.Entity).Base()
	base.ID = old.ID
	base.CreatedAt = old.CreatedAt
	base.CreatedBy = old.CreatedBy
	base.UpdatedBy = actor

	if err := s.prepare(entity, &old.ID, false); err != nil {
		return nil, err
	}
	if err := s.repo.Update(entity); err != nil {
		return nil, storeErr(s.opts.Name, err)
	}

	s.deps.publish("updated", s.opts.Name, id, actor, fmt.Sprintf("%s updated %s", actor, s.opts.Name), entity)
	return s.Get(id)
}

func (s *resourceService[T]) Delete(id uuid.UUID, actor string) error {
	if err := s.repo.Delete(id, actor); err != nil {
		return storeErr(s.opts.Name, err)
	}
	s.deps.publish("deleted", s.opts.Name, id, actor, fmt.Sprintf("%s deleted %s", actor, s.opts.Name), nil)
	return nil
}

// prepare fills the slug, runs the hook, validates and checks unique columns.
func (s *resourceService[T]) prepare(entity *T, excludeID *uuid.UUID, creating bool) error {
	if sl, ok := any(entity).(model.Sluggable); ok {
		sl.SetSlug(slug.FromName(sl.GetSlug(), sl.SlugSource()))
	}
	if s.opts.BeforeSave != nil {
		if err := s.opts.BeforeSave(entity, creating); err != nil {
			return err
		}
	}
	if err := validator.Check(entity); err != nil {
		return err
	}
	if sl, ok := any(entity).(model.Sluggable); ok && sl.GetSlug() == "" {
		return invalid("slug cannot be generated from this name")
	}
	for column, value := range s.opts.Unique {
		taken, err := s.repo.ExistsBy(column, value(entity), excludeID)
		if err != nil {
			return storeErr(s.opts.Name, err)
		}
		if taken {
			return duplicate(s.opts.Name, column)
		}
	}
	return nil
}
