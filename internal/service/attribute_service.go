package service

import (
	"fmt"
	"strings"

	"go-catalog-admin/internal/cache"
	"go-catalog-admin/internal/config"
	"go-catalog-admin/internal/model"
	"go-catalog-admin/internal/repository"
	"go-catalog-admin/pkg/validator"

	"github.com/google/uuid"
)

// GroupRequest creates or renames an attribute or feature group. Values is
// only read on create and seeds the group with named values.
type GroupRequest struct {
	Name     string   `json:"name" validate:"required,max=255"`
	Position int      `json:"position"`
	Values   []string `json:"values" validate:"dive,required,max=255"`
}

type ValueRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Position int    `json:"position"`
}

type AttributeService interface {
	ListGroups() ([]model.AttributeGroup, error)
	GetGroup(id uuid.UUID) (*model.AttributeGroup, error)
	CreateGroup(req *GroupRequest, actor string) (*model.AttributeGroup, error)
	UpdateGroup(id uuid.UUID, req *GroupRequest, actor string) (*model.AttributeGroup, error)
	DeleteGroup(id uuid.UUID, actor string) error
	AddValue(groupID uuid.UUID, req *ValueRequest, actor string) (*model.AttributeValue, error)
	UpdateValue(id uuid.UUID, req *ValueRequest, actor string) (*model.AttributeValue, error)
	DeleteValue(id uuid.UUID, actor string) error
}

type attributeService struct {
	repo  repository.AttributeRepository
	cache cache.AttributeCache
	deps  Deps
}

func NewAttributeService(repo repository.AttributeRepository, c cache.AttributeCache, deps Deps) AttributeService {
	if c == nil {
		c = cache.NewAttributeCache(config.RedisConfig{}, nil)
	}
	return &attributeService{repo: repo, cache: c, deps: deps}
}

func (s *attributeService) ListGroups() ([]model.AttributeGroup, error) {
	if groups, ok := s.cache.GetGroups(); ok {
		return groups, nil
	}
	groups, err := s.repo.FindAllGroups()
	if err != nil {
		return nil, storeErr("attribute group", err)
	}
	s.cache.SetGroups(groups)
	return groups, nil
}

func (s *attributeService) GetGroup(id uuid.UUID) (*model.AttributeGroup, error) {
	group, err := s.repo.FindGroupByID(id)
	if err != nil {
		return nil, storeErr("attribute group", err)
	}
	return group, nil
}

func (s *attributeService) CreateGroup(req *GroupRequest, actor string) (*model.AttributeGroup, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	group := &model.AttributeGroup{Name: strings.TrimSpace(req.Name), Position: req.Position}
	group.CreatedBy = actor
	group.UpdatedBy = actor
	for i, name := range req.Values {
		value := model.AttributeValue{Name: strings.TrimSpace(name), Position: i}
		value.CreatedBy = actor
		value.UpdatedBy = actor
		group.Values = append(group.Values, value)
	}

	if err := s.repo.CreateGroup(group); err != nil {
		return nil, storeErr("attribute group", err)
	}
	s.changed("created", "attribute_group", group.ID, actor, group.Name)
	return group, nil
}

func (s *attributeService) UpdateGroup(id uuid.UUID, req *GroupRequest, actor string) (*model.AttributeGroup, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}
	group, err := s.repo.FindGroupByID(id)
	if err != nil {
		return nil, storeErr("attribute group", err)
	}

	group.Name = strings.TrimSpace(req.Name)
	group.Position = req.Position
	group.UpdatedBy = actor
	if err := s.repo.UpdateGroup(group); err != nil {
		return nil, storeErr("attribute group", err)
	}
	s.changed("updated", "attribute_group", group.ID, actor, group.Name)
	return group, nil
}

func (s *attributeService) DeleteGroup(id uuid.UUID, actor string) error {
	if err := s.repo.DeleteGroup(id, actor); err != nil {
		return storeErr("attribute group", err)
	}
	s.changed("deleted", "attribute_group", id, actor, "")
	return nil
}

func (s *attributeService) AddValue(groupID uuid.UUID, req *ValueRequest, actor string) (*model.AttributeValue, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindGroupByID(groupID); err != nil {
		return nil, storeErr("attribute group", err)
	}

	value := &model.AttributeValue{GroupID: groupID, Name: strings.TrimSpace(req.Name), Position: req.Position}
	value.CreatedBy = actor
	value.UpdatedBy = actor
	if err := s.repo.CreateValue(value); err != nil {
		return nil, storeErr("attribute value", err)
	}
	s.changed("created", "attribute_value", value.ID, actor, value.Name)
	return value, nil
}

func (s *attributeService) UpdateValue(id uuid.UUID, req *ValueRequest, actor string) (*model.AttributeValue, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}
	value, err := s.repo.FindValueByID(id)
	if err != nil {
		return nil, storeErr("attribute value", err)
	}

	value.Name = strings.TrimSpace(req.Name)
	value.Position = req.Position
	value.UpdatedBy = actor
	if err := s.repo.UpdateValue(value); err != nil {
		return nil, storeErr("attribute value", err)
	}
	s.changed("updated", "attribute_value", value.ID, actor, value.Name)
	return value, nil
}

func (s *attributeService) DeleteValue(id uuid.UUID, actor string) error {
	if err := s.repo.DeleteValue(id, actor); err != nil {
		return storeErr("attribute value", err)
	}
	s.changed("deleted", "attribute_value", id, actor, "")
	return nil
}

func (s *attributeService) changed(action, entity string, id uuid.UUID, actor, name string) {
	s.cache.Invalidate()
	msg := fmt.Sprintf("%s %s %s", actor, action, strings.ReplaceAll(entity, "_", " "))
	if name != "" {
		msg += fmt.Sprintf(" '%s'", name)
	}
	s.deps.publish(action, entity, id, actor, msg, nil)
}
