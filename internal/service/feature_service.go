package service

import (
	"fmt"
	"strings"

	"go-catalog-admin/internal/model"
	"go-catalog-admin/internal/repository"
	"go-catalog-admin/pkg/validator"

	"github.com/google/uuid"
)

type FeatureService interface {
	ListGroups() ([]model.FeatureGroup, error)
	GetGroup(id uuid.UUID) (*model.FeatureGroup, error)
	CreateGroup(req *GroupRequest, actor string) (*model.FeatureGroup, error)
	UpdateGroup(id uuid.UUID, req *GroupRequest, actor string) (*model.FeatureGroup, error)
	DeleteGroup(id uuid.UUID, actor string) error
	AddValue(groupID uuid.UUID, req *ValueRequest, actor string) (*model.FeatureValue, error)
	UpdateValue(id uuid.UUID, req *ValueRequest, actor string) (*model.FeatureValue, error)
	DeleteValue(id uuid.UUID, actor string) error
}

type featureService struct {
	repo repository.FeatureRepository
	deps Deps
}

func NewFeatureService(repo repository.FeatureRepository, deps Deps) FeatureService {
	return &featureService{repo: repo, deps: deps}
}

func (s *featureService) ListGroups() ([]model.FeatureGroup, error) {
	groups, err := s.repo.FindAllGroups()
	if err != nil {
		return nil, storeErr("feature group", err)
	}
	return groups, nil
}

func (s *featureService) GetGroup(id uuid.UUID) (*model.FeatureGroup, error) {
	group, err := s.repo.FindGroupByID(id)
	if err != nil {
		return nil, storeErr("feature group", err)
	}
	return group, nil
}

func (s *featureService) CreateGroup(req *GroupRequest, actor string) (*model.FeatureGroup, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}

	group := &model.FeatureGroup{Name: strings.TrimSpace(req.Name), Position: req.Position}
	group.CreatedBy = actor
	group.UpdatedBy = actor
	for i, name := range req.Values {
		value := model.FeatureValue{Name: strings.TrimSpace(name), Position: i}
		value.CreatedBy = actor
		value.UpdatedBy = actor
		group.Values = append(group.Values, value)
	}

	if err := s.repo.CreateGroup(group); err != nil {
		return nil, storeErr("feature group", err)
	}
	s.deps.publish("created", "feature_group", group.ID, actor, fmt.Sprintf("%s created feature group '%s'", actor, group.Name), nil)
	return group, nil
}

func (s *featureService) UpdateGroup(id uuid.UUID, req *GroupRequest, actor string) (*model.FeatureGroup, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}
	group, err := s.repo.FindGroupByID(id)
	if err != nil {
		return nil, storeErr("feature group", err)
	}

	group.Name = strings.TrimSpace(req.Name)
	group.Position = req.Position
	group.UpdatedBy = actor
	if err := s.repo.UpdateGroup(group); err != nil {
		return nil, storeErr("feature group", err)
	}
	s.deps.publish("updated", "feature_group", group.ID, actor, fmt.Sprintf("%s updated feature group '%s'", actor, group.Name), nil)
	return group, nil
}

// DeleteGroup also removes the group from every category weight allocation.
func (s *featureService) DeleteGroup(id uuid.UUID, actor string) error {
	if err := s.repo.DeleteGroup(id, actor); err != nil {
		return storeErr("feature group", err)
	}
	s.deps.publish("deleted", "feature_group", id, actor, fmt.Sprintf("%s deleted a feature group", actor), nil)
	return nil
}

func (s *featureService) AddValue(groupID uuid.UUID, req *ValueRequest, actor string) (*model.FeatureValue, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindGroupByID(groupID); err != nil {
		return nil, storeErr("feature group", err)
	}

	value := &model.FeatureValue{GroupID: groupID, Name: strings.TrimSpace(req.Name), Position: req.Position}
	value.CreatedBy = actor
	value.UpdatedBy = actor
	if err := s.repo.CreateValue(value); err != nil {
		return nil, storeErr("feature value", err)
	}
	s.deps.publish("created", "feature_value", value.ID, actor, fmt.Sprintf("%s added feature value '%s'", actor, value.Name), nil)
	return value, nil
}

func (s *featureService) UpdateValue(id uuid.UUID, req *ValueRequest, actor string) (*model.FeatureValue, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}
	value, err := s.repo.FindValueByID(id)
	if err != nil {
		return nil, storeErr("feature value", err)
	}

	value.Name = strings.TrimSpace(req.Name)
	value.Position = req.Position
	value.UpdatedBy = actor
	if err := s.repo.UpdateValue(value); err != nil {
		return nil, storeErr("feature value", err)
	}
	s.deps.publish("updated", "feature_value", value.ID, actor, fmt.Sprintf("%s updated feature value '%s'", actor, value.Name), nil)
	return value, nil
}

func (s *featureService) DeleteValue(id uuid.UUID, actor string) error {
	if err := s.repo.DeleteValue(id, actor); err != nil {
		return storeErr("feature value", err)
	}
	s.deps.publish("deleted", "feature_value", id, actor, fmt.Sprintf("%s deleted a feature value", actor), nil)
	return nil
}
