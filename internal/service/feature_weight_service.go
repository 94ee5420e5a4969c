package service

import (
	"errors"
	"fmt"

	"go-catalog-admin/internal/model"
	"go-catalog-admin/internal/repository"
	"go-catalog-admin/pkg/validator"
	"go-catalog-admin/pkg/weights"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrWeightsExceeded       = errors.New("feature weights exceed 100%")
	ErrDuplicateFeatureGroup = errors.New("feature group appears more than once")
	ErrUnknownFeatureGroup   = errors.New("feature group does not exist")
)

// WeightsError is returned when a weight set is rejected for its total.
type WeightsError struct {
	Result weights.Result
}

func (e *WeightsError) Error() string {
	return fmt.Sprintf("%s: total %d, over by %d", ErrWeightsExceeded, e.Result.Total, e.Result.Overage)
}

func (e *WeightsError) Unwrap() error { return ErrWeightsExceeded }

// WeightsView is a category's allocation plus its running total.
type WeightsView struct {
	CategoryID uuid.UUID        `json:"category_id"`
	Weights    []weights.Weight `json:"weights"`
	Result     weights.Result   `json:"result"`
}

type WeightsRequest struct {
	Weights []weights.Weight `json:"weights" validate:"dive"`
}

type FeatureWeightService interface {
	Get(categoryID uuid.UUID) (*WeightsView, error)
	Validate(req *WeightsRequest) (weights.Result, error)
	Save(categoryID uuid.UUID, req *WeightsRequest, actor string) (*WeightsView, error)
}

type featureWeightService struct {
	repo         repository.FeatureWeightRepository
	featureRepo  repository.FeatureRepository
	categoryRepo repository.CRUDRepository[model.Category]
	deps         Deps
}

func NewFeatureWeightService(
	repo repository.FeatureWeightRepository,
	featureRepo repository.FeatureRepository,
	categoryRepo repository.CRUDRepository[model.Category],
	deps Deps,
) FeatureWeightService {
	return &featureWeightService{repo: repo, featureRepo: featureRepo, categoryRepo: categoryRepo, deps: deps}
}

// Get returns the stored allocation. A category that never saved one still
// shows the price entry at zero.
func (s *featureWeightService) Get(categoryID uuid.UUID) (*WeightsView, error) {
	if _, err := s.categoryRepo.FindByID(categoryID); err != nil {
		return nil, storeErr("category", err)
	}
	rows, err := s.repo.FindByCategory(categoryID)
	if err != nil {
		return nil, storeErr("feature weights", err)
	}

	ws := make([]weights.Weight, len(rows))
	for i, row := range rows {
		ws[i] = weights.Weight{
			Type:           row.Type,
			FeatureGroupID: row.FeatureGroupID,
			Weight:         row.Weight,
			Position:       row.Position,
		}
	}
	ws = weights.EnsurePrice(ws)
	return &WeightsView{CategoryID: categoryID, Weights: ws, Result: weights.Validate(ws)}, nil
}

// Validate reports the total without saving. Inputs are clamped first so the
// result matches what Save would store.
func (s *featureWeightService) Validate(req *WeightsRequest) (weights.Result, error) {
	if err := validator.Check(req); err != nil {
		return weights.Result{}, err
	}
	return weights.Validate(weights.Normalize(req.Weights)), nil
}

func (s *featureWeightService) Save(categoryID uuid.UUID, req *WeightsRequest, actor string) (*WeightsView, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}
	ws := weights.Normalize(req.Weights)

	seen := make(map[uuid.UUID]bool)
	var groupIDs []uuid.UUID
	for _, w := range ws {
		if w.Type != weights.TypeFeatureGroup {
			continue
		}
		if seen[*w.FeatureGroupID] {
			s.deps.Metrics.WeightRejected("duplicate_group")
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFeatureGroup, w.FeatureGroupID)
		}
		seen[*w.FeatureGroupID] = true
		groupIDs = append(groupIDs, *w.FeatureGroupID)
	}

	res := weights.Validate(ws)
	if !res.Valid {
		s.deps.Metrics.WeightRejected("exceeded")
		s.deps.logger().Warn("feature weights rejected",
			zap.Stringer("category_id", categoryID),
			zap.Int("total", res.Total),
			zap.String("actor", actor),
		)
		return nil, &WeightsError{Result: res}
	}

	if _, err := s.categoryRepo.FindByID(categoryID); err != nil {
		return nil, storeErr("category", err)
	}
	count, err := s.featureRepo.CountGroupsByIDs(groupIDs)
	if err != nil {
		return nil, storeErr("feature group", err)
	}
	if int(count) != len(groupIDs) {
		s.deps.Metrics.WeightRejected("unknown_group")
		return nil, ErrUnknownFeatureGroup
	}

	rows := make([]model.CategoryFeatureWeight, len(ws))
	for i, w := range ws {
		row := model.CategoryFeatureWeight{
			CategoryID:     categoryID,
			Type:           w.Type,
			FeatureGroupID: w.FeatureGroupID,
			Weight:         w.Weight,
			Position:       w.Position,
		}
		row.CreatedBy = actor
		row.UpdatedBy = actor
		rows[i] = row
	}
	if err := s.repo.Replace(categoryID, rows); err != nil {
		return nil, storeErr("feature weights", err)
	}

	s.deps.publish("updated", "feature_weights", categoryID, actor,
		fmt.Sprintf("%s updated feature weights (total %d%%)", actor, res.Total),
		res,
	)
	return &WeightsView{CategoryID: categoryID, Weights: ws, Result: res}, nil
}
