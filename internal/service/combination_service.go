package service

import (
	"fmt"
	"strconv"
	"strings"

	"go-catalog-admin/internal/model"
	"go-catalog-admin/internal/repository"
	"go-catalog-admin/pkg/combination"
	"go-catalog-admin/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GenerateCombinationsRequest struct {
	// BaseSKU defaults to the product SKU when empty.
	BaseSKU   string                       `json:"base_sku" validate:"max=64"`
	Selection []combination.GroupSelection `json:"selection"`
}

type UpdateCombinationRequest struct {
	PriceImpact  string `json:"price_impact" validate:"omitempty,numeric"`
	WeightImpact string `json:"weight_impact" validate:"omitempty,numeric"`
	Quantity     int    `json:"quantity" validate:"gte=0"`
}

type CombinationService interface {
	Preview(productID uuid.UUID, req *GenerateCombinationsRequest) ([]combination.Combination, error)
	Generate(productID uuid.UUID, req *GenerateCombinationsRequest, actor string) ([]model.ProductCombination, error)
	List(productID uuid.UUID) ([]model.ProductCombination, error)
	Update(id uuid.UUID, req *UpdateCombinationRequest, actor string) (*model.ProductCombination, error)
	SetDefault(id uuid.UUID, actor string) (*model.ProductCombination, error)
	Delete(id uuid.UUID, actor string) error
}

type combinationService struct {
	productRepo     repository.ProductRepository
	attributeRepo   repository.AttributeRepository
	combinationRepo repository.CombinationRepository
	maxCombinations int
	deps            Deps
}

// NewCombinationService builds the service. maxCombinations caps a single
// generation; zero disables the cap.
func NewCombinationService(
	productRepo repository.ProductRepository,
	attributeRepo repository.AttributeRepository,
	combinationRepo repository.CombinationRepository,
	maxCombinations int,
	deps Deps,
) CombinationService {
	return &combinationService{
		productRepo:     productRepo,
		attributeRepo:   attributeRepo,
		combinationRepo: combinationRepo,
		maxCombinations: maxCombinations,
		deps:            deps,
	}
}

func (s *combinationService) Preview(productID uuid.UUID, req *GenerateCombinationsRequest) ([]combination.Combination, error) {
	_, combos, err := s.build(productID, req)
	return combos, err
}

// Generate replaces every stored combination of the product with the
// cartesian product of the selection.
func (s *combinationService) Generate(productID uuid.UUID, req *GenerateCombinationsRequest, actor string) ([]model.ProductCombination, error) {
	product, combos, err := s.build(productID, req)
	if err != nil {
		return nil, err
	}

	skus := make([]string, len(combos))
	for i, c := range combos {
		skus[i] = c.SKU
	}
	taken, err := s.combinationRepo.CountSKUsOutsideProduct(product.ID, skus)
	if err != nil {
		return nil, storeErr("combination", err)
	}
	if taken > 0 {
		return nil, duplicate("combination", "SKU")
	}

	rows := make([]model.ProductCombination, len(combos))
	for i, c := range combos {
		qty, _ := strconv.Atoi(c.Quantity)
		row := model.ProductCombination{
			ProductID:    product.ID,
			SKU:          c.SKU,
			Name:         c.Name,
			PriceImpact:  c.PriceImpact,
			WeightImpact: c.WeightImpact,
			Quantity:     qty,
			IsDefault:    c.IsDefault,
			Position:     i,
		}
		row.CreatedBy = actor
		row.UpdatedBy = actor
		for j, valueID := range c.AttributeValueIDs {
			row.Attributes = append(row.Attributes, model.CombinationAttribute{AttributeValueID: valueID, Position: j})
		}
		rows[i] = row
	}

	if err := s.combinationRepo.Replace(product.ID, rows); err != nil {
		return nil, storeErr("combination", err)
	}

	s.deps.Metrics.CombinationsGenerated(len(rows))
	s.deps.logger().Info("combinations generated",
		zap.Stringer("product_id", product.ID),
		zap.Int("count", len(rows)),
		zap.String("actor", actor),
	)
	s.deps.publish("generated", "combination", product.ID, actor,
		fmt.Sprintf("%s generated %d combinations for '%s'", actor, len(rows), product.Name),
		map[string]interface{}{"product_id": product.ID, "count": len(rows)},
	)
	return s.List(product.ID)
}

func (s *combinationService) List(productID uuid.UUID) ([]model.ProductCombination, error) {
	if _, err := s.productRepo.FindByID(productID); err != nil {
		return nil, storeErr("product", err)
	}
	combos, err := s.combinationRepo.FindByProduct(productID)
	if err != nil {
		return nil, storeErr("combination", err)
	}
	return combos, nil
}

func (s *combinationService) Update(id uuid.UUID, req *UpdateCombinationRequest, actor string) (*model.ProductCombination, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}
	combo, err := s.combinationRepo.FindByID(id)
	if err != nil {
		return nil, storeErr("combination", err)
	}

	combo.PriceImpact = orZero(req.PriceImpact)
	combo.WeightImpact = orZero(req.WeightImpact)
	combo.Quantity = req.Quantity
	combo.UpdatedBy = actor
	if err := s.combinationRepo.Update(combo); err != nil {
		return nil, storeErr("combination", err)
	}

	s.deps.publish("updated", "combination", combo.ID, actor, fmt.Sprintf("%s updated combination %s", actor, combo.SKU), nil)
	return combo, nil
}

func (s *combinationService) SetDefault(id uuid.UUID, actor string) (*model.ProductCombination, error) {
	combo, err := s.combinationRepo.FindByID(id)
	if err != nil {
		return nil, storeErr("combination", err)
	}
	if err := s.combinationRepo.SetDefault(combo.ProductID, combo.ID, actor); err != nil {
		return nil, storeErr("combination", err)
	}

	s.deps.publish("default_changed", "combination", combo.ID, actor, fmt.Sprintf("%s made %s the default combination", actor, combo.SKU), nil)
	return s.combinationRepo.FindByID(id)
}

// Delete removes one combination. When it was the default, the first
// remaining combination takes over.
func (s *combinationService) Delete(id uuid.UUID, actor string) error {
	combo, err := s.combinationRepo.FindByID(id)
	if err != nil {
		return storeErr("combination", err)
	}
	if err := s.combinationRepo.Delete(id); err != nil {
		return storeErr("combination", err)
	}

	if combo.IsDefault {
		rest, err := s.combinationRepo.FindByProduct(combo.ProductID)
		if err != nil {
			return storeErr("combination", err)
		}
		if len(rest) > 0 {
			if err := s.combinationRepo.SetDefault(combo.ProductID, rest[0].ID, actor); err != nil {
				return storeErr("combination", err)
			}
		}
	}

	s.deps.publish("deleted", "combination", id, actor, fmt.Sprintf("%s deleted combination %s", actor, combo.SKU), nil)
	return nil
}

func (s *combinationService) build(productID uuid.UUID, req *GenerateCombinationsRequest) (*model.Product, []combination.Combination, error) {
	if err := validator.Check(req); err != nil {
		return nil, nil, err
	}
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return nil, nil, storeErr("product", err)
	}

	sel := combination.FromGroups(req.Selection)
	if sel.Empty() {
		return nil, nil, combination.ErrNoSelection
	}

	selected := sel.Groups()
	ids := make([]uuid.UUID, len(selected))
	for i, g := range selected {
		ids[i] = g.GroupID
	}
	stored, err := s.attributeRepo.FindGroupsByIDs(ids)
	if err != nil {
		return nil, nil, storeErr("attribute group", err)
	}

	groups := make([]combination.Group, len(stored))
	for i, g := range stored {
		values := make([]combination.Value, len(g.Values))
		for j, v := range g.Values {
			values[j] = combination.Value{ID: v.ID, Name: v.Name}
		}
		groups[i] = combination.Group{ID: g.ID, Name: g.Name, Values: values}
	}

	baseSKU := strings.TrimSpace(req.BaseSKU)
	if baseSKU == "" {
		baseSKU = product.SKU
	}
	combos, err := combination.GenerateLimited(baseSKU, sel, groups, s.maxCombinations)
	if err != nil {
		return nil, nil, err
	}
	return product, combos, nil
}

func orZero(v string) string {
	if strings.TrimSpace(v) == "" {
		return "0"
	}
	return v
}
