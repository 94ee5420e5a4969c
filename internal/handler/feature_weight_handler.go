package handler

import (
	"go-catalog-admin/internal/service"
	"go-catalog-admin/pkg/weights"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type FeatureWeightHandler struct {
	service service.FeatureWeightService
	log     *zap.Logger
}

func NewFeatureWeightHandler(s service.FeatureWeightService, log *zap.Logger) *FeatureWeightHandler {
	return &FeatureWeightHandler{service: s, log: log}
}

// parseWeights accepts either a bare array or {"weights": [...]}.
func parseWeights(c *fiber.Ctx) (*service.WeightsRequest, error) {
	var list []weights.Weight
	if err := c.BodyParser(&list); err == nil {
		return &service.WeightsRequest{Weights: list}, nil
	}
	var req service.WeightsRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Get returns the category's allocation and its total.
// GET /api/v1/categories/:id/feature-weights
func (h *FeatureWeightHandler) Get(c *fiber.Ctx) error {
	id, ok := parseUUID(c, "id")
	if !ok {
		return invalidID(c, "category")
	}
	view, err := h.service.Get(id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(view)
}

// Save replaces the allocation. Totals above 100 are rejected with 422.
// PUT /api/v1/categories/:id/feature-weights
func (h *FeatureWeightHandler) Save(c *fiber.Ctx) error {
	id, ok := parseUUID(c, "id")
	if !ok {
		return invalidID(c, "category")
	}
	req, err := parseWeights(c)
	if err != nil {
		return invalidJSON(c)
	}
	view, err := h.service.Save(id, req, getActor(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Feature weights saved", "data": view})
}

// Validate is a dry run of Save.
// POST /api/v1/categories/:id/feature-weights/validate
func (h *FeatureWeightHandler) Validate(c *fiber.Ctx) error {
	req, err := parseWeights(c)
	if err != nil {
		return invalidJSON(c)
	}
	res, err := h.service.Validate(req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(res)
}
