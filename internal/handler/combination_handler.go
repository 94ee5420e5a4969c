package handler

import (
	"go-catalog-admin/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CombinationHandler struct {
	service service.CombinationService
	log     *zap.Logger
}

func NewCombinationHandler(s service.CombinationService, log *zap.Logger) *CombinationHandler {
	return &CombinationHandler{service: s, log: log}
}

// Preview returns the combinations a selection would produce without
// storing them.
// POST /api/v1/products/:id/combinations/preview
func (h *CombinationHandler) Preview(c *fiber.Ctx) error {
	productID, ok := parseUUID(c, "id")
	if !ok {
		return invalidID(c, "product")
	}
	var req service.GenerateCombinationsRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	combos, err := h.service.Preview(productID, &req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"data": combos, "count": len(combos)})
}

// Generate replaces the product's combinations.
// POST /api/v1/products/:id/combinations
func (h *CombinationHandler) Generate(c *fiber.Ctx) error {
	productID, ok := parseUUID(c, "id")
	if !ok {
		return invalidID(c, "product")
	}
	var req service.GenerateCombinationsRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	combos, err := h.service.Generate(productID, &req, getActor(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Combinations generated", "data": combos, "count": len(combos)})
}

func (h *CombinationHandler) List(c *fiber.Ctx) error {
	productID, ok := parseUUID(c, "id")
	if !ok {
		return invalidID(c, "product")
	}
	combos, err := h.service.List(productID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(combos)
}

func (h *CombinationHandler) Update(c *fiber.Ctx) error {
	id, ok := parseUUID(c, "id")
	if !ok {
		return invalidID(c, "combination")
	}
	var req service.UpdateCombinationRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	combo, err := h.service.Update(id, &req, getActor(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Combination updated", "data": combo})
}

func (h *CombinationHandler) SetDefault(c *fiber.Ctx) error {
	id, ok := parseUUID(c, "id")
	if !ok {
		return invalidID(c, "combination")
	}
	combo, err := h.service.SetDefault(id, getActor(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Default combination set", "data": combo})
}

func (h *CombinationHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseUUID(c, "id")
	if !ok {
		return invalidID(c, "combination")
	}
	if err := h.service.Delete(id, getActor(c)); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Combination deleted"})
}
