package handler

import (
	"go-catalog-admin/internal/model"
	"go-catalog-admin/internal/repository"
	"go-catalog-admin/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductHandler struct {
	service service.ProductService
	log     *zap.Logger
}

func NewProductHandler(s service.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{service: s, log: log}
}

// GetProducts lists products.
// GET /api/v1/products?category_id=&brand_id=&q=&limit=&offset=
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	var filter repository.ProductFilter
	if raw := c.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return invalidID(c, "category")
		}
		filter.CategoryID = &id
	}
	if raw := c.Query("brand_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return invalidID(c, "brand")
		}
		filter.BrandID = &id
	}
	filter.Search = c.Query("q")

	page := parsePage(c)
	products, total, err := h.service.GetProducts(filter, page)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return paged(c, products, total, page)
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, ok := parseUUID(c, "id")
	if !ok {
		return invalidID(c, "product")
	}
	product, err := h.service.GetProduct(id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return invalidJSON(c)
	}

	if err := h.service.CreateProduct(&product, getActor(c)); err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := parseUUID(c, "id")
	if !ok {
		return invalidID(c, "product")
	}

	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return invalidJSON(c)
	}

	updated, err := h.service.UpdateProduct(id, &product, getActor(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Product updated", "data": updated})
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := parseUUID(c, "id")
	if !ok {
		return invalidID(c, "product")
	}
	if err := h.service.DeleteProduct(id, getActor(c)); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}
