package handler

import (
	"go-catalog-admin/pkg/slug"
	"go-catalog-admin/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type SlugRequest struct {
	Text string `json:"text" validate:"max=1000"`
}

// GenerateSlug backs the "Generate" button next to every slug field.
// POST /api/v1/slugs
func GenerateSlug(c *fiber.Ctx) error {
	var req SlugRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	if err := validator.Check(&req); err != nil {
		return respondError(c, nil, err)
	}
	return c.JSON(fiber.Map{"slug": slug.Generate(req.Text)})
}
