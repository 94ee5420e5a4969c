package handler

import (
	"errors"

	"go-catalog-admin/internal/middleware"
	"go-catalog-admin/internal/repository"
	"go-catalog-admin/internal/service"
	"go-catalog-admin/pkg/combination"
	"go-catalog-admin/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// getActor returns the audit identity set by middleware.Actor.
func getActor(c *fiber.Ctx) string {
	actor, ok := c.Locals("actor").(string)
	if !ok || actor == "" {
		return middleware.DefaultActor
	}
	return actor
}

func parseUUID(c *fiber.Ctx, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(param))
	return id, err == nil
}

func parsePage(c *fiber.Ctx) repository.Page {
	limit := c.QueryInt("limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return repository.Page{Limit: limit, Offset: offset}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(400).JSON(fiber.Map{"error": msg})
}

func invalidID(c *fiber.Ctx, what string) error {
	return badRequest(c, "Invalid "+what+" ID")
}

func invalidJSON(c *fiber.Ctx) error {
	return badRequest(c, "Invalid JSON")
}

func paged(c *fiber.Ctx, items interface{}, total int64, page repository.Page) error {
	return c.JSON(fiber.Map{
		"data":   items,
		"total":  total,
		"limit":  page.Limit,
		"offset": page.Offset,
	})
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var (
		verr *validator.ValidationError
		werr *service.WeightsError
	)
	switch {
	case errors.As(err, &verr):
		return c.Status(422).JSON(fiber.Map{"error": verr.Error(), "details": verr.Errors})
	case errors.As(err, &werr):
		return c.Status(422).JSON(fiber.Map{
			"error":   err.Error(),
			"total":   werr.Result.Total,
			"overage": werr.Result.Overage,
			"result":  werr.Result,
		})
	case errors.Is(err, service.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrDuplicate):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalid),
		errors.Is(err, service.ErrDuplicateFeatureGroup),
		errors.Is(err, service.ErrUnknownFeatureGroup),
		errors.Is(err, combination.ErrNoSelection),
		errors.Is(err, combination.ErrTooManyCombinations),
		errors.Is(err, combination.ErrUnknownValue):
		return c.Status(422).JSON(fiber.Map{"error": err.Error()})
	}

	if log != nil {
		log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
}
