package handler

import (
	"go-catalog-admin/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ResourceHandler exposes a service.ResourceService as list/get/create/
// update/delete endpoints.
type ResourceHandler[T any] struct {
	service service.ResourceService[T]
	label   string
	log     *zap.Logger
}

func NewResourceHandler[T any](s service.ResourceService[T], label string, log *zap.Logger) *ResourceHandler[T] {
	return &ResourceHandler[T]{service: s, label: label, log: log}
}

func (h *ResourceHandler[T]) List(c *fiber.Ctx) error {
	page := parsePage(c)
	items, total, err := h.service.List(page)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return paged(c, items, total, page)
}

func (h *ResourceHandler[T]) Get(c *fiber.Ctx) error {
	id, ok := parseUUID(c, "id")
	if !ok {
		return invalidID(c, h.label)
	}
	item, err := h.service.Get(id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(item)
}

func (h *ResourceHandler[T]) Create(c *fiber.Ctx) error {
	item := new(T)
	if err := c.BodyParser(item); err != nil {
		return invalidJSON(c)
	}
	if err := h.service.Create(item, getActor(c)); err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Created", "data": item})
}

func (h *ResourceHandler[T]) Update(c *fiber.Ctx) error {
	id, ok := parseUUID(c, "id")
	if !ok {
		return invalidID(c, h.label)
	}
	item := new(T)
	if err := c.BodyParser(item); err != nil {
		return invalidJSON(c)
	}
	updated, err := h.service.Update(id, item, getActor(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Updated", "data": updated})
}

func (h *ResourceHandler[T]) Delete(c *fiber.Ctx) error {
	id, ok := parseUUID(c, "id")
	if !ok {
		return invalidID(c, h.label)
	}
	if err := h.service.Delete(id, getActor(c)); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Deleted"})
}

func (h *ResourceHandler[T]) Mount(r fiber.Router, path string) {
	r.Get(path, h.List)
	r.Post(path, h.Create)
	r.Get(path+"/:id", h.Get)
	r.Put(path+"/:id", h.Update)
	r.Delete(path+"/:id", h.Delete)
}
