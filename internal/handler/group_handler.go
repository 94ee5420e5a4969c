package handler

import (
	"go-catalog-admin/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GroupService is the shape shared by service.AttributeService and
// service.FeatureService.
type GroupService[G, V any] interface {
	ListGroups() ([]G, error)
	GetGroup(id uuid.UUID) (*G, error)
	CreateGroup(req *service.GroupRequest, actor string) (*G, error)
	UpdateGroup(id uuid.UUID, req *service.GroupRequest, actor string) (*G, error)
	DeleteGroup(id uuid.UUID, actor string) error
	AddValue(groupID uuid.UUID, req *service.ValueRequest, actor string) (*V, error)
	UpdateValue(id uuid.UUID, req *service.ValueRequest, actor string) (*V, error)
	DeleteValue(id uuid.UUID, actor string) error
}

// GroupHandler serves attribute groups and feature groups together with
// their values. label is used in messages, e.g. "Attribute group".
type GroupHandler[G, V any] struct {
	service GroupService[G, V]
	label   string
	log     *zap.Logger
}

func NewGroupHandler[G, V any](s GroupService[G, V], label string, log *zap.Logger) *GroupHandler[G, V] {
	return &GroupHandler[G, V]{service: s, label: label, log: log}
}

func (h *GroupHandler[G, V]) ListGroups(c *fiber.Ctx) error {
	groups, err := h.service.ListGroups()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(groups)
}

func (h *GroupHandler[G, V]) GetGroup(c *fiber.Ctx) error {
	id, ok := parseUUID(c, "id")
	if !ok {
		return invalidID(c, "group")
	}
	group, err := h.service.GetGroup(id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(group)
}

func (h *GroupHandler[G, V]) CreateGroup(c *fiber.Ctx) error {
	var req service.GroupRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	group, err := h.service.CreateGroup(&req, getActor(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": h.label + " created", "data": group})
}

func (h *GroupHandler[G, V]) UpdateGroup(c *fiber.Ctx) error {
	id, ok := parseUUID(c, "id")
	if !ok {
		return invalidID(c, "group")
	}
	var req service.GroupRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	group, err := h.service.UpdateGroup(id, &req, getActor(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": h.label + " updated", "data": group})
}

func (h *GroupHandler[G, V]) DeleteGroup(c *fiber.Ctx) error {
	id, ok := parseUUID(c, "id")
	if !ok {
		return invalidID(c, "group")
	}
	if err := h.service.DeleteGroup(id, getActor(c)); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": h.label + " deleted"})
}

func (h *GroupHandler[G, V]) AddValue(c *fiber.Ctx) error {
	groupID, ok := parseUUID(c, "id")
	if !ok {
		return invalidID(c, "group")
	}
	var req service.ValueRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	value, err := h.service.AddValue(groupID, &req, getActor(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Value created", "data": value})
}

func (h *GroupHandler[G, V]) UpdateValue(c *fiber.Ctx) error {
	id, ok := parseUUID(c, "id")
	if !ok {
		return invalidID(c, "value")
	}
	var req service.ValueRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}
	value, err := h.service.UpdateValue(id, &req, getActor(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Value updated", "data": value})
}

func (h *GroupHandler[G, V]) DeleteValue(c *fiber.Ctx) error {
	id, ok := parseUUID(c, "id")
	if !ok {
		return invalidID(c, "value")
	}
	if err := h.service.DeleteValue(id, getActor(c)); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Value deleted"})
}

// Mount registers the group routes under groups and the value routes under
// values, e.g. "/attribute-groups" and "/attribute-values".
func (h *GroupHandler[G, V]) Mount(r fiber.Router, groups, values string) {
	r.Get(groups, h.ListGroups)
	r.Post(groups, h.CreateGroup)
	r.Get(groups+"/:id", h.GetGroup)
	r.Put(groups+"/:id", h.UpdateGroup)
	r.Delete(groups+"/:id", h.DeleteGroup)
	r.Post(groups+"/:id/values", h.AddValue)
	r.Put(values+"/:id", h.UpdateValue)
	r.Delete(values+"/:id", h.DeleteValue)
}
