package handler

import (
	"go-catalog-admin/internal/ws"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db  *gorm.DB
	hub *ws.Hub
}

func NewHealthHandler(db *gorm.DB, hub *ws.Hub) *HealthHandler {
	return &HealthHandler{db: db, hub: hub}
}

// Health reports database reachability.
// GET /healthz
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Context())
	}
	if err != nil {
		return c.Status(503).JSON(fiber.Map{"status": "unavailable", "error": err.Error()})
	}

	clients := 0
	if h.hub != nil {
		clients = h.hub.ClientCount()
	}
	return c.JSON(fiber.Map{"status": "ok", "ws_clients": clients})
}
