package middleware

import (
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
)

const (
	// ActorHeader names the admin user a request acts for. It feeds the audit
	// columns and event messages only; it is not authentication.
	ActorHeader  = "X-Actor"
	DefaultActor = "system"

	// Counted in characters to match varchar(255).
	maxActorLen = 255
)

// Actor stores the request's audit identity in c.Locals("actor").
func Actor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := strings.TrimSpace(c.Get(ActorHeader))
		if actor == "" {
			actor = DefaultActor
		}
		if utf8.RuneCountInString(actor) > maxActorLen {
			actor = string([]rune(actor)[:maxActorLen])
		}
		c.Locals("actor", actor)
		return c.Next()
	}
}
