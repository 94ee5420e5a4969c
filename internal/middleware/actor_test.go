package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func actorApp() *fiber.App {
	app := fiber.New()
	app.Use(Actor())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("actor").(string))
	})
	return app
}

func TestActor(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"missing header", "", DefaultActor},
		{"blank header", "   ", DefaultActor},
		{"trimmed", "  maria ", "maria"},
		{"truncated", strings.Repeat("a", 300), strings.Repeat("a", 255)},
		{"truncated by character", strings.Repeat("ж", 300), strings.Repeat("ж", 255)},
		{"multibyte under limit", strings.Repeat("ж", 200), strings.Repeat("ж", 200)},
	}

	app := actorApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set(ActorHeader, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.True(t, utf8.Valid(body))
			assert.Equal(t, tt.want, string(body))
		})
	}
}
