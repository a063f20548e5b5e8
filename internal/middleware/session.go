package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nexushq/nexus-chat-api/internal/session"
	"github.com/nexushq/nexus-chat-api/internal/utils"
)

// Session resolves the acting user for the request. The identity comes from
// the X-User-ID header when present, otherwise from the configured default;
// either way it ends up as an explicit session value on the request context
// rather than a hardcoded identifier inside handlers.
func Session(defaultUserID int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := defaultUserID

		if raw := strings.TrimSpace(c.Get("X-User-ID")); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				return utils.SendError(c, fiber.StatusBadRequest, "invalid user id header")
			}
			userID = parsed
		}

		c.Locals("user_id", userID)
		c.SetUserContext(session.WithUser(c.UserContext(), userID))

		return c.Next()
	}
}

// SessionUserID returns the acting user bound to the request, or zero when
// no session middleware ran.
func SessionUserID(c *fiber.Ctx) int {
	if v := c.Locals("user_id"); v != nil {
		if id, ok := v.(int); ok {
			return id
		}
	}
	if id, ok := session.UserID(c.UserContext()); ok {
		return id
	}
	return 0
}
