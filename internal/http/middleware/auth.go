package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"dictapi/internal/auth"
)

const (
	// UserIDLocalKey holds the authenticated user's id (int64).
	UserIDLocalKey = "user_id"
	// UsernameLocalKey holds the authenticated user's name.
	UsernameLocalKey = "username"
)

// Authenticator verifies session tokens.
type Authenticator interface {
	Authenticate(token string) (*auth.Payload, error)
}

// RequireAuth rejects requests without a valid session token with 401.
// The token is read from "Authorization: Bearer <token>" first, then from the cookie.
func RequireAuth(a Authenticator, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" && cookieName != "" {
			token = c.Cookies(cookieName)
		}
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}

		p, err := a.Authenticate(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired session")
		}

		c.Locals(UserIDLocalKey, p.UserID)
		c.Locals(UsernameLocalKey, p.Username)
		return c.Next()
	}
}

// UserID returns the id stored by RequireAuth, or 0.
func UserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(UserIDLocalKey).(int64)
	return id
}

func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
