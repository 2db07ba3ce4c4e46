package middleware

import (
	"strings"

	"go-fichas-ws/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// TokenCookie is the session cookie the auth handlers set.
const TokenCookie = "token"

// RequireAuth validates the session token and puts the owner's id and email
// into the request context. The token normally travels in the http-only
// cookie set at login; an Authorization: Bearer header works as well for
// non-browser clients.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(TokenCookie)
		if tokenString == "" {
			authHeader := c.Get("Authorization")
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				tokenString = parts[1]
			}
		}
		if tokenString == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		claims, err := jwt.ValidateToken(tokenString)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("user_email", claims.Email)

		return c.Next()
	}
}
