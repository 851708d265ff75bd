// Package identity exposes the authenticated buyer to handlers. Tokens are
// issued by the hosted auth provider; this service only verifies them.
package identity

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
)

// LocalsKey is where the jwt middleware stores the parsed token.
const LocalsKey = "user"

// Middleware verifies HS256 bearer tokens signed with secret. Requests that
// match skip are let through without a token.
func Middleware(secret string, skip func(c *fiber.Ctx) bool) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: []byte(secret),
		ContextKey: LocalsKey,
		Filter:     skip,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		},
	})
}

// BuyerIDFromCtx extracts the caller's id from the token in c.Locals. The
// hosted provider puts it in "sub"; older tokens used a numeric "user_id".
func BuyerIDFromCtx(c *fiber.Ctx) (string, error) {
	tok, ok := c.Locals(LocalsKey).(*jwt.Token)
	if !ok || tok == nil {
		return "", fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", fiber.ErrUnauthorized
	}

	if sub, ok := claims["sub"].(string); ok && strings.TrimSpace(sub) != "" {
		return sub, nil
	}
	switch v := claims["user_id"].(type) {
	case string:
		if strings.TrimSpace(v) != "" {
			return v, nil
		}
	case float64:
		return strconv.FormatInt(int64(v), 10), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	}
	return "", fiber.ErrUnauthorized
}
