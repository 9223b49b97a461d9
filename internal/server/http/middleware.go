package http

import (
	"strings"

	"github.com/dmitrijs2005/orgkeeper/internal/server/auth"
	"github.com/gofiber/fiber/v2"
)

const userIDKey = "userID"

// accessTokenMiddleware guards tenancy routes: it extracts the bearer token,
// verifies it and stores the claimed user id in the request locals. Missing,
// malformed, badly signed and expired tokens are all rejected alike.
func (s *Server) accessTokenMiddleware(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return unauthorized(c)
	}

	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return unauthorized(c)
	}

	c.Locals(userIDKey, claims.UserID)

	return c.Next()
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(errorResponse{
		Status:     "Bad request",
		Message:    "Authentication failed",
		StatusCode: fiber.StatusUnauthorized,
	})
}

// authenticatedUserID returns the user id stored by accessTokenMiddleware.
func authenticatedUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}
