package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sorinslavic/graide-api/internal/utils"
	"github.com/sorinslavic/graide-api/pkg/googleapi"
)

// RequireGoogleToken extracts the caller's Google OAuth access token from
// the Authorization header and binds it to the request context. Every call
// to Google is made with the caller's own token, so the API holds no
// credentials of its own.
func RequireGoogleToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if header == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "missing authorization header")
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "authorization header must be a bearer token")
		}

		c.SetUserContext(googleapi.WithToken(c.UserContext(), strings.TrimSpace(token)))

		return c.Next()
	}
}
