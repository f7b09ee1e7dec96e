package api

import "github.com/gofiber/fiber/v2"

const (
	authCookieName     = "nido_auth"
	contextIdentityKey = "current_identity"
)

func currentIdentity(c *fiber.Ctx) (string, bool) {
	email, ok := c.Locals(contextIdentityKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}
