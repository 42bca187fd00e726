package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/resorcera/course_api/shared"
)

// PasswordVerifier checks an admin password. It returns a *shared.AppError
// describing why the password was refused.
type PasswordVerifier interface {
	VerifyPassword(password string) error
}

// RequireAdmin guards mutating routes with the X-Admin-Password header.
func RequireAdmin(verifier PasswordVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		password := c.Get(shared.AdminPasswordHeader)
		if password == "" {
			return shared.NewUnauthorizedError("Unauthorized")
		}
		if err := verifier.VerifyPassword(password); err != nil {
			return err
		}
		return c.Next()
	}
}
