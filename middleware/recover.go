package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/resorcera/course_api/shared"
)

// Recover turns a panic into an error so it reaches the app ErrorHandler and is
// classified like any other failure.
func Recover() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Path()).Msg("Recovered from panic")
				err = shared.RecoveredError(r)
			}
		}()
		return c.Next()
	}
}
