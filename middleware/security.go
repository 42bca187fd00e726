package middleware

import (
	"regexp"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
)

const contentSecurityPolicy = "default-src 'self'; " +
	"script-src 'self' 'unsafe-eval' 'unsafe-inline'; " +
	"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; " +
	"font-src 'self' https://fonts.gstatic.com; " +
	"img-src 'self' data: blob: https:; " +
	"connect-src 'self';"

var blockedPathPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^/\.env`),
	regexp.MustCompile(`/\.git/`),
	regexp.MustCompile(`/node_modules/`),
	regexp.MustCompile(`/prisma/`),
	regexp.MustCompile(`\.log$`),
	regexp.MustCompile(`\.env$`),
	regexp.MustCompile(`\.backup$`),
	regexp.MustCompile(`package-lock\.json$`),
	regexp.MustCompile(`yarn\.lock$`),
}

func SecurityHeaders() fiber.Handler {
	return helmet.New(helmet.Config{
		XSSProtection:             "1; mode=block",
		ContentTypeNosniff:        "nosniff",
		XFrameOptions:             "DENY",
		ReferrerPolicy:            "strict-origin-when-cross-origin",
		PermissionPolicy:          "camera=(), microphone=(), geolocation=()",
		ContentSecurityPolicy:     contentSecurityPolicy,
		CrossOriginEmbedderPolicy: "unsafe-none",
		CrossOriginOpenerPolicy:   "same-origin",
		CrossOriginResourcePolicy: "same-origin",
		OriginAgentCluster:        "?1",
		XDNSPrefetchControl:       "off",
		XDownloadOptions:          "noopen",
		XPermittedCrossDomain:     "none",
	})
}

func IsBlockedPath(path string) bool {
	for _, pattern := range blockedPathPatterns {
		if pattern.MatchString(path) {
			return true
		}
	}
	return false
}

// BlockSensitivePaths answers 404 for paths that could expose build or
// configuration artifacts.
func BlockSensitivePaths() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if IsBlockedPath(c.Path()) {
			return c.Status(fiber.StatusNotFound).SendString("Not Found")
		}
		return c.Next()
	}
}

// CORS allows credentials only for an explicit origin list. With no origins
// configured, or with "*" among them, any origin may call, without cookies.
func CORS(origins []string) fiber.Handler {
	allowOrigins := strings.Join(origins, ",")
	wildcard := slices.Contains(origins, "*")
	if wildcard {
		allowOrigins = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type,Authorization,X-Requested-With,X-Admin-Password",
		AllowCredentials: len(origins) > 0 && !wildcard,
	})
}
