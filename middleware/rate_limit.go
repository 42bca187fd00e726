package middleware

import (
	"net"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/resorcera/course_api/dto"
	"github.com/resorcera/course_api/shared"
)

// ClientKey identifies the caller for rate limiting. Proxy headers are trusted,
// so the key is spoofable when the service is reachable without a proxy in front.
func ClientKey(c *fiber.Ctx) string {
	if forwarded := c.Get(fiber.HeaderXForwardedFor); forwarded != "" {
		ip := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if ip != "" {
			return ip
		}
	}

	if realIP := strings.TrimSpace(c.Get("X-Real-IP")); realIP != "" {
		return realIP
	}

	if addr := c.Context().RemoteAddr(); addr != nil {
		remote := addr.String()
		if ip, _, err := net.SplitHostPort(remote); err == nil && ip != "" {
			return ip
		}
		if remote != "" {
			return remote
		}
	}

	return shared.AnonymousClientKey
}

func SetRateLimitHeaders(c *fiber.Ctx, info dto.RateLimitInfo) {
	c.Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
	c.Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
	c.Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetAt.Unix(), 10))
}
