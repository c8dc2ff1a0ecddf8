package utils

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// GetTokenFromCookie retrieves a token from the named cookie
func GetTokenFromCookie(c *gin.Context, name string) string {
	token, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return token
}

// GetBearerToken returns the token from an "Authorization: Bearer" header.
func GetBearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// VisitorCookieName scopes the visitor marker to one storefront entry point
// (a partner ID or a QR code) so a guest moving between restaurants is
// counted once at each.
func VisitorCookieName(base, scope string) string {
	return base + "_" + scope
}

// HasVisitorMarker reports whether the request carries a marker for scope.
func HasVisitorMarker(c *gin.Context, base, scope string) bool {
	return GetTokenFromCookie(c, VisitorCookieName(base, scope)) != ""
}

// SetVisitorMarker writes the scoped visitor marker.
func SetVisitorMarker(c *gin.Context, base, scope, value string, ttl time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		VisitorCookieName(base, scope),
		value,
		int(ttl.Seconds()),
		"/",
		"",
		secure,
		true, // HttpOnly
	)
}
