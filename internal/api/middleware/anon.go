package middleware

import (
	"Minbar/internal/api/config"
	"Minbar/internal/pkg/consts"
	"Minbar/internal/pkg/identity"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AnonIDMiddleware resolves the anonymous visitor identity. A valid
// cookie is reused, otherwise a fresh token is issued. Only the hash
// of the token travels further; the raw value stays in the cookie.
// This middleware never aborts the request.
func AnonIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := config.Cfg.Engagement

		var anonHash string
		token, err := c.Cookie(cfg.CookieName)
		switch {
		case err == nil && len(token) >= identity.MinTokenLength:
			anonHash = identity.HashToken(token)
		case cfg.CookieName == "":
			// Cookies disabled; the visitor gets a throwaway identity.
			anonHash = identity.FallbackHash()
		default:
			fresh := identity.NewToken()
			setAnonCookie(c, cfg, fresh)
			anonHash = identity.HashToken(fresh)
		}

		c.Set(consts.AnonHashKey, anonHash)
		ctx := context.WithValue(c.Request.Context(), consts.AnonHashKey, anonHash)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func setAnonCookie(c *gin.Context, cfg config.EngagementConfig, token string) {
	cookie := &http.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   cfg.CookieMaxAgeDays * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	// Cross-site frontends need SameSite=None, which browsers only
	// honor over HTTPS.
	if cfg.SecureCookie {
		cookie.SameSite = http.SameSiteNoneMode
		cookie.Secure = true
	}
	http.SetCookie(c.Writer, cookie)
}
