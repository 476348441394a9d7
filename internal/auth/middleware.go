package auth

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/quillworks/quill/pkg/config"
)

// identityKey stores the request identity inside the gin context.
const identityKey = "auth_identity"

// CurrentUser resolves the request identity from a bearer token or
// the session cookie and attaches it to the context. Absent or
// invalid credentials leave the request anonymous; this middleware
// never rejects.
func CurrentUser(cfg *config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie(cfg.SessionCookie); err == nil {
				token = cookie
			}
		}
		if token != "" {
			if claims, err := ParseToken(cfg.JWTSecret, token); err == nil {
				c.Set(identityKey, Identity{
					UserID:   claims.UserID,
					Username: claims.Username,
				})
			}
		}
		c.Next()
	}
}

// FromContext returns the identity resolved by CurrentUser, or the
// anonymous identity.
func FromContext(c *gin.Context) Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(Identity); ok {
			return id
		}
	}
	return Identity{}
}

// LoginRequired redirects anonymous requests to the login entry
// point, preserving the originally requested URI, query string
// included, as the return target.
func LoginRequired(loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !FromContext(c).IsAuthenticated() {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, loginURL+"?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
