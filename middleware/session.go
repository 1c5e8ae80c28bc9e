package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/config"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// SessionCookie is the HttpOnly cookie carrying the session token.
const SessionCookie = "session"

const sessionKey = "session"

// SessionVerifier turns a token back into a session.
type SessionVerifier interface {
	Verify(token string) (*models.Session, error)
}

// RequireSession validates the token from the session cookie or the
// Authorization header and stores the decoded session on the context.
func RequireSession(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
			c.Abort()
			return
		}

		sess, err := verifier.Verify(token)
		if err != nil {
			config.Log.Debugw("[auth] invalid token", "error", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired session"))
			c.Abort()
			return
		}

		c.Set(sessionKey, *sess)
		c.Next()
	}
}

// RequireRole must run after RequireSession.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := GetSession(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
			c.Abort()
			return
		}
		if !sess.Is(roles...) {
			config.Log.Infow("[auth] role not allowed", "user", sess.UserID, "role", sess.Role, "path", c.FullPath())
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - insufficient role"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSession returns the session stored by RequireSession.
func GetSession(c *gin.Context) (models.Session, bool) {
	raw, exists := c.Get(sessionKey)
	if !exists {
		return models.Session{}, false
	}
	sess, ok := raw.(models.Session)
	return sess, ok
}

func extractToken(c *gin.Context) (string, bool) {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		return token, true
	}

	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
