package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/gin-gonic/gin"
)

const (
	// ctxUserIDKey and ctxUserEmailKey carry the authenticated caller's
	// identity between the middleware and handlers.
	ctxUserIDKey    = "auth.userID"
	ctxUserEmailKey = "auth.userEmail"
)

// accessTokenMiddleware validates the Bearer token on incoming requests and
// resolves it to a user record. Any validation failure is answered with a
// single generic 401 so callers cannot probe which check rejected them.
func (s *Server) accessTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
			return
		}

		email, err := s.users.ValidateToken(token)
		if err != nil {
			s.logger.Warn(c.Request.Context(), "token rejected", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		user, err := s.users.GetUserByEmail(c.Request.Context(), email)
		if err != nil {
			// Only a genuinely unknown subject is an auth failure; a
			// storage error must not masquerade as one.
			if errors.Is(err, common.ErrorNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
				return
			}
			s.logger.Error(c.Request.Context(), "resolving token subject", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
			return
		}

		c.Set(ctxUserIDKey, user.ID)
		c.Set(ctxUserEmailKey, user.Email)
		c.Next()
	}
}

// callerID returns the authenticated user ID stored by the middleware.
func callerID(c *gin.Context) string {
	return c.GetString(ctxUserIDKey)
}
