package server

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	contextUsernameKey = "auth_username"
	contextIsAdminKey  = "auth_is_admin"
)

// AdminRequired authenticates the bearer token and rejects non-admin
// callers. Every administration route sits behind it.
func (s *Server) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		claims, err := s.authSvc.Verify(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		if !claims.IsAdmin {
			AbortWithError(c, ErrForbidden)
			return
		}

		c.Set(contextUsernameKey, claims.Username)
		c.Set(contextIsAdminKey, claims.IsAdmin)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
