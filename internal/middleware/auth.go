package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DhavalSuthar-24/scoreboard/internal/common"
	"github.com/DhavalSuthar-24/scoreboard/pkg/token"
)

const (
	OfficerHeader   = "X-Officer-Name"
	RequestIDHeader = "X-Request-ID"
)

// OfficerContext puts the calling officer's name on the context. A bearer
// session token wins over the X-Officer-Name header. Requests without either
// pass through untouched; only a bad token is rejected.
func OfficerContext(sessionSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			bearerToken := strings.Split(authHeader, " ")
			if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format. Expected: Bearer <token>"})
				return
			}

			claims, err := token.ValidateJWT(bearerToken[1], sessionSecret)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session: " + err.Error()})
				return
			}
			common.SetOfficer(c, claims.OfficerName)
			c.Next()
			return
		}

		if name := strings.TrimSpace(c.GetHeader(OfficerHeader)); name != "" {
			common.SetOfficer(c, name)
		}
		c.Next()
	}
}

// RequestID propagates the caller's X-Request-ID or mints a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(common.ContextRequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
