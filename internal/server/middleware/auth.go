package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cyclehub/inventoryman/internal/domain/models"
)

const identityKey = "identity"

// TokenValidator validates a session token and returns the identity it carries.
type TokenValidator interface {
	ValidateToken(tokenString string) (*models.Identity, error)
}

// Authenticated guards routes behind a valid session token, read from the
// token cookie the login handler sets or from a bearer Authorization header.
func Authenticated(validator TokenValidator, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		identity, err := validator.ValidateToken(tokenString)
		if err != nil {
			logger.Warn("rejected session token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}

		c.Set(identityKey, *identity)
		c.Next()
	}
}

// IdentityFrom returns the authenticated identity stored by Authenticated.
func IdentityFrom(c *gin.Context) models.Identity {
	if value, ok := c.Get(identityKey); ok {
		if identity, ok := value.(models.Identity); ok {
			return identity
		}
	}
	return models.Identity{}
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
