package http

import (
	"net/http"
	"strings"

	"github.com/danielgruber/vending-store/internal/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	authHeaderName = "Authorization"

	AccountIDContextKey = "accountId"
	UsernameContextKey  = "username"
)

// NewAuthMiddleware validates the bearer token and stores the account
// identity in the request context for downstream handlers.
func NewAuthMiddleware(tokenParser jwt.TokenParser, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "missing authorization header"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid auth header"})
			return
		}

		claims, err := tokenParser.ParseToken(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid token"})
			return
		}

		accountID, err := uuid.Parse(claims.AccountID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "invalid token"})
			return
		}

		c.Set(AccountIDContextKey, accountID)
		c.Set(UsernameContextKey, claims.Username)
		c.Next()
	}
}

func accountIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(AccountIDContextKey)
	if !exists {
		return uuid.Nil, false
	}

	accountID, ok := value.(uuid.UUID)
	return accountID, ok
}

func usernameFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(UsernameContextKey)
	if !exists {
		return "", false
	}

	username, ok := value.(string)
	return username, ok
}
