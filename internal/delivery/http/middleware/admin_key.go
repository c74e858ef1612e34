package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminKeyMiddleware guards the back-office import/sweep routes. The key is
// stored as a bcrypt hash in config so the plaintext never lives on the
// server side.
type AdminKeyMiddleware struct {
	keyHash string
}

func NewAdminKeyMiddleware(keyHash string) *AdminKeyMiddleware {
	return &AdminKeyMiddleware{keyHash: keyHash}
}

func (m *AdminKeyMiddleware) RequireAdminKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-API-Key")
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing API key"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(m.keyHash), []byte(key)); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
			return
		}
		c.Next()
	}
}
