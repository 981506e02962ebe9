// file: internal/server/middleware/basicauth.go
// version: 2.1.0
// guid: a1b2c3d4-e5f6-7a8b-9c0d-1e2f3a4b5c6d

package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const basicAuthRealm = `Basic realm="IPTC Organizer"`

// IsPasswordHash reports whether password is a bcrypt hash rather than a
// plain text secret.
func IsPasswordHash(password string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(password, prefix) {
			return true
		}
	}
	return false
}

// HashPassword returns the bcrypt hash to store as the basic auth password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func passwordMatches(given, want string) bool {
	if IsPasswordHash(want) {
		return bcrypt.CompareHashAndPassword([]byte(want), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(given), []byte(want)) == 1
}

// BasicAuth returns a Gin middleware that enforces HTTP Basic Authentication
// when username is non-empty. password may be plain text or a bcrypt hash.
// The health and metrics endpoints are exempt.
func BasicAuth(username, password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if username == "" {
			c.Next()
			return
		}

		switch c.Request.URL.Path {
		case "/api/v1/health", "/metrics":
			c.Next()
			return
		}

		user, pass, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", basicAuthRealm)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
		passMatch := passwordMatches(pass, password)

		if !userMatch || !passMatch {
			c.Header("WWW-Authenticate", basicAuthRealm)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Next()
	}
}
