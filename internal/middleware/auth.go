package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Abdelrhman012/parking-reservations-system/internal/dto"
	"github.com/Abdelrhman012/parking-reservations-system/internal/service"
	"github.com/Abdelrhman012/parking-reservations-system/pkg/response"
)

// userKey is the context key for the authenticated user
const userKey = "auth_user"

// Authenticate resolves the bearer token, if any, and attaches the user to
// the request context. Requests without a valid token pass through
// unauthenticated; role enforcement happens in RequireRole.
func Authenticate(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		user, err := auth.VerifyToken(c.Request.Context(), token)
		if err == nil {
			c.Set(userKey, user)
		}
		c.Next()
	}
}

// RequireRole aborts with 403 unless the request carries a user of the given
// role
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetUser(c)
		if user == nil || user.Role != role {
			response.Forbidden(c, "Forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUser returns the authenticated user from context; nil if anonymous
func GetUser(c *gin.Context) *dto.UserPayload {
	if v, exists := c.Get(userKey); exists {
		if user, ok := v.(*dto.UserPayload); ok {
			return user
		}
	}
	return nil
}
