package middleware

import (
	"strings"

	"farmshop/api/response"
	userapp "farmshop/application/user"
	"farmshop/domain/user"
	apperrors "farmshop/pkg/errors"

	"github.com/gin-gonic/gin"
)

// UserKey gin context key holding the authenticated *user.User.
const UserKey = "auth_user"

// Auth resolves the bearer token to an account and stores it in the
// request context. Requests without a valid token are rejected.
func Auth(users *userapp.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.HandleAppError(c, apperrors.Unauthorized("missing bearer token"))
			c.Abort()
			return
		}

		account, err := users.Authenticate(c.Request.Context(), token)
		if err != nil {
			response.HandleAppError(c, err)
			c.Abort()
			return
		}

		c.Set(UserKey, account)
		c.Next()
	}
}

// AdminRequired rejects non-admin accounts. Must run after Auth.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		account := CurrentUser(c)
		if account == nil || !account.IsAdmin() {
			response.HandleAppError(c, apperrors.Forbidden("admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated account, or nil outside an
// authenticated route.
func CurrentUser(c *gin.Context) *user.User {
	if value, exists := c.Get(UserKey); exists {
		if account, ok := value.(*user.User); ok {
			return account
		}
	}
	return nil
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
