package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kodig3618/Job-Tracker/internal/delivery/http/response"
	"github.com/kodig3618/Job-Tracker/internal/domain"
	"github.com/kodig3618/Job-Tracker/pkg/token"
)

// AuthMiddleware resolves the bearer token to a username and attaches it to
// both the gin context and the request context, so usecases can read the
// session without any process-wide state.
func AuthMiddleware(tokens *token.Manager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else if cookie, err := c.Cookie("auth_token"); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "No active session", nil)
			c.Abort()
			return
		}

		username, err := tokens.Verify(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		// token subjects must still exist in the store
		if _, err := authUC.GetUser(c.Request.Context(), username); err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUsername), username)
		ctx := context.WithValue(c.Request.Context(), domain.KeyUsername, username)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
