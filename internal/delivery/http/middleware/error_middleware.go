package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kodig3618/Job-Tracker/internal/delivery/http/response"
	"github.com/kodig3618/Job-Tracker/pkg/apperror"
)

// ErrorHandler converts errors appended to the gin context into the
// standard envelope. Every failure surfaces as a user-visible message; none
// halts the application.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					slog.Error("request failed", "code", appErr.Code, "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// never expose internal error details to clients
				slog.Error("unhandled error", "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
