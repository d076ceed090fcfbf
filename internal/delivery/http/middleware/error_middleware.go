package middleware

import (
	"errors"
	"net/http"

	"hrms-backend/internal/delivery/http/response"
	"hrms-backend/pkg/apperror"
	"hrms-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code == http.StatusInternalServerError && appErr.Err != nil {
					logger.Log.Error("request failed", "path", c.Request.URL.Path, "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			} else {
				// Never expose internal error detail to clients; log it
				// server-side and send a generic message.
				logger.Log.Error("unhandled error", "path", c.Request.URL.Path, "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred", nil)
			}
		}
	}
}
