package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				var detail interface{}
				if appErr.Detail != "" {
					detail = appErr.Detail
				}
				response.Error(c, appErr.Code, appErr.Message, detail)
			} else {
				// Never expose internal error details to clients; log
				// server-side and send a generic message.
				logger.Log.Error("Internal server error", "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
