package middleware

import (
	"errors"
	"net/http"

	"ahkii-burger-backend/internal/delivery/http/response"
	"ahkii-burger-backend/pkg/apperror"
	"ahkii-burger-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors appended to the context into the standard
// response envelope. Internal details (wrapped transport/database errors)
// are logged server-side and never sent to the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("request failed",
					"path", c.Request.URL.Path,
					"code", appErr.Code,
					"error", appErr.Err.Error(),
				)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		logger.Log.Error("unexpected error", "path", c.Request.URL.Path, "error", err.Error())
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
