package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"infinityqr-go/internal/apperrors"
	"infinityqr-go/internal/i18n"
	"infinityqr-go/response"
)

// GlobalErrorMiddleware turns AppErrors pushed through c.Error into localized
// envelope responses. Anything else collapses to a generic 500.
func GlobalErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		for _, err := range c.Errors {
			var appErr *apperrors.AppError
			if errors.As(err.Err, &appErr) {
				message := i18n.T(c.Request.Context(), appErr.Message, nil)
				c.AbortWithStatusJSON(appErr.Code, response.Error(message))
				return
			}
		}

		message := i18n.T(c.Request.Context(), "error.system", nil)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(message))
	}
}
