package middleware

import (
	"github.com/gin-gonic/gin"

	"infinityqr-go/internal/apperrors"
	"infinityqr-go/internal/service"
)

// AuthRequired gates dashboard-style routes purely on session presence.
// Tokens are never verified, only their existence matters.
func AuthRequired(sessions *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.IsAuthenticated() {
			_ = c.Error(apperrors.UnauthorizedError())
			c.Abort()
			return
		}
		c.Next()
	}
}
