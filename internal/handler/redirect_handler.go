package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"infinityqr-go/internal/service"
)

// RedirectHandler resolves a short code and issues the browser redirect.
type RedirectHandler struct {
	redirects *service.RedirectService
}

func NewRedirectHandler(redirects *service.RedirectService) *RedirectHandler {
	return &RedirectHandler{redirects: redirects}
}

func (h *RedirectHandler) Resolve(c *gin.Context) {
	mapping, ok := h.redirects.Resolve(c.Request.Context(), c.Param("code"), c.ClientIP())
	if !ok {
		c.String(http.StatusNotFound, "short link not found")
		return
	}

	c.Redirect(http.StatusFound, mapping.TargetURL)
}
