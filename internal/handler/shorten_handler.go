package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"infinityqr-go/internal/apperrors"
	"infinityqr-go/internal/dto"
	"infinityqr-go/internal/i18n"
	"infinityqr-go/internal/service"
	"infinityqr-go/response"
)

// ShortenHandler exposes the shortening orchestrator and the alias
// suggestion helper.
type ShortenHandler struct {
	shorten     *service.ShortenService
	suggestions *service.SuggestionService
}

func NewShortenHandler(shorten *service.ShortenService, suggestions *service.SuggestionService) *ShortenHandler {
	return &ShortenHandler{shorten: shorten, suggestions: suggestions}
}

func (h *ShortenHandler) Create(c *gin.Context) {
	var req dto.ShortenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.L().Warn("Request body binding failed",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		_ = c.Error(apperrors.InvalidRequestErrorDefault())
		return
	}

	link, err := h.shorten.Shorten(c.Request.Context(), req.LongURL, req.CustomAlias)
	if err != nil {
		zap.L().Warn("Shortening failed",
			zap.Error(err),
			zap.String("long_url", req.LongURL),
			zap.String("custom_alias", req.CustomAlias),
		)
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response.OK(link, i18n.T(c.Request.Context(), "success.url_shortened", nil)))
}

func (h *ShortenHandler) SuggestAliases(c *gin.Context) {
	rawURL := c.Query("url")
	suggestions, err := h.suggestions.Suggest(rawURL)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response.OK(suggestions, "success"))
}
