package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"infinityqr-go/internal/apperrors"
	"infinityqr-go/internal/dto"
	"infinityqr-go/internal/i18n"
	"infinityqr-go/internal/model"
	"infinityqr-go/internal/service"
	"infinityqr-go/response"
)

// PreferencesHandler exposes the stored profile settings.
type PreferencesHandler struct {
	prefs *service.PreferencesService
}

func NewPreferencesHandler(prefs *service.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{prefs: prefs}
}

func (h *PreferencesHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, response.OK(h.prefs.Get(), "success"))
}

func (h *PreferencesHandler) Update(c *gin.Context) {
	var req dto.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.L().Warn("Request body binding failed",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		_ = c.Error(apperrors.InvalidRequestErrorDefault())
		return
	}

	prefs := model.Preferences{
		Theme:         req.Theme,
		Language:      req.Language,
		Notifications: req.Notifications,
		AutoCopy:      req.AutoCopy,
		QRSize:        req.QRSize,
		QRFormat:      req.QRFormat,
		ShowHistory:   req.ShowHistory,
	}
	if !h.prefs.Update(prefs) {
		_ = c.Error(apperrors.SystemErrorDefault())
		return
	}

	c.JSON(http.StatusOK, response.OK(prefs, i18n.T(c.Request.Context(), "success.preferences_saved", nil)))
}
