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

// AuthHandler exposes the session gate: login, signup, logout and the
// current-session lookup.
type AuthHandler struct {
	sessions *service.SessionService
}

func NewAuthHandler(sessions *service.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.L().Warn("Request body binding failed",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		_ = c.Error(apperrors.InvalidRequestErrorDefault())
		return
	}

	session, err := h.sessions.Login(model.Identity{Name: req.Name, Email: req.Email}, req.RememberMe)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response.OK(session, i18n.T(c.Request.Context(), "success.logged_in", nil)))
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.L().Warn("Request body binding failed",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		_ = c.Error(apperrors.InvalidRequestErrorDefault())
		return
	}

	session, err := h.sessions.Signup(req.Name, req.Email, req.Password, req.RememberMe)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response.OK(session, i18n.T(c.Request.Context(), "success.signed_up", nil)))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Logout()
	c.JSON(http.StatusOK, response.OK[any](nil, i18n.T(c.Request.Context(), "success.logged_out", nil)))
}

func (h *AuthHandler) Me(c *gin.Context) {
	session, ok := h.sessions.CurrentUser()
	if !ok {
		_ = c.Error(apperrors.UnauthorizedError())
		return
	}

	c.JSON(http.StatusOK, response.OK(session, "success"))
}
