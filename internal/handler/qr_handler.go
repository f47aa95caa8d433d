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

// QRHandler exposes QR code generation backed by the provider chain.
type QRHandler struct {
	qr      *service.QRService
	history *service.HistoryService
}

func NewQRHandler(qr *service.QRService, history *service.HistoryService) *QRHandler {
	return &QRHandler{qr: qr, history: history}
}

func (h *QRHandler) Create(c *gin.Context) {
	var req dto.QRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.L().Warn("Request body binding failed",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		_ = c.Error(apperrors.InvalidRequestErrorDefault())
		return
	}

	opts := model.QROptions{Size: req.Size, Format: req.Format}
	record, err := h.qr.Generate(c.Request.Context(), req.URL, opts)
	if err != nil {
		zap.L().Warn("QR generation failed",
			zap.Error(err),
			zap.String("url", req.URL),
		)
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response.OK(record, i18n.T(c.Request.Context(), "success.qr_generated", nil)))
}

// Download bumps the download counter for a stored QR record.
func (h *QRHandler) Download(c *gin.Context) {
	id := c.Param("id")
	count, ok := h.history.IncrementDownloads(id)
	if !ok {
		_ = c.Error(apperrors.WithCode(http.StatusNotFound, "error.qr_not_found"))
		return
	}

	c.JSON(http.StatusOK, response.OK(count, "success"))
}
