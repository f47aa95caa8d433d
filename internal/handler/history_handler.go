package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"infinityqr-go/internal/service"
	"infinityqr-go/response"
)

// HistoryHandler exposes the persisted link and QR histories.
type HistoryHandler struct {
	history *service.HistoryService
}

func NewHistoryHandler(history *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{history: history}
}

func (h *HistoryHandler) ListLinks(c *gin.Context) {
	c.JSON(http.StatusOK, response.OK(h.history.Links(), "success"))
}

func (h *HistoryHandler) RemoveLink(c *gin.Context) {
	h.history.RemoveLink(c.Param("id"))
	c.JSON(http.StatusOK, response.OK[any](nil, "success"))
}

func (h *HistoryHandler) ClearLinks(c *gin.Context) {
	h.history.ClearLinks()
	c.JSON(http.StatusOK, response.OK[any](nil, "success"))
}

func (h *HistoryHandler) ListQRCodes(c *gin.Context) {
	c.JSON(http.StatusOK, response.OK(h.history.QRCodes(), "success"))
}

func (h *HistoryHandler) RemoveQRCode(c *gin.Context) {
	h.history.RemoveQR(c.Param("id"))
	c.JSON(http.StatusOK, response.OK[any](nil, "success"))
}

func (h *HistoryHandler) ClearQRCodes(c *gin.Context) {
	h.history.ClearQRCodes()
	c.JSON(http.StatusOK, response.OK[any](nil, "success"))
}
