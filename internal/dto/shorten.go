package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"infinityqr-go/pkg/utils"
)

// RegisterCustomValidators adds the alias rule to gin's validator engine.
// Call once during startup.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("alias", func(fl validator.FieldLevel) bool {
			return utils.IsValidAlias(fl.Field().String())
		})
	}
}

// ShortenRequest creates a shortened link. The URL is normalized before
// validation, so a bare domain like example.com is accepted here and
// rejected, if at all, by the orchestrator.
type ShortenRequest struct {
	LongURL     string `json:"longUrl" binding:"required,max=2048"`
	CustomAlias string `json:"customAlias" binding:"omitempty,alias,max=32"`
}

// Validate mirrors the binding rules for callers outside gin.
func (r *ShortenRequest) Validate() error {
	if err := utils.ValidateTargetURL(utils.NormalizeURL(r.LongURL)); err != nil {
		return err
	}
	return utils.ValidateAlias(r.CustomAlias)
}

// QRRequest creates a QR code.
type QRRequest struct {
	URL    string `json:"url" binding:"required,max=2048"`
	Size   int    `json:"size" binding:"omitempty,min=64,max=1000"`
	Format string `json:"format" binding:"omitempty,oneof=png svg jpg"`
}
