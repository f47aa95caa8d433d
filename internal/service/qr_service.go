package service

import (
	"context"
	"errors"
	"slices"
	"time"

	"go.uber.org/zap"

	"infinityqr-go/internal/apperrors"
	"infinityqr-go/internal/model"
	"infinityqr-go/internal/provider"
	"infinityqr-go/pkg/utils"
)

// QRService orchestrates the QR generation chain the same way ShortenService
// walks the shortening one.
type QRService struct {
	providers      []provider.QRGenerator
	history        *HistoryService
	attemptTimeout time.Duration
}

func NewQRService(providers []provider.QRGenerator, history *HistoryService, attemptTimeout time.Duration) *QRService {
	if attemptTimeout <= 0 {
		attemptTimeout = DefaultAttemptTimeout
	}
	return &QRService{
		providers:      providers,
		history:        history,
		attemptTimeout: attemptTimeout,
	}
}

// Generate validates the payload and options, then tries each configured QR
// backend in order.
func (s *QRService) Generate(ctx context.Context, target string, opts model.QROptions) (*model.QRCodeRecord, error) {
	target = utils.NormalizeURL(target)
	if err := utils.ValidateTargetURL(target); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	if opts.Size <= 0 {
		opts.Size = 300
	}
	if opts.Format == "" {
		opts.Format = "png"
	}
	if !slices.Contains(model.QRFormats, opts.Format) {
		return nil, apperrors.ValidationError("error.qr_format_invalid")
	}
	if opts.Margin <= 0 {
		opts.Margin = 4
	}
	if opts.DarkColor == "" {
		opts.DarkColor = "#000000"
	}
	if opts.LightColor == "" {
		opts.LightColor = "#FFFFFF"
	}

	var failures []error
	for _, p := range s.providers {
		record, err := s.attempt(ctx, p, target, opts)
		if err != nil {
			zap.L().Warn("QR provider failed",
				zap.String("provider", p.Name()),
				zap.String("url", target),
				zap.Error(err))
			failures = append(failures, err)
			continue
		}

		s.history.AddQR(*record)
		return record, nil
	}

	return nil, apperrors.OrchestrationError("error.qr_generation_failed", errors.Join(failures...))
}

func (s *QRService) attempt(ctx context.Context, p provider.QRGenerator, target string, opts model.QROptions) (*model.QRCodeRecord, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, s.attemptTimeout)
	defer cancel()
	return p.Generate(attemptCtx, target, opts)
}
