package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"infinityqr-go/internal/apperrors"
	"infinityqr-go/internal/model"
	"infinityqr-go/internal/provider"
	"infinityqr-go/pkg/utils"
)

// DefaultAttemptTimeout bounds one provider attempt.
const DefaultAttemptTimeout = 10 * time.Second

// ShortenService orchestrates the shortening fallback chain: providers are
// tried strictly in order, one at a time, each attempt bounded by its own
// timeout; the first canonical record wins and is committed to history.
type ShortenService struct {
	providers      []provider.Shortener
	history        *HistoryService
	attemptTimeout time.Duration
}

func NewShortenService(providers []provider.Shortener, history *HistoryService, attemptTimeout time.Duration) *ShortenService {
	if attemptTimeout <= 0 {
		attemptTimeout = DefaultAttemptTimeout
	}
	return &ShortenService{
		providers:      providers,
		history:        history,
		attemptTimeout: attemptTimeout,
	}
}

// Shorten validates, then walks the provider chain. Validation failures are
// terminal before any network call; provider failures only advance the chain.
func (s *ShortenService) Shorten(ctx context.Context, longURL, alias string) (*model.ShortenedLink, error) {
	longURL = utils.NormalizeURL(longURL)
	if err := utils.ValidateTargetURL(longURL); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}
	if err := utils.ValidateAlias(alias); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	var failures []error
	for _, p := range s.providers {
		link, err := s.attempt(ctx, p, longURL, alias)
		if err != nil {
			zap.L().Warn("Shortening provider failed",
				zap.String("provider", p.Name()),
				zap.String("long_url", longURL),
				zap.Error(err))
			failures = append(failures, err)
			continue
		}

		s.history.AddLink(*link)
		return link, nil
	}

	return nil, apperrors.OrchestrationError("error.all_providers_failed", errors.Join(failures...))
}

func (s *ShortenService) attempt(ctx context.Context, p provider.Shortener, longURL, alias string) (*model.ShortenedLink, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, s.attemptTimeout)
	defer cancel()
	return p.Shorten(attemptCtx, longURL, alias)
}
