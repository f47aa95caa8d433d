package provider

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"infinityqr-go/internal/model"
	"infinityqr-go/pkg/utils"
)

// TinyURLConfig configures the unauthenticated GET-based fallback.
type TinyURLConfig struct {
	BaseURL     string // e.g. https://tinyurl.com/api-create.php
	BrandDomain string // domain used for locally branded short URLs
}

// TinyURL shortens without auth. The provider itself cannot honor custom
// aliases, so the client synthesizes a branded short URL over a local
// shortcode mapping and keeps the provider's URL for reference.
type TinyURL struct {
	cfg      TinyURLConfig
	client   *http.Client
	mappings MappingStore
}

func NewTinyURL(cfg TinyURLConfig, client *http.Client, mappings MappingStore) *TinyURL {
	if client == nil {
		client = http.DefaultClient
	}
	return &TinyURL{cfg: cfg, client: client, mappings: mappings}
}

func (t *TinyURL) Name() string { return "tinyurl" }

func (t *TinyURL) Shorten(ctx context.Context, longURL, alias string) (*model.ShortenedLink, error) {
	endpoint := t.cfg.BaseURL + "?url=" + url.QueryEscape(longURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, newError(t.Name(), ReasonNetwork, 0, err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, newError(t.Name(), ReasonNetwork, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newError(t.Name(), ReasonBadStatus, resp.StatusCode, nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return nil, newError(t.Name(), ReasonBadBody, resp.StatusCode, err)
	}
	actualShortURL := strings.TrimSpace(string(body))
	if actualShortURL == "" {
		return nil, newError(t.Name(), ReasonBadBody, resp.StatusCode, nil)
	}

	return synthesizeLink(ctx, t.mappings, t.cfg.BrandDomain, longURL, alias, actualShortURL), nil
}

// synthesizeLink builds a branded short URL over a local shortcode mapping.
// Shared with the no-network local fallback so both paths generate identical
// records.
func synthesizeLink(ctx context.Context, mappings MappingStore, brandDomain, longURL, alias, actualShortURL string) *model.ShortenedLink {
	shortCode := alias
	if shortCode == "" {
		shortCode = utils.GenerateShortCode()
	}
	shortURL := "https://" + brandDomain + "/" + shortCode

	// A lost mapping only degrades the redirect simulation; the shortening
	// result itself stands.
	if mappings != nil {
		if err := mappings.SaveMapping(ctx, shortCode, longURL); err != nil {
			zap.L().Warn("Failed to store redirect mapping",
				zap.String("short_code", shortCode),
				zap.Error(err))
		}
	}

	return &model.ShortenedLink{
		ID:             newRecordID(),
		LongURL:        longURL,
		ShortURL:       shortURL,
		ShortCode:      shortCode,
		CustomAlias:    alias,
		ActualShortURL: actualShortURL,
		CreatedAt:      nowISO(),
		Clicks:         0,
	}
}
