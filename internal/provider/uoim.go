package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"infinityqr-go/internal/model"
)

// UoImConfig configures the secondary unauthenticated fallback.
type UoImConfig struct {
	BaseURL string // e.g. https://uo.im/api/1.1/uo
}

// UoIm is a yourls-style JSON shortener queried over GET.
type UoIm struct {
	cfg    UoImConfig
	client *http.Client
}

func NewUoIm(cfg UoImConfig, client *http.Client) *UoIm {
	if client == nil {
		client = http.DefaultClient
	}
	return &UoIm{cfg: cfg, client: client}
}

func (u *UoIm) Name() string { return "uoim" }

type uoimResponse struct {
	ShortenedURL string `json:"shortenedURL"`
}

func (u *UoIm) Shorten(ctx context.Context, longURL, alias string) (*model.ShortenedLink, error) {
	params := url.Values{}
	params.Set("action", "shorturl")
	params.Set("format", "json")
	params.Set("url", longURL)
	if alias != "" {
		params.Set("keyword", alias)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, newError(u.Name(), ReasonNetwork, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, newError(u.Name(), ReasonNetwork, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newError(u.Name(), ReasonBadStatus, resp.StatusCode, nil)
	}

	var data uoimResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, newError(u.Name(), ReasonBadBody, resp.StatusCode, err)
	}
	if data.ShortenedURL == "" {
		return nil, newError(u.Name(), ReasonBadBody, resp.StatusCode, nil)
	}

	shortCode := data.ShortenedURL[strings.LastIndex(data.ShortenedURL, "/")+1:]

	return &model.ShortenedLink{
		ID:          newRecordID(),
		LongURL:     longURL,
		ShortURL:    data.ShortenedURL,
		ShortCode:   shortCode,
		CustomAlias: alias,
		CreatedAt:   nowISO(),
		Clicks:      0,
	}, nil
}
