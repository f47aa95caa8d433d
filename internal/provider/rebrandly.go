package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"infinityqr-go/internal/model"
)

// RebrandlyConfig comes straight from config.yaml; the endpoint shape is the
// provider's contract, not ours.
type RebrandlyConfig struct {
	BaseURL    string // e.g. https://api.rebrandly.com/v1
	APIKey     string
	LinkDomain string // e.g. rebrand.ly
}

// Rebrandly is the primary, authenticated shortener.
type Rebrandly struct {
	cfg    RebrandlyConfig
	client *http.Client
}

func NewRebrandly(cfg RebrandlyConfig, client *http.Client) *Rebrandly {
	if client == nil {
		client = http.DefaultClient
	}
	return &Rebrandly{cfg: cfg, client: client}
}

func (r *Rebrandly) Name() string { return "rebrandly" }

type rebrandlyRequest struct {
	Destination string           `json:"destination"`
	Domain      rebrandlyDomain  `json:"domain"`
	Slashtag    string           `json:"slashtag,omitempty"`
}

type rebrandlyDomain struct {
	FullName string `json:"fullName"`
}

type rebrandlyResponse struct {
	ID        string `json:"id"`
	ShortURL  string `json:"shortUrl"`
	Slashtag  string `json:"slashtag"`
	CreatedAt string `json:"createdAt"`
	Clicks    int64  `json:"clicks"`
}

func (r *Rebrandly) Shorten(ctx context.Context, longURL, alias string) (*model.ShortenedLink, error) {
	body, err := json.Marshal(rebrandlyRequest{
		Destination: longURL,
		Domain:      rebrandlyDomain{FullName: r.cfg.LinkDomain},
		Slashtag:    alias,
	})
	if err != nil {
		return nil, newError(r.Name(), ReasonBadBody, 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.BaseURL+"/links", bytes.NewReader(body))
	if err != nil {
		return nil, newError(r.Name(), ReasonNetwork, 0, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", r.cfg.APIKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, newError(r.Name(), ReasonNetwork, 0, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, newError(r.Name(), ReasonUnauthorized, resp.StatusCode, nil)
	case resp.StatusCode == http.StatusConflict:
		return nil, newError(r.Name(), ReasonAliasTaken, resp.StatusCode, nil)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, newError(r.Name(), ReasonBadStatus, resp.StatusCode, nil)
	}

	var data rebrandlyResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, newError(r.Name(), ReasonBadBody, resp.StatusCode, err)
	}
	if data.ShortURL == "" {
		return nil, newError(r.Name(), ReasonBadBody, resp.StatusCode, nil)
	}

	id := data.ID
	if id == "" {
		id = newRecordID()
	}
	createdAt := data.CreatedAt
	if createdAt == "" {
		createdAt = nowISO()
	}

	return &model.ShortenedLink{
		ID:          id,
		LongURL:     longURL,
		ShortURL:    data.ShortURL,
		ShortCode:   data.Slashtag,
		CustomAlias: alias,
		CreatedAt:   createdAt,
		Clicks:      data.Clicks,
	}, nil
}
