package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebrandlyShorten(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/links", r.URL.Path)
		assert.Equal(t, "secret-key", r.Header.Get("apikey"))

		var req struct {
			Destination string `json:"destination"`
			Domain      struct {
				FullName string `json:"fullName"`
			} `json:"domain"`
			Slashtag string `json:"slashtag"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://example.com", req.Destination)
		assert.Equal(t, "rebrand.ly", req.Domain.FullName)
		assert.Equal(t, "my-alias", req.Slashtag)

		json.NewEncoder(w).Encode(map[string]any{
			"id":        "lk1",
			"shortUrl":  "https://rebrand.ly/my-alias",
			"slashtag":  "my-alias",
			"createdAt": "2025-01-01T00:00:00Z",
			"clicks":    0,
		})
	}))
	defer srv.Close()

	p := NewRebrandly(RebrandlyConfig{BaseURL: srv.URL, APIKey: "secret-key", LinkDomain: "rebrand.ly"}, srv.Client())

	link, err := p.Shorten(context.Background(), "https://example.com", "my-alias")
	require.NoError(t, err)
	assert.Equal(t, "lk1", link.ID)
	assert.Equal(t, "https://rebrand.ly/my-alias", link.ShortURL)
	assert.Equal(t, "my-alias", link.ShortCode)
	assert.Equal(t, "my-alias", link.CustomAlias)
	assert.Equal(t, "2025-01-01T00:00:00Z", link.CreatedAt)
}

func TestRebrandlyUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := NewRebrandly(RebrandlyConfig{BaseURL: srv.URL}, srv.Client())

	_, err := p.Shorten(context.Background(), "https://example.com", "")
	require.Error(t, err)

	var provErr *Error
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "rebrandly", provErr.Provider)
	assert.Equal(t, ReasonUnauthorized, provErr.Reason)
	assert.Equal(t, http.StatusUnauthorized, provErr.Status)
}

func TestRebrandlyAliasTaken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	p := NewRebrandly(RebrandlyConfig{BaseURL: srv.URL}, srv.Client())

	_, err := p.Shorten(context.Background(), "https://example.com", "taken")
	var provErr *Error
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, ReasonAliasTaken, provErr.Reason)
}

func TestRebrandlyEmptyShortURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": "lk1"})
	}))
	defer srv.Close()

	p := NewRebrandly(RebrandlyConfig{BaseURL: srv.URL}, srv.Client())

	_, err := p.Shorten(context.Background(), "https://example.com", "")
	var provErr *Error
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, ReasonBadBody, provErr.Reason)
}

func TestRebrandlyFillsMissingFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"shortUrl": "https://rebrand.ly/xyz"})
	}))
	defer srv.Close()

	p := NewRebrandly(RebrandlyConfig{BaseURL: srv.URL}, srv.Client())

	link, err := p.Shorten(context.Background(), "https://example.com", "")
	require.NoError(t, err)
	assert.NotEmpty(t, link.ID)
	assert.NotEmpty(t, link.CreatedAt)
}
