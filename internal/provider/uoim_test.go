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

func TestUoImShorten(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "shorturl", q.Get("action"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "https://example.com", q.Get("url"))
		assert.Equal(t, "my-alias", q.Get("keyword"))

		json.NewEncoder(w).Encode(map[string]string{"shortenedURL": "https://uo.im/my-alias"})
	}))
	defer srv.Close()

	p := NewUoIm(UoImConfig{BaseURL: srv.URL}, srv.Client())

	link, err := p.Shorten(context.Background(), "https://example.com", "my-alias")
	require.NoError(t, err)
	assert.Equal(t, "https://uo.im/my-alias", link.ShortURL)
	assert.Equal(t, "my-alias", link.ShortCode)
}

func TestUoImOmitsKeywordWithoutAlias(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasKeyword := r.URL.Query()["keyword"]
		assert.False(t, hasKeyword)
		json.NewEncoder(w).Encode(map[string]string{"shortenedURL": "https://uo.im/x9z"})
	}))
	defer srv.Close()

	p := NewUoIm(UoImConfig{BaseURL: srv.URL}, srv.Client())

	link, err := p.Shorten(context.Background(), "https://example.com", "")
	require.NoError(t, err)
	assert.Equal(t, "x9z", link.ShortCode)
}

func TestUoImBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	p := NewUoIm(UoImConfig{BaseURL: srv.URL}, srv.Client())

	_, err := p.Shorten(context.Background(), "https://example.com", "")
	var provErr *Error
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "uoim", provErr.Provider)
	assert.Equal(t, ReasonBadBody, provErr.Reason)
}

func TestUoImMissingShortenedURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "fail"})
	}))
	defer srv.Close()

	p := NewUoIm(UoImConfig{BaseURL: srv.URL}, srv.Client())

	_, err := p.Shorten(context.Background(), "https://example.com", "")
	var provErr *Error
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, ReasonBadBody, provErr.Reason)
}
