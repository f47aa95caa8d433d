package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infinityqr-go/internal/model"
)

func TestQRCodeUKProbesEndpointsInOrder(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		assert.Equal(t, "Bearer uk-key", r.Header.Get("Authorization"))

		if r.URL.Path != "/api/create" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"qr_code_url": "https://qrcode.example/img.png"})
	}))
	defer srv.Close()

	p := NewQRCodeUK(QRCodeUKConfig{
		BaseURL:   srv.URL,
		APIKey:    "uk-key",
		Endpoints: []string{"/api/v1/qrcode", "/api/create", "/api/generate"},
	}, srv.Client())

	record, err := p.Generate(context.Background(), "https://example.com", model.QROptions{Size: 300, Format: "png"})
	require.NoError(t, err)

	assert.Equal(t, "https://qrcode.example/img.png", record.ImageURL)
	assert.Equal(t, []string{"/api/v1/qrcode", "/api/create"}, paths, "probing stops at the first working endpoint")
}

func TestQRCodeUKAcceptsAlternateResponseKeys(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"imageUrl": "https://qrcode.example/alt.png"})
	}))
	defer srv.Close()

	p := NewQRCodeUK(QRCodeUKConfig{BaseURL: srv.URL, Endpoints: []string{"/api/qrcode"}}, srv.Client())

	record, err := p.Generate(context.Background(), "https://example.com", model.QROptions{Size: 300, Format: "png"})
	require.NoError(t, err)
	assert.Equal(t, "https://qrcode.example/alt.png", record.ImageURL)
}

func TestQRCodeUKAllEndpointsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewQRCodeUK(QRCodeUKConfig{BaseURL: srv.URL, Endpoints: []string{"/a", "/b"}}, srv.Client())

	_, err := p.Generate(context.Background(), "https://example.com", model.QROptions{Size: 300, Format: "png"})
	var provErr *Error
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "qrcodeuk", provErr.Provider)
	assert.Equal(t, ReasonBadStatus, provErr.Reason)
	assert.Equal(t, http.StatusNotFound, provErr.Status)
}

func TestQRCodeUKBodyWithoutImageURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer srv.Close()

	p := NewQRCodeUK(QRCodeUKConfig{BaseURL: srv.URL, Endpoints: []string{"/api/qrcode"}}, srv.Client())

	_, err := p.Generate(context.Background(), "https://example.com", model.QROptions{Size: 300, Format: "png"})
	var provErr *Error
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, ReasonBadBody, provErr.Reason)
}
