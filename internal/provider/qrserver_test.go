package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infinityqr-go/internal/model"
)

func TestQRServerGenerate(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte{0x89, 'P', 'N', 'G'})
	}))
	defer srv.Close()

	p := NewQRServer(QRServerConfig{BaseURL: srv.URL}, srv.Client())

	record, err := p.Generate(context.Background(), "https://example.com", model.QROptions{
		Size:       300,
		Format:     "png",
		Margin:     4,
		DarkColor:  "#000000",
		LightColor: "#FFFFFF",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"300x300"}, gotQuery["size"])
	assert.Equal(t, []string{"https://example.com"}, gotQuery["data"])
	assert.Equal(t, []string{"png"}, gotQuery["format"])
	assert.Equal(t, []string{"000000"}, gotQuery["color"])
	assert.Equal(t, []string{"FFFFFF"}, gotQuery["bgcolor"])
	assert.Equal(t, []string{"1"}, gotQuery["qzone"])

	assert.Contains(t, record.ImageURL, srv.URL)
	assert.Equal(t, 300, record.Size)
	assert.Equal(t, "png", record.Format)
}

func TestQRServerRejectsNonImageResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>error</html>"))
	}))
	defer srv.Close()

	p := NewQRServer(QRServerConfig{BaseURL: srv.URL}, srv.Client())

	_, err := p.Generate(context.Background(), "https://example.com", model.QROptions{Size: 300, Format: "png"})
	var provErr *Error
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "qrserver", provErr.Provider)
	assert.Equal(t, ReasonBadBody, provErr.Reason)
}

func TestQRServerBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewQRServer(QRServerConfig{BaseURL: srv.URL}, srv.Client())

	_, err := p.Generate(context.Background(), "https://example.com", model.QROptions{Size: 300, Format: "png"})
	var provErr *Error
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, ReasonBadStatus, provErr.Reason)
}

func TestQRServerProbeTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	p := NewQRServer(QRServerConfig{BaseURL: srv.URL, ProbeTimeout: 50 * time.Millisecond}, srv.Client())

	start := time.Now()
	_, err := p.Generate(context.Background(), "https://example.com", model.QROptions{Size: 300, Format: "png"})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)

	var provErr *Error
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, ReasonNetwork, provErr.Reason)
}
