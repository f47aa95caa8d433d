package provider

import (
	"context"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infinityqr-go/internal/model"
)

func TestLocalQRGenerate(t *testing.T) {
	p := NewLocalQR()

	record, err := p.Generate(context.Background(), "https://example.com", model.QROptions{Size: 100})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", record.URL)
	assert.Equal(t, 100, record.Size)
	assert.Equal(t, "png", record.Format)
	require.True(t, strings.HasPrefix(record.ImageURL, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(record.ImageURL, "data:image/png;base64,"))
	require.NoError(t, err)

	img, err := png.Decode(strings.NewReader(string(raw)))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}

func TestLocalQRIsDeterministic(t *testing.T) {
	p := NewLocalQR()

	first, err := p.Generate(context.Background(), "https://example.com", model.QROptions{Size: 100})
	require.NoError(t, err)
	second, err := p.Generate(context.Background(), "https://example.com", model.QROptions{Size: 100})
	require.NoError(t, err)

	assert.Equal(t, first.ImageURL, second.ImageURL)

	other, err := p.Generate(context.Background(), "https://other.example", model.QROptions{Size: 100})
	require.NoError(t, err)
	assert.NotEqual(t, first.ImageURL, other.ImageURL)
}

func TestLocalQRDefaultsSize(t *testing.T) {
	p := NewLocalQR()

	record, err := p.Generate(context.Background(), "https://example.com", model.QROptions{})
	require.NoError(t, err)
	assert.Equal(t, 300, record.Size)
}
