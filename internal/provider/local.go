package provider

import (
	"context"

	"infinityqr-go/internal/model"
)

// LocalShortener synthesizes a short URL without touching the network,
// exactly like TinyURL's branding step. It is the last link of the chain and
// never fails.
type LocalShortener struct {
	brandDomain string
	mappings    MappingStore
}

func NewLocalShortener(brandDomain string, mappings MappingStore) *LocalShortener {
	return &LocalShortener{brandDomain: brandDomain, mappings: mappings}
}

func (l *LocalShortener) Name() string { return "local" }

func (l *LocalShortener) Shorten(ctx context.Context, longURL, alias string) (*model.ShortenedLink, error) {
	return synthesizeLink(ctx, l.mappings, l.brandDomain, longURL, alias, ""), nil
}
