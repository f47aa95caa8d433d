// Package provider contains one client per external shortening/QR service.
// Every client maps its service's response into the canonical record shape;
// every failure comes back as *Error so the orchestrator can advance along
// the fallback chain without inspecting provider internals.
package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"infinityqr-go/internal/model"
)

// Failure reasons. Only the reason class matters to the orchestrator; the
// cause is kept for diagnostics.
const (
	ReasonNetwork      = "network"
	ReasonBadStatus    = "bad_status"
	ReasonBadBody      = "bad_body"
	ReasonUnauthorized = "unauthorized"
	ReasonAliasTaken   = "alias_taken"
)

// Error is a recoverable per-provider failure. It never reaches the HTTP
// boundary directly; the orchestrator either recovers from it or folds the
// chain's failures into a terminal error.
type Error struct {
	Provider string
	Reason   string
	Status   int
	Cause    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("provider %s: %s (status %d)", e.Provider, e.Reason, e.Status)
	}
	return fmt.Sprintf("provider %s: %s", e.Provider, e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(provider, reason string, status int, cause error) *Error {
	return &Error{Provider: provider, Reason: reason, Status: status, Cause: cause}
}

// Shortener is one URL-shortening backend.
type Shortener interface {
	Name() string
	Shorten(ctx context.Context, longURL, alias string) (*model.ShortenedLink, error)
}

// QRGenerator is one QR image backend.
type QRGenerator interface {
	Name() string
	Generate(ctx context.Context, url string, opts model.QROptions) (*model.QRCodeRecord, error)
}

// MappingStore records a locally synthesized shortcode → destination mapping
// so the redirect simulator can resolve it later.
type MappingStore interface {
	SaveMapping(ctx context.Context, shortCode, targetURL string) error
}

func newRecordID() string {
	return uuid.NewString()
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
