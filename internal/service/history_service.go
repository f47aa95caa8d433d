package service

import (
	"go.uber.org/zap"

	"infinityqr-go/constant"
	"infinityqr-go/internal/model"
	"infinityqr-go/internal/storage"
)

// DefaultMaxHistoryItems caps each history list when config does not say
// otherwise.
const DefaultMaxHistoryItems = 10

// HistoryService keeps the bounded, de-duplicated per-feature result history
// on top of the key-value store. Mutations happen only on successful
// orchestration results or explicit deletion; entries leave only through cap
// eviction or removal, never by age.
type HistoryService struct {
	store    storage.Store
	maxItems int
}

func NewHistoryService(store storage.Store, maxItems int) *HistoryService {
	if maxItems <= 0 {
		maxItems = DefaultMaxHistoryItems
	}
	return &HistoryService{store: store, maxItems: maxItems}
}

// AddLink prepends the record, evicting any prior entry with the same longUrl
// and everything beyond the cap. A storage failure is logged, not surfaced:
// the shortening itself already succeeded.
func (h *HistoryService) AddLink(link model.ShortenedLink) {
	history := h.Links()

	filtered := make([]model.ShortenedLink, 0, len(history)+1)
	filtered = append(filtered, link)
	for _, item := range history {
		if item.LongURL == link.LongURL {
			continue
		}
		filtered = append(filtered, item)
	}
	if len(filtered) > h.maxItems {
		filtered = filtered[:h.maxItems]
	}

	if !h.store.Set(constant.URLHistoryKey, filtered) {
		zap.L().Warn("Failed to save history", zap.String("feature", constant.FeatureLinks))
	}
}

// Links returns the link history, most recent first.
func (h *HistoryService) Links() []model.ShortenedLink {
	history := []model.ShortenedLink{}
	h.store.Get(constant.URLHistoryKey, &history)
	return history
}

// RemoveLink drops the entry with the given id, reporting whether the list
// was persisted.
func (h *HistoryService) RemoveLink(id string) bool {
	history := h.Links()
	filtered := history[:0]
	for _, item := range history {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	return h.store.Set(constant.URLHistoryKey, filtered)
}

// ClearLinks removes the underlying key entirely.
func (h *HistoryService) ClearLinks() bool {
	return h.store.Remove(constant.URLHistoryKey)
}

// AddQR mirrors AddLink for QR records, de-duplicating on the encoded URL.
func (h *HistoryService) AddQR(record model.QRCodeRecord) {
	history := h.QRCodes()

	filtered := make([]model.QRCodeRecord, 0, len(history)+1)
	filtered = append(filtered, record)
	for _, item := range history {
		if item.URL == record.URL {
			continue
		}
		filtered = append(filtered, item)
	}
	if len(filtered) > h.maxItems {
		filtered = filtered[:h.maxItems]
	}

	if !h.store.Set(constant.QRHistoryKey, filtered) {
		zap.L().Warn("Failed to save history", zap.String("feature", constant.FeatureQRCodes))
	}
}

// QRCodes returns the QR history, most recent first.
func (h *HistoryService) QRCodes() []model.QRCodeRecord {
	history := []model.QRCodeRecord{}
	h.store.Get(constant.QRHistoryKey, &history)
	return history
}

func (h *HistoryService) RemoveQR(id string) bool {
	history := h.QRCodes()
	filtered := history[:0]
	for _, item := range history {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	return h.store.Set(constant.QRHistoryKey, filtered)
}

func (h *HistoryService) ClearQRCodes() bool {
	return h.store.Remove(constant.QRHistoryKey)
}

// IncrementDownloads bumps the downloads counter of one QR record. The
// read-modify-write is unsynchronized across processes, which matches the
// single-profile ownership of the store.
func (h *HistoryService) IncrementDownloads(id string) (int64, bool) {
	history := h.QRCodes()
	for i := range history {
		if history[i].ID != id {
			continue
		}
		history[i].Downloads++
		if !h.store.Set(constant.QRHistoryKey, history) {
			return 0, false
		}
		return history[i].Downloads, true
	}
	return 0, false
}
