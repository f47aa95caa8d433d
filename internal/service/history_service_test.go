package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"infinityqr-go/internal/model"
	"infinityqr-go/internal/storage"
)

func link(id, longURL string) model.ShortenedLink {
	return model.ShortenedLink{ID: id, LongURL: longURL, ShortURL: "https://s.example/" + id}
}

func TestHistoryAddLinkPrepends(t *testing.T) {
	h := NewHistoryService(storage.NewMemoryStore(), 10)

	h.AddLink(link("1", "https://a.example"))
	h.AddLink(link("2", "https://b.example"))

	links := h.Links()
	assert.Len(t, links, 2)
	assert.Equal(t, "2", links[0].ID)
	assert.Equal(t, "1", links[1].ID)
}

func TestHistoryAddLinkDeduplicates(t *testing.T) {
	h := NewHistoryService(storage.NewMemoryStore(), 10)

	h.AddLink(link("1", "https://a.example"))
	h.AddLink(link("2", "https://b.example"))
	h.AddLink(link("3", "https://a.example")) // same destination, new record

	links := h.Links()
	assert.Len(t, links, 2)
	assert.Equal(t, "3", links[0].ID)
	assert.Equal(t, "2", links[1].ID)
}

func TestHistoryCapEvictsOldest(t *testing.T) {
	h := NewHistoryService(storage.NewMemoryStore(), 3)

	for i := 1; i <= 5; i++ {
		h.AddLink(link(fmt.Sprint(i), fmt.Sprintf("https://site%d.example", i)))
	}

	links := h.Links()
	assert.Len(t, links, 3)
	assert.Equal(t, "5", links[0].ID)
	assert.Equal(t, "3", links[2].ID)
}

func TestHistoryRemoveLink(t *testing.T) {
	h := NewHistoryService(storage.NewMemoryStore(), 10)

	h.AddLink(link("1", "https://a.example"))
	h.AddLink(link("2", "https://b.example"))

	assert.True(t, h.RemoveLink("1"))
	links := h.Links()
	assert.Len(t, links, 1)
	assert.Equal(t, "2", links[0].ID)

	// removing an unknown id leaves the list untouched
	assert.True(t, h.RemoveLink("nope"))
	assert.Len(t, h.Links(), 1)
}

func TestHistoryClearLinks(t *testing.T) {
	h := NewHistoryService(storage.NewMemoryStore(), 10)

	h.AddLink(link("1", "https://a.example"))
	assert.True(t, h.ClearLinks())
	assert.Empty(t, h.Links())
}

func qrRecord(id, url string) model.QRCodeRecord {
	return model.QRCodeRecord{ID: id, URL: url, ImageURL: "https://img.example/" + id, Format: "png"}
}

func TestHistoryQRDeduplicatesOnURL(t *testing.T) {
	h := NewHistoryService(storage.NewMemoryStore(), 10)

	h.AddQR(qrRecord("1", "https://a.example"))
	h.AddQR(qrRecord("2", "https://a.example"))

	records := h.QRCodes()
	assert.Len(t, records, 1)
	assert.Equal(t, "2", records[0].ID)
}

func TestHistoryIncrementDownloads(t *testing.T) {
	h := NewHistoryService(storage.NewMemoryStore(), 10)

	h.AddQR(qrRecord("1", "https://a.example"))

	count, ok := h.IncrementDownloads("1")
	assert.True(t, ok)
	assert.Equal(t, int64(1), count)

	count, ok = h.IncrementDownloads("1")
	assert.True(t, ok)
	assert.Equal(t, int64(2), count)

	_, ok = h.IncrementDownloads("missing")
	assert.False(t, ok)
}

func TestHistorySeparateFeatureLists(t *testing.T) {
	h := NewHistoryService(storage.NewMemoryStore(), 10)

	h.AddLink(link("1", "https://a.example"))
	h.AddQR(qrRecord("1", "https://a.example"))

	assert.True(t, h.ClearLinks())
	assert.Empty(t, h.Links())
	assert.Len(t, h.QRCodes(), 1)
}
