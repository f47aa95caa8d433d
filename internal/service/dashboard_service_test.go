package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infinityqr-go/internal/model"
	"infinityqr-go/internal/storage"
)

func TestDashboardSummary(t *testing.T) {
	db := newTestDB(t)
	history := NewHistoryService(storage.NewMemoryStore(), 10)

	history.AddLink(model.ShortenedLink{ID: "1", LongURL: "https://a.example"})
	history.AddLink(model.ShortenedLink{ID: "2", LongURL: "https://b.example"})
	history.AddQR(model.QRCodeRecord{ID: "1", URL: "https://a.example"})

	require.NoError(t, db.Create(&model.URLMapping{ShortCode: "abc123", TargetURL: "https://a.example", Clicks: 3}).Error)
	require.NoError(t, db.Create(&model.URLMapping{ShortCode: "def456", TargetURL: "https://b.example", Clicks: 2}).Error)

	svc := NewDashboardService(history, db)
	summary := svc.Summary(context.Background())

	assert.Equal(t, 2, summary.TotalLinks)
	assert.Equal(t, 1, summary.TotalQRCodes)
	assert.Equal(t, int64(2), summary.TotalMappings)
	assert.Equal(t, int64(5), summary.TotalClicks)
}

func TestDashboardSummaryEmpty(t *testing.T) {
	svc := NewDashboardService(NewHistoryService(storage.NewMemoryStore(), 10), newTestDB(t))

	summary := svc.Summary(context.Background())
	assert.Zero(t, summary.TotalLinks)
	assert.Zero(t, summary.TotalMappings)
	assert.Zero(t, summary.TotalClicks)
}
