package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"infinityqr-go/internal/model"
)

// DashboardSummary aggregates what one profile has produced.
type DashboardSummary struct {
	TotalLinks    int   `json:"totalLinks"`
	TotalQRCodes  int   `json:"totalQrCodes"`
	TotalMappings int64 `json:"totalMappings"`
	TotalClicks   int64 `json:"totalClicks"`
}

// DashboardService backs the session-gated overview.
type DashboardService struct {
	history *HistoryService
	db      *gorm.DB
}

func NewDashboardService(history *HistoryService, db *gorm.DB) *DashboardService {
	return &DashboardService{history: history, db: db}
}

func (d *DashboardService) Summary(ctx context.Context) DashboardSummary {
	summary := DashboardSummary{
		TotalLinks:   len(d.history.Links()),
		TotalQRCodes: len(d.history.QRCodes()),
	}

	if err := d.db.WithContext(ctx).Model(&model.URLMapping{}).
		Count(&summary.TotalMappings).Error; err != nil {
		zap.L().Warn("Mapping count failed", zap.Error(err))
	}

	var clicks struct{ Total int64 }
	if err := d.db.WithContext(ctx).Model(&model.URLMapping{}).
		Select("COALESCE(SUM(clicks), 0) AS total").
		Scan(&clicks).Error; err != nil {
		zap.L().Warn("Click sum failed", zap.Error(err))
	}
	summary.TotalClicks = clicks.Total

	return summary
}
