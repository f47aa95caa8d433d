package model

// URLMapping backs the redirect simulator: every locally synthesized short
// code resolves to exactly one target URL within this profile.
type URLMapping struct {
	BaseModel
	ShortCode string `gorm:"uniqueIndex;size:64;not null" json:"shortCode"`
	TargetURL string `gorm:"size:2048;not null" json:"targetUrl"`
	Clicks    int64  `gorm:"default:0" json:"clicks"`
	TotalPV   int64  `gorm:"default:0" json:"totalPv"`
	TotalUV   int64  `gorm:"default:0" json:"totalUv"`
}

// DailyStat is one day of redirect traffic for a short code.
type DailyStat struct {
	BaseModel
	ShortCode string `gorm:"index;size:64" json:"shortCode"`
	Date      string `gorm:"type:date;index" json:"date"` // YYYY-MM-DD
	PV        int64  `gorm:"default:0" json:"pv"`
	UV        int64  `gorm:"default:0" json:"uv"`
}
