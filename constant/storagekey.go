package constant

import (
	"fmt"
	"time"
)

// Namespaced keys of the local key-value store. These names are part of the
// persisted-state surface and must stay stable across releases.
const (
	URLHistoryKey  = "infinityqr_url_history"
	QRHistoryKey   = "infinityqr_qr_history"
	UserPrefsKey   = "infinityqr_user_prefs"
	AuthSessionKey = "infinityqr_auth_token"
)

// History feature names.
const (
	FeatureLinks   = "links"
	FeatureQRCodes = "qrcodes"
)

const (
	BasePrefix = "redirect:"
	Separator  = ":"
)

// Redis key templates for the optional cache/counter layer.
const (
	ShortCode = BasePrefix + "shortcode:%s"
	DailyPV   = BasePrefix + "pv" + Separator + "%s"                    // redirect:pv:yyyyMMdd
	DailyUV   = BasePrefix + "uv" + Separator + "%s" + Separator + "%s" // redirect:uv:yyyyMMdd:shortcode
	TotalPV   = BasePrefix + "total_pv" + Separator + "%s"              // redirect:total_pv:shortcode
	TotalUV   = BasePrefix + "total_uv" + Separator + "%s"              // redirect:total_uv:shortcode
)

// GetShortCodeKey generates the cache key of one short code mapping.
func GetShortCodeKey(shortCode string) string {
	return fmt.Sprintf(ShortCode, shortCode)
}

// GetDateKey returns the current date key (format: yyyyMMdd).
func GetDateKey() string {
	return time.Now().Format("20060102")
}

// GetDailyPVKey generates the daily PV hash key (redirect:pv:yyyyMMdd).
func GetDailyPVKey(date string) string {
	return fmt.Sprintf(DailyPV, date)
}

// GetDailyUVKey generates the daily UV key (redirect:uv:yyyyMMdd:shortcode).
func GetDailyUVKey(shortCode, date string) string {
	return fmt.Sprintf(DailyUV, date, shortCode)
}

// GetTotalPVKey generates the total PV key (redirect:total_pv:shortcode).
func GetTotalPVKey(shortCode string) string {
	return fmt.Sprintf(TotalPV, shortCode)
}

// GetTotalUVKey generates the total UV key (redirect:total_uv:shortcode).
func GetTotalUVKey(shortCode string) string {
	return fmt.Sprintf(TotalUV, shortCode)
}
