package model

// ShortenedLink is the canonical record every shortening provider response is
// mapped into before it reaches history or the caller.
type ShortenedLink struct {
	ID        string `json:"id"`
	LongURL   string `json:"longUrl"`
	ShortURL  string `json:"shortUrl"`
	ShortCode string `json:"shortCode"`
	// CustomAlias is set only when the user requested one and the serving
	// provider (or the local synthesis path) honored it.
	CustomAlias string `json:"customAlias,omitempty"`
	// ActualShortURL keeps the provider's own URL when the short URL was
	// synthesized locally over an unbranded provider result.
	ActualShortURL string `json:"actualShortUrl,omitempty"`
	CreatedAt      string `json:"createdAt"`
	// Clicks is authoritative only at the provider; locally it changes only
	// through the redirect simulator's mapping table.
	Clicks int64 `json:"clicks"`
}

// QRFormats enumerates the accepted QR image formats.
var QRFormats = []string{"png", "svg", "jpg"}

// QRCodeRecord is the canonical QR generation result.
type QRCodeRecord struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	ImageURL  string `json:"imageUrl"`
	Size      int    `json:"size"`
	Format    string `json:"format"`
	CreatedAt string `json:"createdAt"`
	// Downloads is incremented only on a confirmed download action.
	Downloads int64 `json:"downloads"`
}

// QROptions carries the generation parameters passed to QR providers.
type QROptions struct {
	Size       int
	Format     string
	Margin     int
	DarkColor  string
	LightColor string
}
