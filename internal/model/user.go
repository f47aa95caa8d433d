package model

// User is a locally registered account. No server-side identity exists; this
// table only mirrors what signup collected inside this profile.
type User struct {
	BaseModel
	Name         string `gorm:"size:255" json:"name"`
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
}

// Identity is the user-visible part of a session.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is the locally stored proof of a logged-in identity. It is never
// verified against any server.
type Session struct {
	User       Identity `json:"user"`
	Token      string   `json:"token"`
	LoginTime  string   `json:"loginTime"`
	RememberMe bool     `json:"rememberMe"`
}

// Preferences are the per-profile UI settings.
type Preferences struct {
	Theme         string `json:"theme"`
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
	AutoCopy      bool   `json:"autoCopy"`
	QRSize        string `json:"qrSize"`
	QRFormat      string `json:"qrFormat"`
	ShowHistory   bool   `json:"showHistory"`
}

// DefaultPreferences returns the settings applied before the user changed
// anything.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:         "dark",
		Language:      "en",
		Notifications: true,
		AutoCopy:      false,
		QRSize:        "300",
		QRFormat:      "png",
		ShowHistory:   true,
	}
}
