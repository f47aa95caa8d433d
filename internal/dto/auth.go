package dto

// LoginRequest starts a mock session. No credential is ever checked against
// a backend.
type LoginRequest struct {
	Name       string `json:"name" binding:"omitempty,max=255"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// SignupRequest records an account locally and logs it in.
type SignupRequest struct {
	Name       string `json:"name" binding:"required,max=255"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	RememberMe bool   `json:"rememberMe"`
}

// PreferencesRequest replaces the stored profile settings.
type PreferencesRequest struct {
	Theme         string `json:"theme" binding:"omitempty,oneof=dark light"`
	Language      string `json:"language" binding:"omitempty,max=8"`
	Notifications bool   `json:"notifications"`
	AutoCopy      bool   `json:"autoCopy"`
	QRSize        string `json:"qrSize" binding:"omitempty,max=8"`
	QRFormat      string `json:"qrFormat" binding:"omitempty,oneof=png svg jpg"`
	ShowHistory   bool   `json:"showHistory"`
}
